package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Client{
		baseURL: server.URL,
		token:   "token",
		http: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

func TestListNotesDecodesEnvelopeAndPassesPagination(t *testing.T) {
	var seenPath, seenQuery, seenAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
		seenQuery = r.URL.RawQuery
		seenAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":1000,"message":"ok","result":{"content":[{"id":3,"title":"milk","isPinned":true,"createdAt":"2026-01-02T00:00:00Z","updatedAt":"2026-01-02T00:00:00Z"}],"page":2,"size":25,"totalElements":51,"totalPages":3}}`))
	})

	notes, err := c.ListNotes(context.Background(), 2, 25)
	if err != nil {
		t.Fatalf("ListNotes error: %v", err)
	}
	if seenPath != "/notes" {
		t.Fatalf("unexpected path: %s", seenPath)
	}
	if seenQuery != "page=2&size=25" {
		t.Fatalf("pagination not passed through: %s", seenQuery)
	}
	if seenAuth != "Bearer token" {
		t.Fatalf("missing bearer token: %q", seenAuth)
	}
	if len(notes) != 1 || notes[0].ID != 3 || !notes[0].Pinned {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}

func TestListNotesByLabelPath(t *testing.T) {
	var seenPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
		_, _ = w.Write([]byte(`{"code":1000,"message":"ok","result":{"content":[]}}`))
	})
	if _, err := c.ListNotesByLabel(context.Background(), 7, 0, 50); err != nil {
		t.Fatalf("ListNotesByLabel error: %v", err)
	}
	if seenPath != "/notes/label/7" {
		t.Fatalf("unexpected path: %s", seenPath)
	}
}

func TestUpdateNoteSendsFullMutableSetAndReturnsEcho(t *testing.T) {
	var seenMethod, seenPath string
	var seenBody map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		seenMethod = r.Method
		seenPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&seenBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"code":1000,"message":"ok","result":{"id":5,"title":"t","content":"c","isPinned":true,"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-03T00:00:00Z"}}`))
	})

	note, err := c.UpdateNote(context.Background(), 5, NoteRequest{
		Title:           "t",
		Content:         "c",
		Pinned:          true,
		BackgroundColor: "#fdf2f8",
	})
	if err != nil {
		t.Fatalf("UpdateNote error: %v", err)
	}
	if seenMethod != http.MethodPut || seenPath != "/notes/5" {
		t.Fatalf("unexpected request: %s %s", seenMethod, seenPath)
	}
	for _, key := range []string{"title", "content", "isPinned", "isArchived", "backgroundColor"} {
		if _, ok := seenBody[key]; !ok {
			t.Fatalf("update body missing %q: %v", key, seenBody)
		}
	}
	if note.ID != 5 || !note.Pinned {
		t.Fatalf("echo not decoded: %+v", note)
	}
}

func TestCreateNoteRefusesEmpty(t *testing.T) {
	called := false
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	if _, err := c.CreateNote(context.Background(), NoteRequest{Title: "  ", Content: "\n"}); err != ErrEmptyNote {
		t.Fatalf("expected ErrEmptyNote, got %v", err)
	}
	if called {
		t.Fatalf("empty note must never reach the server")
	}
}

func TestToggleEndpointsHaveNoMeaningfulBody(t *testing.T) {
	var seenMethod, seenPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		seenMethod = r.Method
		seenPath = r.URL.Path
		_, _ = w.Write([]byte(`{"code":1000,"message":"ok","result":null}`))
	})

	if err := c.ArchiveNote(context.Background(), 9); err != nil {
		t.Fatalf("ArchiveNote error: %v", err)
	}
	if seenMethod != http.MethodPost || seenPath != "/notes/9/archive" {
		t.Fatalf("unexpected request: %s %s", seenMethod, seenPath)
	}
	if err := c.DeleteNoteForever(context.Background(), 9); err != nil {
		t.Fatalf("DeleteNoteForever error: %v", err)
	}
	if seenMethod != http.MethodDelete || seenPath != "/notes/9/permanent" {
		t.Fatalf("unexpected request: %s %s", seenMethod, seenPath)
	}
}

func TestEnvelopeErrorCodeSurfacesAsAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":4004,"message":"note not found","result":null}`))
	})
	err := c.RestoreNote(context.Background(), 1)
	apiErr := AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 4004 || apiErr.Message != "note not found" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestHTTPErrorStatusSurfacesAsAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":1401,"message":"unauthenticated"}`))
	})
	err := c.DeleteNote(context.Background(), 1)
	apiErr := AsAPIError(err)
	if apiErr == nil || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
}

func TestMalformedEnvelopeIsRejected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1,2,3]`))
	})
	if _, err := c.ListNotes(context.Background(), 0, 50); err == nil {
		t.Fatalf("expected decode error for non-envelope payload")
	}
}

func TestShapeMismatchInResultIsRejected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":1000,"message":"ok","result":"oops"}`))
	})
	if _, err := c.ListNotes(context.Background(), 0, 50); err == nil {
		t.Fatalf("expected decode error for mistyped result")
	}
}

func TestLabelEndpoints(t *testing.T) {
	var paths []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"code":1000,"message":"ok","result":[{"id":1,"name":"work"}]}`))
		default:
			_, _ = w.Write([]byte(`{"code":1000,"message":"ok","result":{"id":2,"name":"home"}}`))
		}
	})

	labels, err := c.ListLabels(context.Background())
	if err != nil || len(labels) != 1 || labels[0].Name != "work" {
		t.Fatalf("ListLabels: %v %+v", err, labels)
	}
	if _, err := c.CreateLabel(context.Background(), "home"); err != nil {
		t.Fatalf("CreateLabel error: %v", err)
	}
	if _, err := c.CreateLabel(context.Background(), "   "); err == nil {
		t.Fatalf("blank label name must be rejected locally")
	}
	if err := c.AddNoteLabel(context.Background(), 3, 2); err != nil {
		t.Fatalf("AddNoteLabel error: %v", err)
	}
	want := []string{"GET /labels", "POST /labels", "POST /notes/3/labels/2"}
	if len(paths) != len(want) {
		t.Fatalf("unexpected requests: %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("request %d: got %q want %q", i, paths[i], want[i])
		}
	}
}
