// Package client talks to the note service's REST API. Responses arrive in
// a {code, message, result} envelope; the result is decoded into typed
// records at this boundary so nothing untyped travels further in.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"noted/internal/config"
	"noted/internal/types"
)

type Client struct {
	baseURL   string
	tokenPath string
	token     string
	http      *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokenPath: tokenPath,
		http: &http.Client{
			Timeout: timeout,
		},
	}
	_ = c.loadToken()
	return c, nil
}

func NewWithToken(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) ListNotes(ctx context.Context, page, size int) ([]*types.Note, error) {
	return c.listNotes(ctx, "/notes", page, size)
}

func (c *Client) ListArchived(ctx context.Context, page, size int) ([]*types.Note, error) {
	return c.listNotes(ctx, "/notes/archived", page, size)
}

func (c *Client) ListTrashed(ctx context.Context, page, size int) ([]*types.Note, error) {
	return c.listNotes(ctx, "/notes/trashed", page, size)
}

func (c *Client) ListReminders(ctx context.Context, page, size int) ([]*types.Note, error) {
	return c.listNotes(ctx, "/notes/reminders", page, size)
}

func (c *Client) ListNotesByLabel(ctx context.Context, labelID int64, page, size int) ([]*types.Note, error) {
	return c.listNotes(ctx, fmt.Sprintf("/notes/label/%d", labelID), page, size)
}

func (c *Client) listNotes(ctx context.Context, path string, page, size int) ([]*types.Note, error) {
	var result pageResult
	url := fmt.Sprintf("%s?page=%d&size=%d", path, page, size)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &result); err != nil {
		return nil, err
	}
	return result.Content, nil
}

func (c *Client) GetNote(ctx context.Context, id int64) (*types.Note, error) {
	var note types.Note
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/notes/%d", id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateNote refuses notes that are empty on both fields; the backend never
// sees them.
func (c *Client) CreateNote(ctx context.Context, req NoteRequest) (*types.Note, error) {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyNote
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPost, "/notes", req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote sends the complete mutable-field set and returns the canonical
// record the server echoes back.
func (c *Client) UpdateNote(ctx context.Context, id int64, req NoteRequest) (*types.Note, error) {
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", id), req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) ArchiveNote(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/notes/%d/archive", id), nil, nil)
}

func (c *Client) UnarchiveNote(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/notes/%d/unarchive", id), nil, nil)
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
}

func (c *Client) RestoreNote(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/notes/%d/restore", id), nil, nil)
}

func (c *Client) DeleteNoteForever(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d/permanent", id), nil, nil)
}

func (c *Client) AddNoteLabel(ctx context.Context, id, labelID int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/notes/%d/labels/%d", id, labelID), nil, nil)
}

func (c *Client) RemoveNoteLabel(ctx context.Context, id, labelID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d/labels/%d", id, labelID), nil, nil)
}

func (c *Client) ListLabels(ctx context.Context) ([]*types.Label, error) {
	var labels []*types.Label
	if err := c.doJSON(ctx, http.MethodGet, "/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *Client) CreateLabel(ctx context.Context, name string) (*types.Label, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("label name is required")
	}
	var label types.Label
	if err := c.doJSON(ctx, http.MethodPost, "/labels", LabelRequest{Name: name}, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

func (c *Client) RenameLabel(ctx context.Context, id int64, name string) (*types.Label, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("label name is required")
	}
	var label types.Label
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/labels/%d", id), LabelRequest{Name: name}, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

func (c *Client) DeleteLabel(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/labels/%d", id), nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.ensureToken(); err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	var wrapped envelope
	if err := json.NewDecoder(resp.Body).Decode(&wrapped); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if wrapped.Code != codeSuccess {
		return &APIError{StatusCode: resp.StatusCode, Code: wrapped.Code, Message: wrapped.Message}
	}
	if out == nil {
		return nil
	}
	if len(wrapped.Result) == 0 || string(wrapped.Result) == "null" {
		return fmt.Errorf("response envelope carries no result")
	}
	if err := json.Unmarshal(wrapped.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

func (c *Client) ensureToken() error {
	if strings.TrimSpace(c.token) != "" || c.tokenPath == "" {
		return nil
	}
	return c.loadToken()
}

func (c *Client) loadToken() error {
	if c.tokenPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.token = ""
			return nil
		}
		return err
	}
	c.token = strings.TrimSpace(string(data))
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var wrapped envelope
	_ = json.NewDecoder(resp.Body).Decode(&wrapped)
	if wrapped.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Code: wrapped.Code, Message: wrapped.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

// ErrEmptyNote marks a create attempt with neither title nor content.
var ErrEmptyNote = errors.New("note has no title and no content")

// APIError is any non-success answer from the service, whether transport
// level (StatusCode) or envelope level (Code).
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code != 0 {
		return fmt.Sprintf("api error (%d/%d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an APIError, or nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
