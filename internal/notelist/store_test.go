package notelist

import (
	"testing"
	"time"

	"noted/internal/types"
)

func homeNote(id int64, pinned bool, created string) *types.Note {
	createdAt, _ := time.Parse(time.RFC3339, created)
	return &types.Note{ID: id, Pinned: pinned, CreatedAt: createdAt, Title: "n"}
}

func TestLoadFiltersNothingButSortsAndDedupes(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{
		homeNote(1, false, "2026-01-01T00:00:00Z"),
		homeNote(2, true, "2025-01-01T00:00:00Z"),
		homeNote(1, false, "2026-01-01T00:00:00Z"),
		nil,
	})
	if s.Len() != 2 {
		t.Fatalf("expected 2 notes after dedupe, got %d", s.Len())
	}
	notes := s.Notes()
	if notes[0].ID != 2 {
		t.Fatalf("expected pinned note first, got id %d", notes[0].ID)
	}
}

func TestLoadCopiesInput(t *testing.T) {
	s := NewStore(Home())
	source := homeNote(1, false, "2026-01-01T00:00:00Z")
	s.Load([]*types.Note{source})
	source.Title = "mutated"
	got, ok := s.Get(1)
	if !ok || got.Title != "n" {
		t.Fatalf("store aliased caller memory: %+v", got)
	}
}

func TestApplyPatchMissingIDIsSilentNoop(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{homeNote(1, false, "2026-01-01T00:00:00Z")})
	note, outcome := s.ApplyPatch(99, func(n *types.Note) { n.Pinned = true })
	if outcome != PatchMissing || note != nil {
		t.Fatalf("expected missing outcome, got %v %+v", outcome, note)
	}
	if s.Len() != 1 {
		t.Fatalf("store changed on missing patch")
	}
}

func TestApplyPatchKeepsAndResorts(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{
		homeNote(1, false, "2026-01-01T00:00:00Z"),
		homeNote(2, false, "2026-02-01T00:00:00Z"),
	})
	note, outcome := s.ApplyPatch(1, func(n *types.Note) { n.Pinned = true })
	if outcome != PatchKept {
		t.Fatalf("expected kept outcome, got %v", outcome)
	}
	if !note.Pinned {
		t.Fatalf("patch not applied to returned record")
	}
	if s.Notes()[0].ID != 1 {
		t.Fatalf("expected pinned note to sort first")
	}
}

func TestApplyPatchRemovesWhenNoLongerBelongs(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{homeNote(1, false, "2026-01-01T00:00:00Z")})
	note, outcome := s.ApplyPatch(1, func(n *types.Note) { n.Archived = true })
	if outcome != PatchRemoved {
		t.Fatalf("expected removed outcome, got %v", outcome)
	}
	if !note.Archived {
		t.Fatalf("expected returned record to carry the mutation")
	}
	if s.Len() != 0 {
		t.Fatalf("archived note still present on home page")
	}
}

func TestApplyPatchNeverLeavesPartialState(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{homeNote(1, false, "2026-01-01T00:00:00Z")})
	// The mutate callback works on a clone; membership is decided on the
	// complete mutated record, so the visible list holds either the old
	// record or the fully new one.
	_, outcome := s.ApplyPatch(1, func(n *types.Note) {
		n.Title = "updated"
		n.Deleted = true
	})
	if outcome != PatchRemoved {
		t.Fatalf("expected removal for deleted note, got %v", outcome)
	}
	if _, ok := s.Get(1); ok {
		t.Fatalf("deleted note still visible")
	}
}

func TestRemove(t *testing.T) {
	s := NewStore(Trash())
	s.Load([]*types.Note{{ID: 1, Deleted: true}})
	if !s.Remove(1) {
		t.Fatalf("expected removal of present id")
	}
	if s.Remove(1) {
		t.Fatalf("second removal should report missing")
	}
}

func TestInsertReplacesDuplicateID(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{homeNote(1, false, "2026-01-01T00:00:00Z")})
	replacement := homeNote(1, true, "2026-01-01T00:00:00Z")
	replacement.Title = "fresh"
	s.Insert(replacement)
	if s.Len() != 1 {
		t.Fatalf("duplicate id after insert: %d entries", s.Len())
	}
	got, _ := s.Get(1)
	if got.Title != "fresh" || !got.Pinned {
		t.Fatalf("insert did not replace record: %+v", got)
	}
}

func TestNotesReturnsCopies(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{homeNote(1, false, "2026-01-01T00:00:00Z")})
	s.Notes()[0].Title = "mutated"
	got, _ := s.Get(1)
	if got.Title != "n" {
		t.Fatalf("Notes leaked internal state")
	}
}

func TestSortInvariantHoldsAfterMutationSequence(t *testing.T) {
	s := NewStore(Home())
	s.Load([]*types.Note{
		homeNote(1, false, "2026-01-01T00:00:00Z"),
		homeNote(2, true, "2026-01-02T00:00:00Z"),
		homeNote(3, false, "2026-01-03T00:00:00Z"),
		homeNote(4, false, "2026-01-04T00:00:00Z"),
	})
	s.ApplyPatch(3, func(n *types.Note) { n.Pinned = true })
	s.ApplyPatch(2, func(n *types.Note) { n.Pinned = false })
	s.ApplyPatch(4, func(n *types.Note) { n.BackgroundColor = "#fefce8" })
	s.Remove(1)
	s.Insert(homeNote(5, false, "2026-01-05T00:00:00Z"))

	notes := s.Notes()
	for i := 1; i < len(notes); i++ {
		prev, cur := notes[i-1], notes[i]
		if !prev.Pinned && cur.Pinned {
			t.Fatalf("unpinned note before pinned note at %d", i)
		}
		if prev.Pinned == cur.Pinned && prev.CreatedAt.Before(cur.CreatedAt) {
			t.Fatalf("createdAt not non-increasing at %d", i)
		}
	}
}
