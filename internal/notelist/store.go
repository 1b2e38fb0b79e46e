package notelist

import "noted/internal/types"

// PatchOutcome describes what ApplyPatch did with a record.
type PatchOutcome int

const (
	// PatchMissing means the id was not in the store. A patch racing a
	// removal is benign, not an error.
	PatchMissing PatchOutcome = iota
	// PatchKept means the mutated record still belongs to the page and
	// replaced the old one.
	PatchKept
	// PatchRemoved means the mutated record no longer belongs to the page
	// and was dropped from the list.
	PatchRemoved
)

// Store is the ordered note collection for exactly one page. It is owned by
// the UI event loop and is not safe for concurrent use; background
// confirmations never touch it directly.
type Store struct {
	page  Page
	notes []*types.Note
}

func NewStore(page Page) *Store {
	return &Store{page: page}
}

func (s *Store) Page() Page {
	return s.page
}

// Load replaces the list wholesale with deep copies of the given notes,
// deduplicated by id (first occurrence wins) and sorted. Used after the
// initial fetch and after any failure-triggered reload.
func (s *Store) Load(notes []*types.Note) {
	seen := make(map[int64]struct{}, len(notes))
	next := make([]*types.Note, 0, len(notes))
	for _, note := range notes {
		if note == nil {
			continue
		}
		if _, ok := seen[note.ID]; ok {
			continue
		}
		seen[note.ID] = struct{}{}
		next = append(next, types.CloneNote(note))
	}
	SortNotes(next)
	s.notes = next
}

// ApplyPatch mutates the record with the given id via mutate, then either
// replaces it in place (still belongs, re-sorted) or removes it (no longer
// belongs). The record is never left half-updated: mutate works on a clone
// and the swap happens once. Missing ids are a silent no-op.
func (s *Store) ApplyPatch(id int64, mutate func(*types.Note)) (*types.Note, PatchOutcome) {
	index := s.indexOf(id)
	if index < 0 {
		return nil, PatchMissing
	}
	next := types.CloneNote(s.notes[index])
	mutate(next)
	if !Belongs(s.page, next) {
		s.notes = append(s.notes[:index], s.notes[index+1:]...)
		return next, PatchRemoved
	}
	s.notes[index] = next
	SortNotes(s.notes)
	return next, PatchKept
}

// Remove drops the record unconditionally. Missing ids are a no-op.
func (s *Store) Remove(id int64) bool {
	index := s.indexOf(id)
	if index < 0 {
		return false
	}
	s.notes = append(s.notes[:index], s.notes[index+1:]...)
	return true
}

// Insert adds a server-confirmed record and re-sorts. An existing record
// with the same id is replaced so the list never holds duplicate ids.
func (s *Store) Insert(note *types.Note) {
	if note == nil {
		return
	}
	copied := types.CloneNote(note)
	if index := s.indexOf(note.ID); index >= 0 {
		s.notes[index] = copied
	} else {
		s.notes = append(s.notes, copied)
	}
	SortNotes(s.notes)
}

// Get returns a copy of the record, if present.
func (s *Store) Get(id int64) (*types.Note, bool) {
	index := s.indexOf(id)
	if index < 0 {
		return nil, false
	}
	return types.CloneNote(s.notes[index]), true
}

// Notes returns copies of the list in display order.
func (s *Store) Notes() []*types.Note {
	out := make([]*types.Note, 0, len(s.notes))
	for _, note := range s.notes {
		out = append(out, types.CloneNote(note))
	}
	return out
}

func (s *Store) Len() int {
	return len(s.notes)
}

func (s *Store) indexOf(id int64) int {
	for i, note := range s.notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}
