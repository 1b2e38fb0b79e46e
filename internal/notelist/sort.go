package notelist

import (
	"sort"

	"noted/internal/types"
)

// Less orders pinned notes before unpinned ones, then newest first. Equal
// creation times cannot happen for server-assigned ids, but the id tiebreak
// keeps the order total either way.
func Less(a, b *types.Note) bool {
	if a.Pinned != b.Pinned {
		return a.Pinned
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// SortNotes sorts in place per Less.
func SortNotes(notes []*types.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return Less(notes[i], notes[j])
	})
}
