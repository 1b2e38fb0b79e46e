package notelist

import (
	"context"
	"time"

	"noted/internal/client"
	"noted/internal/types"
)

// NoteAPI is the slice of the backend the coordinator confirms mutations
// against. *client.Client satisfies it.
type NoteAPI interface {
	ListNotes(ctx context.Context, page, size int) ([]*types.Note, error)
	ListArchived(ctx context.Context, page, size int) ([]*types.Note, error)
	ListTrashed(ctx context.Context, page, size int) ([]*types.Note, error)
	ListReminders(ctx context.Context, page, size int) ([]*types.Note, error)
	ListNotesByLabel(ctx context.Context, labelID int64, page, size int) ([]*types.Note, error)
	UpdateNote(ctx context.Context, id int64, req client.NoteRequest) (*types.Note, error)
	ArchiveNote(ctx context.Context, id int64) error
	UnarchiveNote(ctx context.Context, id int64) error
	DeleteNote(ctx context.Context, id int64) error
	RestoreNote(ctx context.Context, id int64) error
	DeleteNoteForever(ctx context.Context, id int64) error
	AddNoteLabel(ctx context.Context, id, labelID int64) error
	RemoveNoteLabel(ctx context.Context, id, labelID int64) error
}

// Mutation is the staged confirmation call for an optimistic transition.
// The transition itself has already been applied to the store by the time a
// Mutation exists; Do runs the backing request and returns the canonical
// record for endpoints that echo one (update), nil otherwise.
type Mutation struct {
	Name   string
	NoteID int64
	run    func(ctx context.Context) (*types.Note, error)
}

func (m *Mutation) Do(ctx context.Context) (*types.Note, error) {
	return m.run(ctx)
}

// EditFields is the full mutable-field set the edit flow replaces in one
// call. This is the only mutation that may change several filter-relevant
// fields at once.
type EditFields struct {
	Title           string
	Content         string
	Pinned          bool
	BackgroundColor string
	Reminder        *time.Time
}

// Coordinator sequences one optimistic transition per user action for a
// single page: clone the current record, overwrite the relevant fields,
// re-evaluate page membership against the complete next record, and hand
// back the confirming call to run in the background. There is no per-field
// rollback; a failed confirmation is recovered by Resync. Overlapping
// mutations on the same id are not coordinated beyond last-write-wins.
type Coordinator struct {
	store    *Store
	api      NoteAPI
	pageSize int
}

func NewCoordinator(store *Store, api NoteAPI, pageSize int) *Coordinator {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &Coordinator{store: store, api: api, pageSize: pageSize}
}

func (c *Coordinator) Store() *Store {
	return c.store
}

// TogglePin flips the pin flag. Pinning always reactivates: a record that
// becomes pinned while archived is unarchived in the same transition, which
// is what removes it from the Archive page.
func (c *Coordinator) TogglePin(id int64) (*Mutation, bool) {
	next, outcome := c.store.ApplyPatch(id, func(n *types.Note) {
		n.Pinned = !n.Pinned
		reactivateIfPinned(n)
	})
	if outcome == PatchMissing {
		return nil, false
	}
	return c.updateMutation("pin", next), true
}

// ToggleArchive flips the archive flag. A note entering the archive loses
// its pin; a note cannot be both pinned and archived.
func (c *Coordinator) ToggleArchive(id int64) (*Mutation, bool) {
	next, outcome := c.store.ApplyPatch(id, func(n *types.Note) {
		n.Archived = !n.Archived
		if n.Archived {
			n.Pinned = false
		}
	})
	if outcome == PatchMissing {
		return nil, false
	}
	call := c.api.UnarchiveNote
	name := "unarchive"
	if next.Archived {
		call = c.api.ArchiveNote
		name = "archive"
	}
	return c.voidMutation(name, id, call), true
}

// SoftDelete moves the note to the trash. Other pages learn about it on
// their own next fetch.
func (c *Coordinator) SoftDelete(id int64) (*Mutation, bool) {
	_, outcome := c.store.ApplyPatch(id, func(n *types.Note) {
		n.Deleted = true
		n.Pinned = false
	})
	if outcome == PatchMissing {
		return nil, false
	}
	return c.voidMutation("delete", id, c.api.DeleteNote), true
}

// Restore clears the deleted flag; on the Trash page that drops the record
// from the list.
func (c *Coordinator) Restore(id int64) (*Mutation, bool) {
	_, outcome := c.store.ApplyPatch(id, func(n *types.Note) {
		n.Deleted = false
	})
	if outcome == PatchMissing {
		return nil, false
	}
	return c.voidMutation("restore", id, c.api.RestoreNote), true
}

// HardDelete removes the record for good. The caller is responsible for the
// blocking confirmation; by the time this runs the user has already agreed.
func (c *Coordinator) HardDelete(id int64) (*Mutation, bool) {
	if !c.store.Remove(id) {
		return nil, false
	}
	return c.voidMutation("delete forever", id, c.api.DeleteNoteForever), true
}

// Recolor changes the background only. It never affects page membership.
func (c *Coordinator) Recolor(id int64, color string) (*Mutation, bool) {
	next, outcome := c.store.ApplyPatch(id, func(n *types.Note) {
		n.BackgroundColor = color
	})
	if outcome == PatchMissing {
		return nil, false
	}
	return c.updateMutation("recolor", next), true
}

// ToggleLabel assigns or removes one label. Membership is re-evaluated
// against the full record, so on a label view only losing that view's own
// label removes the note.
func (c *Coordinator) ToggleLabel(id int64, label types.Label, assign bool) (*Mutation, bool) {
	_, outcome := c.store.ApplyPatch(id, func(n *types.Note) {
		labels := make([]*types.Label, 0, len(n.Labels)+1)
		for _, existing := range n.Labels {
			if existing == nil || existing.ID == label.ID {
				continue
			}
			labels = append(labels, existing)
		}
		if assign {
			assigned := label
			labels = append(labels, &assigned)
		}
		n.Labels = labels
	})
	if outcome == PatchMissing {
		return nil, false
	}
	if assign {
		return c.voidMutation("add label", id, func(ctx context.Context, noteID int64) error {
			return c.api.AddNoteLabel(ctx, noteID, label.ID)
		}), true
	}
	return c.voidMutation("remove label", id, func(ctx context.Context, noteID int64) error {
		return c.api.RemoveNoteLabel(ctx, noteID, label.ID)
	}), true
}

// FullEdit replaces the whole mutable-field set in one transition, the way
// the edit modal saves. The pin-reactivation invariant applies here too.
func (c *Coordinator) FullEdit(id int64, fields EditFields) (*Mutation, bool) {
	next, outcome := c.store.ApplyPatch(id, func(n *types.Note) {
		n.Title = fields.Title
		n.Content = fields.Content
		n.Pinned = fields.Pinned
		n.BackgroundColor = fields.BackgroundColor
		n.Reminder = fields.Reminder
		reactivateIfPinned(n)
	})
	if outcome == PatchMissing {
		return nil, false
	}
	return c.updateMutation("save", next), true
}

// ApplyServer folds a server-echoed canonical record back into the store,
// re-evaluating membership. Echoes for records this page no longer holds
// are dropped silently.
func (c *Coordinator) ApplyServer(note *types.Note) {
	if note == nil {
		return
	}
	canonical := types.CloneNote(note)
	c.store.ApplyPatch(note.ID, func(n *types.Note) {
		*n = *canonical
	})
}

// InsertCreated adds a freshly created, server-confirmed record if it is
// visible on this page.
func (c *Coordinator) InsertCreated(note *types.Note) bool {
	if note == nil || !Belongs(c.store.Page(), note) {
		return false
	}
	c.store.Insert(note)
	return true
}

// Resync fetches the authoritative first page from the server and reloads
// the store, discarding any optimistic state. This is the whole failure
// recovery story: no retries, no per-field rollback.
func (c *Coordinator) Resync(ctx context.Context) error {
	notes, err := c.Fetch(ctx)
	if err != nil {
		return err
	}
	c.store.Load(notes)
	return nil
}

// Fetch retrieves this page's notes without touching the store.
func (c *Coordinator) Fetch(ctx context.Context) ([]*types.Note, error) {
	page := c.store.Page()
	switch page.Kind {
	case PageArchive:
		return c.api.ListArchived(ctx, 0, c.pageSize)
	case PageTrash:
		return c.api.ListTrashed(ctx, 0, c.pageSize)
	case PageReminders:
		return c.api.ListReminders(ctx, 0, c.pageSize)
	case PageLabel:
		return c.api.ListNotesByLabel(ctx, page.LabelID, 0, c.pageSize)
	default:
		return c.api.ListNotes(ctx, 0, c.pageSize)
	}
}

// The backend update endpoint replaces the full mutable-field set, so every
// update sends the complete next record rather than a diff.
func (c *Coordinator) updateMutation(name string, next *types.Note) *Mutation {
	req := client.NoteRequestFrom(next)
	id := next.ID
	return &Mutation{
		Name:   name,
		NoteID: id,
		run: func(ctx context.Context) (*types.Note, error) {
			return c.api.UpdateNote(ctx, id, req)
		},
	}
}

func (c *Coordinator) voidMutation(name string, id int64, call func(ctx context.Context, id int64) error) *Mutation {
	return &Mutation{
		Name:   name,
		NoteID: id,
		run: func(ctx context.Context) (*types.Note, error) {
			return nil, call(ctx, id)
		},
	}
}

func reactivateIfPinned(n *types.Note) {
	if n.Pinned && n.Archived {
		n.Archived = false
	}
}
