package notelist

import "noted/internal/types"

// Belongs reports whether a note is visible on the given page. It is
// evaluated against the complete record, never against individual field
// changes, so a multi-field edit yields a single keep-or-drop decision.
//
// Home lists active notes only. Archive lists archived, undeleted notes.
// Trash lists deleted notes regardless of archive state (trash overrides
// archive). Reminders lists undeleted notes with a reminder set, whether it
// has fired or not. Label views are label-scoped rather than
// lifecycle-scoped: an archived note stays visible under its label, only
// deletion or losing the label removes it.
func Belongs(page Page, note *types.Note) bool {
	if note == nil {
		return false
	}
	switch page.Kind {
	case PageHome:
		return !note.Deleted && !note.Archived
	case PageArchive:
		return !note.Deleted && note.Archived
	case PageTrash:
		return note.Deleted
	case PageReminders:
		return !note.Deleted && note.Reminder != nil
	case PageLabel:
		return !note.Deleted && note.HasLabel(page.LabelID)
	default:
		return false
	}
}
