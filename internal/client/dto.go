package client

import (
	"encoding/json"
	"time"

	"noted/internal/types"
)

// The backend wraps every payload in this envelope. Code 1000 means
// success; result carries the typed payload.
const codeSuccess = 1000

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// pageResult is the paginated list shape the fetch endpoints return.
type pageResult struct {
	Content       []*types.Note `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
}

// NoteRequest is the full mutable-field set of a note. The update endpoint
// replaces all of it at once; there is no partial patch.
type NoteRequest struct {
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Pinned          bool       `json:"isPinned"`
	Archived        bool       `json:"isArchived"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	Reminder        *time.Time `json:"reminder,omitempty"`
}

// NoteRequestFrom builds the request for sending a record's current state.
func NoteRequestFrom(note *types.Note) NoteRequest {
	if note == nil {
		return NoteRequest{}
	}
	return NoteRequest{
		Title:           note.Title,
		Content:         note.Content,
		Pinned:          note.Pinned,
		Archived:        note.Archived,
		BackgroundColor: note.BackgroundColor,
		Reminder:        note.Reminder,
	}
}

type LabelRequest struct {
	Name string `json:"name"`
}
