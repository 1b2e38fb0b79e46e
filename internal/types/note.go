package types

import "time"

// DefaultNoteColor is the background assigned to notes created without an
// explicit color choice.
const DefaultNoteColor = "#ffffff"

// NoteColors is the fixed background palette the backend accepts. Unknown
// values render as the default.
var NoteColors = []NoteColor{
	{Hex: "#ffffff", Name: "White"},
	{Hex: "#f0f9ff", Name: "Blue"},
	{Hex: "#fdf2f8", Name: "Pink"},
	{Hex: "#fff7ed", Name: "Orange"},
	{Hex: "#f0fdf4", Name: "Green"},
	{Hex: "#faf5ff", Name: "Purple"},
	{Hex: "#fefce8", Name: "Yellow"},
}

type NoteColor struct {
	Hex  string
	Name string
}

// Note is the canonical note record as the server returns it. Ids and
// timestamps are server-assigned; the client never invents them, it only
// holds copies fetched from or echoed by the server.
type Note struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
	Pinned          bool          `json:"isPinned"`
	Archived        bool          `json:"isArchived"`
	Deleted         bool          `json:"isDeleted"`
	Reminder        *time.Time    `json:"reminder,omitempty"`
	ReminderSent    bool          `json:"isReminderSent"`
	Labels          []*Label      `json:"labels,omitempty"`
	Checklists      []*Checklist  `json:"checklists,omitempty"`
	Attachments     []*Attachment `json:"attachments,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Checklist struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type Attachment struct {
	ID       int64  `json:"id"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}

// CloneNote returns a deep copy so optimistic mutations never alias the
// record held in a page store.
func CloneNote(in *Note) *Note {
	if in == nil {
		return nil
	}
	out := *in
	if in.Reminder != nil {
		reminder := *in.Reminder
		out.Reminder = &reminder
	}
	if in.Labels != nil {
		out.Labels = make([]*Label, 0, len(in.Labels))
		for _, label := range in.Labels {
			if label == nil {
				continue
			}
			copied := *label
			out.Labels = append(out.Labels, &copied)
		}
	}
	if in.Checklists != nil {
		out.Checklists = make([]*Checklist, 0, len(in.Checklists))
		for _, item := range in.Checklists {
			if item == nil {
				continue
			}
			copied := *item
			out.Checklists = append(out.Checklists, &copied)
		}
	}
	if in.Attachments != nil {
		out.Attachments = make([]*Attachment, 0, len(in.Attachments))
		for _, attachment := range in.Attachments {
			if attachment == nil {
				continue
			}
			copied := *attachment
			out.Attachments = append(out.Attachments, &copied)
		}
	}
	return &out
}

// HasLabel reports whether the note carries the given label id.
func (n *Note) HasLabel(labelID int64) bool {
	if n == nil {
		return false
	}
	for _, label := range n.Labels {
		if label != nil && label.ID == labelID {
			return true
		}
	}
	return false
}

// Color returns the note background, defaulting when unset.
func (n *Note) Color() string {
	if n == nil || n.BackgroundColor == "" {
		return DefaultNoteColor
	}
	return n.BackgroundColor
}

// Empty reports whether the note has neither title nor content. Empty notes
// are discarded instead of created.
func (n *Note) Empty() bool {
	return n == nil || (n.Title == "" && n.Content == "")
}
