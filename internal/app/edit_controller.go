package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noted/internal/notelist"
	"noted/internal/types"
)

type editFocus int

const (
	editFocusTitle editFocus = iota
	editFocusContent
)

// editResult is what the editor hands back when the user leaves it.
type editResult int

const (
	editResultNone editResult = iota
	editResultSave
	editResultCancel
)

// EditController drives both the create form and the edit form. For an
// existing note it remembers the original values so an unchanged save can
// be skipped without a network round trip.
type EditController struct {
	active   bool
	creating bool
	noteID   int64
	original *types.Note

	title   textinput.Model
	content textarea.Model
	focus   editFocus

	pinned          bool
	backgroundColor string
	reminder        *time.Time
}

func NewEditController() *EditController {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 255
	title.Prompt = ""

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false

	return &EditController{
		title:           title,
		content:         content,
		backgroundColor: types.DefaultNoteColor,
	}
}

func (e *EditController) IsOpen() bool {
	return e != nil && e.active
}

func (e *EditController) IsCreating() bool {
	return e != nil && e.creating
}

func (e *EditController) NoteID() int64 {
	if e == nil {
		return 0
	}
	return e.noteID
}

// OpenCreate starts a blank form for a new note.
func (e *EditController) OpenCreate() {
	e.reset()
	e.active = true
	e.creating = true
	e.backgroundColor = types.DefaultNoteColor
	e.focus = editFocusTitle
	e.title.Focus()
	e.content.Blur()
}

// OpenEdit loads an existing note into the form.
func (e *EditController) OpenEdit(note *types.Note) {
	if note == nil {
		return
	}
	e.reset()
	e.active = true
	e.creating = false
	e.noteID = note.ID
	e.original = types.CloneNote(note)
	e.title.SetValue(note.Title)
	e.content.SetValue(note.Content)
	e.pinned = note.Pinned
	e.backgroundColor = note.Color()
	if note.Reminder != nil {
		at := *note.Reminder
		e.reminder = &at
	}
	e.focus = editFocusContent
	e.title.Blur()
	e.content.Focus()
}

func (e *EditController) Close() {
	e.reset()
}

func (e *EditController) reset() {
	e.active = false
	e.creating = false
	e.noteID = 0
	e.original = nil
	e.title.SetValue("")
	e.content.SetValue("")
	e.title.Blur()
	e.content.Blur()
	e.focus = editFocusTitle
	e.pinned = false
	e.backgroundColor = types.DefaultNoteColor
	e.reminder = nil
}

func (e *EditController) Resize(width, height int) {
	innerWidth := max(20, width-8)
	e.title.Width = innerWidth
	e.content.SetWidth(innerWidth)
	e.content.SetHeight(max(3, min(12, height-12)))
}

// Fields returns the form contents as a full mutable field set.
func (e *EditController) Fields() notelist.EditFields {
	fields := notelist.EditFields{
		Title:           strings.TrimSpace(e.title.Value()),
		Content:         e.content.Value(),
		Pinned:          e.pinned,
		BackgroundColor: e.backgroundColor,
	}
	if e.reminder != nil {
		at := *e.reminder
		fields.Reminder = &at
	}
	return fields
}

// Dirty reports whether the form differs from the note it was opened with.
// A create form is dirty as soon as it has any text.
func (e *EditController) Dirty() bool {
	if e.creating || e.original == nil {
		return strings.TrimSpace(e.title.Value()) != "" || strings.TrimSpace(e.content.Value()) != ""
	}
	fields := e.Fields()
	if fields.Title != strings.TrimSpace(e.original.Title) {
		return true
	}
	if fields.Content != e.original.Content {
		return true
	}
	if fields.Pinned != e.original.Pinned {
		return true
	}
	if fields.BackgroundColor != e.original.Color() {
		return true
	}
	return !reminderEqual(fields.Reminder, e.original.Reminder)
}

// Empty reports whether both text fields are blank after trimming.
func (e *EditController) Empty() bool {
	return strings.TrimSpace(e.title.Value()) == "" && strings.TrimSpace(e.content.Value()) == ""
}

func (e *EditController) TogglePinned() {
	e.pinned = !e.pinned
}

func (e *EditController) CycleColor() {
	e.backgroundColor = nextColor(e.backgroundColor)
}

func (e *EditController) ClearReminder() {
	e.reminder = nil
}

func (e *EditController) HasReminder() bool {
	return e.reminder != nil
}

// HandleKey consumes all keys while the editor is open. It returns the
// exit decision along with any command from the focused input.
func (e *EditController) HandleKey(msg tea.KeyMsg) (editResult, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return editResultCancel, nil
	case "ctrl+s":
		return editResultSave, nil
	case "ctrl+p":
		e.TogglePinned()
		return editResultNone, nil
	case "ctrl+l":
		e.CycleColor()
		return editResultNone, nil
	case "ctrl+r":
		e.ClearReminder()
		return editResultNone, nil
	case "tab", "shift+tab":
		e.toggleFocus()
		return editResultNone, nil
	case "enter":
		if e.focus == editFocusTitle {
			e.toggleFocus()
			return editResultNone, nil
		}
	}
	var cmd tea.Cmd
	if e.focus == editFocusTitle {
		e.title, cmd = e.title.Update(msg)
	} else {
		e.content, cmd = e.content.Update(msg)
	}
	return editResultNone, cmd
}

func (e *EditController) toggleFocus() {
	if e.focus == editFocusTitle {
		e.focus = editFocusContent
		e.title.Blur()
		e.content.Focus()
	} else {
		e.focus = editFocusTitle
		e.content.Blur()
		e.title.Focus()
	}
}

func (e *EditController) View(maxWidth int) string {
	if !e.IsOpen() {
		return ""
	}
	width := 72
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}

	heading := "Edit note"
	if e.creating {
		heading = "New note"
	}

	meta := []string{colorName(e.backgroundColor)}
	if e.pinned {
		meta = append(meta, "pinned")
	}
	if e.reminder != nil {
		meta = append(meta, "reminds "+e.reminder.Local().Format("Jan 2 15:04"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		dialogTitleStyle.Render(heading),
		"",
		e.title.View(),
		"",
		e.content.View(),
		"",
		cardMetaStyle.Render(strings.Join(meta, " · ")),
		hotkeyLineStyle.Render("ctrl+s save · esc cancel · ctrl+p pin · ctrl+l color · ctrl+r clear reminder"),
	)
	return dialogStyle.Width(width).Render(body)
}

func reminderEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
