package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noted/internal/types"
)

type labelPickerMode int

const (
	// labelPickerAssign toggles labels on a single note.
	labelPickerAssign labelPickerMode = iota
	// labelPickerBrowse jumps to a label's page.
	labelPickerBrowse
)

// labelPickerAction is what the picker asks the model to do for a key.
type labelPickerAction int

const (
	labelActionNone labelPickerAction = iota
	labelActionClose
	labelActionToggle
	labelActionOpenView
)

// LabelPicker lists the account's labels either to assign them to one note
// or to navigate into a label view. Assignment state is read live from the
// note so optimistic toggles show up immediately.
type LabelPicker struct {
	active bool
	mode   labelPickerMode
	noteID int64
	labels []*types.Label
	cursor int
}

func NewLabelPicker() *LabelPicker {
	return &LabelPicker{}
}

func (p *LabelPicker) IsOpen() bool {
	return p != nil && p.active
}

func (p *LabelPicker) Mode() labelPickerMode {
	return p.mode
}

func (p *LabelPicker) NoteID() int64 {
	return p.noteID
}

func (p *LabelPicker) OpenAssign(noteID int64, labels []*types.Label) {
	p.active = true
	p.mode = labelPickerAssign
	p.noteID = noteID
	p.setLabels(labels)
}

func (p *LabelPicker) OpenBrowse(labels []*types.Label) {
	p.active = true
	p.mode = labelPickerBrowse
	p.noteID = 0
	p.setLabels(labels)
}

func (p *LabelPicker) setLabels(labels []*types.Label) {
	p.labels = p.labels[:0]
	for _, label := range labels {
		if label != nil {
			p.labels = append(p.labels, label)
		}
	}
	p.cursor = 0
}

func (p *LabelPicker) Close() {
	p.active = false
	p.noteID = 0
	p.labels = nil
	p.cursor = 0
}

// Selected returns the label under the cursor.
func (p *LabelPicker) Selected() (types.Label, bool) {
	if !p.IsOpen() || p.cursor < 0 || p.cursor >= len(p.labels) {
		return types.Label{}, false
	}
	return *p.labels[p.cursor], true
}

// HandleKey consumes all keys while open and reports what the model should
// do with the selection.
func (p *LabelPicker) HandleKey(msg tea.KeyMsg) labelPickerAction {
	switch msg.String() {
	case "esc", "q":
		return labelActionClose
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.labels)-1 {
			p.cursor++
		}
	case " ", "space":
		if p.mode == labelPickerAssign {
			return labelActionToggle
		}
	case "enter":
		if p.mode == labelPickerBrowse {
			return labelActionOpenView
		}
		if p.mode == labelPickerAssign {
			return labelActionToggle
		}
	}
	return labelActionNone
}

func (p *LabelPicker) View(note *types.Note, maxWidth int) string {
	if !p.IsOpen() {
		return ""
	}
	width := 48
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}

	heading := "Labels"
	hint := "enter open · esc close"
	if p.mode == labelPickerAssign {
		heading = "Assign labels"
		hint = "space toggle · esc done"
	}

	lines := make([]string, 0, len(p.labels)+3)
	lines = append(lines, dialogTitleStyle.Render(heading), "")
	if len(p.labels) == 0 {
		lines = append(lines, emptyStateStyle.Render("No labels yet"))
	}
	for i, label := range p.labels {
		marker := "  "
		if p.mode == labelPickerAssign {
			marker = "[ ] "
			if note.HasLabel(label.ID) {
				marker = "[x] "
			}
		}
		line := fmt.Sprintf("%s%s", marker, label.Name)
		if i == p.cursor {
			line = buttonFocusStyle.Padding(0, 0).Render(line)
		}
		lines = append(lines, truncateToWidth(line, width-6))
	}
	lines = append(lines, "", hotkeyLineStyle.Render(hint))

	body := lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n"))
	return dialogStyle.Width(width).Render(body)
}
