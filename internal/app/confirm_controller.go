package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const confirmMaxWidth = 56

// ConfirmController is the blocking guard in front of irreversible actions.
// No state change and no network call happens until the user picks the
// confirm button.
type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	c.active = true
	c.title = strings.TrimSpace(title)
	c.message = strings.TrimSpace(message)
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	c.confirmLabel = confirmLabel
	c.cancelLabel = cancelLabel
	// Cancel is preselected so a reflexive enter stays safe.
	c.selected = 1
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	*c = ConfirmController{}
}

func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q", "n":
		return true, confirmChoiceCancel
	case "y":
		return true, confirmChoiceConfirm
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab":
		c.selected = 1 - c.selected
		return true, confirmChoiceNone
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	return true, confirmChoiceNone
}

func (c *ConfirmController) View(maxWidth int) string {
	if c == nil || !c.active {
		return ""
	}
	width := confirmMaxWidth
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}

	confirm := buttonStyle.Render(c.confirmLabel)
	cancel := buttonFocusStyle.Render(c.cancelLabel)
	if c.selected == 0 {
		confirm = buttonFocusStyle.Render(c.confirmLabel)
		cancel = buttonStyle.Render(c.cancelLabel)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel)

	body := lipgloss.JoinVertical(lipgloss.Left,
		dialogTitleStyle.Render(c.title),
		"",
		lipgloss.NewStyle().Width(width-6).Render(c.message),
		"",
		buttons,
	)
	return dialogStyle.Width(width).Render(body)
}
