package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func confirmKey(key string) tea.KeyMsg {
	switch key {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestConfirmEnterDefaultsToCancel(t *testing.T) {
	c := NewConfirmController()
	c.Open("Delete forever?", "gone for good", "Delete", "Cancel")

	handled, choice := c.HandleKey(confirmKey("enter"))
	if !handled || choice != confirmChoiceCancel {
		t.Fatalf("enter without navigation must cancel, got %v", choice)
	}
}

func TestConfirmExplicitYes(t *testing.T) {
	c := NewConfirmController()
	c.Open("Delete forever?", "gone for good", "", "")

	if _, choice := c.HandleKey(confirmKey("y")); choice != confirmChoiceConfirm {
		t.Fatalf("y must confirm")
	}
}

func TestConfirmNavigateThenEnter(t *testing.T) {
	c := NewConfirmController()
	c.Open("Delete forever?", "gone for good", "", "")

	c.HandleKey(confirmKey("left"))
	if _, choice := c.HandleKey(confirmKey("enter")); choice != confirmChoiceConfirm {
		t.Fatalf("enter on the confirm button must confirm")
	}

	c.Open("again", "again", "", "")
	c.HandleKey(confirmKey("tab"))
	if _, choice := c.HandleKey(confirmKey("enter")); choice != confirmChoiceConfirm {
		t.Fatalf("tab from cancel lands on confirm")
	}
}

func TestConfirmSwallowsUnrelatedKeys(t *testing.T) {
	c := NewConfirmController()
	c.Open("t", "m", "", "")

	handled, choice := c.HandleKey(confirmKey("x"))
	if !handled || choice != confirmChoiceNone {
		t.Fatalf("open dialog must swallow every key")
	}
}

func TestConfirmClosedIgnoresKeys(t *testing.T) {
	c := NewConfirmController()
	if handled, _ := c.HandleKey(confirmKey("y")); handled {
		t.Fatalf("closed dialog must not handle keys")
	}
}
