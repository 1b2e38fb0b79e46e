package notelist

import (
	"testing"
	"time"

	"noted/internal/types"
)

func reminderAt(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse reminder: %v", err)
	}
	return &parsed
}

func TestBelongs(t *testing.T) {
	reminder := reminderAt(t, "2026-03-01T10:00:00Z")
	cases := []struct {
		name string
		page Page
		note *types.Note
		want bool
	}{
		{"home active", Home(), &types.Note{}, true},
		{"home archived", Home(), &types.Note{Archived: true}, false},
		{"home deleted", Home(), &types.Note{Deleted: true}, false},
		{"archive archived", Archive(), &types.Note{Archived: true}, true},
		{"archive active", Archive(), &types.Note{}, false},
		{"archive deleted overrides", Archive(), &types.Note{Archived: true, Deleted: true}, false},
		{"trash deleted", Trash(), &types.Note{Deleted: true}, true},
		{"trash deleted and archived", Trash(), &types.Note{Deleted: true, Archived: true}, true},
		{"trash active", Trash(), &types.Note{}, false},
		{"reminders with reminder", Reminders(), &types.Note{Reminder: reminder}, true},
		{"reminders archived still listed", Reminders(), &types.Note{Reminder: reminder, Archived: true}, true},
		{"reminders without reminder", Reminders(), &types.Note{}, false},
		{"reminders deleted", Reminders(), &types.Note{Reminder: reminder, Deleted: true}, false},
		{"label has label", LabelView(7), &types.Note{Labels: []*types.Label{{ID: 7}}}, true},
		{"label other label only", LabelView(7), &types.Note{Labels: []*types.Label{{ID: 9}}}, false},
		{"label archived still listed", LabelView(7), &types.Note{Archived: true, Labels: []*types.Label{{ID: 7}}}, true},
		{"label deleted", LabelView(7), &types.Note{Deleted: true, Labels: []*types.Label{{ID: 7}}}, false},
		{"nil note", Home(), nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Belongs(tc.page, tc.note); got != tc.want {
				t.Fatalf("Belongs(%v) = %v, want %v", tc.page, got, tc.want)
			}
		})
	}
}

func TestPageString(t *testing.T) {
	if got := LabelView(3).String(); got != "label 3" {
		t.Fatalf("unexpected label page name: %q", got)
	}
	if got := Home().String(); got != "notes" {
		t.Fatalf("unexpected home page name: %q", got)
	}
}
