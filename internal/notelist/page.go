// Package notelist holds the per-page note collections the UI renders and
// the policies that keep them consistent while mutations are confirmed in
// the background.
package notelist

import "fmt"

type PageKind int

const (
	PageHome PageKind = iota
	PageArchive
	PageTrash
	PageReminders
	PageLabel
)

// Page identifies one list-bearing view. Each view owns an independent
// store; notes move between views only through server round trips.
type Page struct {
	Kind    PageKind
	LabelID int64
}

func Home() Page      { return Page{Kind: PageHome} }
func Archive() Page   { return Page{Kind: PageArchive} }
func Trash() Page     { return Page{Kind: PageTrash} }
func Reminders() Page { return Page{Kind: PageReminders} }

func LabelView(labelID int64) Page {
	return Page{Kind: PageLabel, LabelID: labelID}
}

func (p Page) String() string {
	switch p.Kind {
	case PageHome:
		return "notes"
	case PageArchive:
		return "archive"
	case PageTrash:
		return "trash"
	case PageReminders:
		return "reminders"
	case PageLabel:
		return fmt.Sprintf("label %d", p.LabelID)
	default:
		return "unknown"
	}
}
