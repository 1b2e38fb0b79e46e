package app

import (
	"github.com/charmbracelet/lipgloss"

	"noted/internal/types"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245"))
	tabActiveStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	cardSelectedStyle = cardStyle.
				BorderForeground(lipgloss.Color("62"))

	cardTitleStyle   = lipgloss.NewStyle().Bold(true)
	cardMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	pinMarkerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	labelChipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
	previewTitle     = lipgloss.NewStyle().Bold(true).Underline(true)
	statusLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hotkeyLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	dialogStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true)
	buttonStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("250"))
	buttonFocusStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).
				Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62"))

	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).Background(lipgloss.Color("28"))
	toastWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).Background(lipgloss.Color("178"))
	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).Background(lipgloss.Color("124"))
)

// Terminal accents for the note palette; hex backgrounds do not survive a
// 256-color terminal, so each palette entry maps to an ANSI accent used for
// the card's color dot.
var colorAccents = map[string]lipgloss.Color{
	"#ffffff": lipgloss.Color("255"),
	"#f0f9ff": lipgloss.Color("117"),
	"#fdf2f8": lipgloss.Color("218"),
	"#fff7ed": lipgloss.Color("215"),
	"#f0fdf4": lipgloss.Color("120"),
	"#faf5ff": lipgloss.Color("183"),
	"#fefce8": lipgloss.Color("229"),
}

func colorAccent(hex string) lipgloss.Color {
	if accent, ok := colorAccents[hex]; ok {
		return accent
	}
	return colorAccents[types.DefaultNoteColor]
}

func colorName(hex string) string {
	for _, color := range types.NoteColors {
		if color.Hex == hex {
			return color.Name
		}
	}
	return types.NoteColors[0].Name
}

// nextColor cycles through the palette starting after the current value.
func nextColor(hex string) string {
	for i, color := range types.NoteColors {
		if color.Hex == hex {
			return types.NoteColors[(i+1)%len(types.NoteColors)].Hex
		}
	}
	return types.NoteColors[1].Hex
}
