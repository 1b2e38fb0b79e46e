package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"noted/internal/notelist"
	"noted/internal/types"
)

const (
	minPreviewWidth = 30
	listShare       = 0.45
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.viewTabs()
	footer := m.viewFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := m.viewBody(bodyHeight)
	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if overlay := m.viewOverlay(); overlay != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return screen
}

func (m *Model) viewTabs() string {
	page := m.page()
	tabs := []struct {
		page  notelist.Page
		title string
	}{
		{notelist.Home(), "1 Notes"},
		{notelist.Archive(), "2 Archive"},
		{notelist.Trash(), "3 Trash"},
		{notelist.Reminders(), "4 Reminders"},
	}
	parts := make([]string, 0, len(tabs)+1)
	for _, tab := range tabs {
		style := tabStyle
		if tab.page == page {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(tab.title))
	}
	if page.Kind == notelist.PageLabel {
		parts = append(parts, tabActiveStyle.Render("Label: "+m.labelName(page.LabelID)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewBody(height int) string {
	notes := m.coord.Store().Notes()

	listWidth := int(float64(m.width) * listShare)
	if m.width-listWidth < minPreviewWidth {
		listWidth = m.width
	}
	previewWidth := m.width - listWidth

	list := m.viewList(notes, listWidth, height)
	if previewWidth <= 0 {
		return list
	}
	preview := m.viewPreview(notes, previewWidth-2, height)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Height(height).Render(list),
		lipgloss.NewStyle().Width(previewWidth).Height(height).PaddingLeft(2).Render(preview),
	)
}

func (m *Model) viewList(notes []*types.Note, width, height int) string {
	var b strings.Builder

	if m.page().Kind == notelist.PageTrash && len(notes) > 0 {
		b.WriteString(cardMetaStyle.Render(truncateToWidth("Notes in the trash can be restored or deleted forever.", width)))
		b.WriteString("\n")
	}

	if m.loading && len(notes) == 0 {
		b.WriteString(emptyStateStyle.Render("Loading..."))
		return b.String()
	}
	if len(notes) == 0 {
		b.WriteString(emptyStateStyle.Render(m.emptyMessage()))
		return b.String()
	}

	cardHeight := 4
	visible := max(1, height/cardHeight)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(len(notes), start+visible)

	for i := start; i < end; i++ {
		b.WriteString(m.viewCard(notes[i], i == m.cursor, width-4))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewCard(note *types.Note, selected bool, width int) string {
	title := cardTitleStyle.Render(truncateToWidth(noteDisplayTitle(note), max(4, width-4)))
	if note.Pinned {
		title = pinMarkerStyle.Render("📌 ") + title
	}

	meta := []string{note.CreatedAt.Local().Format("Jan 2")}
	if note.Reminder != nil {
		meta = append(meta, "⏰ "+note.Reminder.Local().Format("Jan 2 15:04"))
	}
	dot := lipgloss.NewStyle().Foreground(colorAccent(note.Color())).Render("●")
	metaLine := dot + " " + cardMetaStyle.Render(strings.Join(meta, " · "))
	if len(note.Labels) > 0 {
		names := make([]string, 0, len(note.Labels))
		for _, label := range note.Labels {
			if label != nil {
				names = append(names, "#"+label.Name)
			}
		}
		metaLine += " " + labelChipStyle.Render(truncateToWidth(strings.Join(names, " "), max(4, width/2)))
	}

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(width).Render(title + "\n" + truncateToWidth(metaLine, max(4, width)))
}

func (m *Model) viewPreview(notes []*types.Note, width, height int) string {
	if m.cursor < 0 || m.cursor >= len(notes) {
		return emptyStateStyle.Render("Nothing selected")
	}
	note := notes[m.cursor]

	var b strings.Builder
	b.WriteString(previewTitle.Render(truncateToWidth(noteDisplayTitle(note), width)))
	b.WriteString("\n\n")
	b.WriteString(renderMarkdown(note.Content, width))

	lines := strings.Split(b.String(), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewFooter() string {
	page := m.page()
	status := fmt.Sprintf("%s · %d notes", page.String(), m.coord.Store().Len())
	if m.loading {
		status += " · loading"
	}
	hotkeys := "j/k move · 1-4 pages · n new · e edit · p pin · a archive · c color · d delete · l labels · L browse · y copy · r reload · q quit"
	if page.Kind == notelist.PageTrash {
		hotkeys = "j/k move · 1-4 pages · u restore · d delete forever · r reload · q quit"
	}

	lines := []string{
		statusLineStyle.Render(truncateToWidth(status, m.width)),
		hotkeyLineStyle.Render(truncateToWidth(hotkeys, m.width)),
	}
	if toast := m.toastLine(m.width); toast != "" {
		lines = append(lines, toast)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewOverlay() string {
	switch m.mode {
	case modeEdit:
		return m.editor.View(m.width - 4)
	case modeConfirm:
		return m.confirm.View(m.width - 4)
	case modeLabels:
		var note *types.Note
		if m.labels.Mode() == labelPickerAssign {
			note, _ = m.coord.Store().Get(m.labels.NoteID())
		}
		return m.labels.View(note, m.width-4)
	}
	return ""
}

func (m *Model) emptyMessage() string {
	switch m.page().Kind {
	case notelist.PageArchive:
		return "Nothing archived"
	case notelist.PageTrash:
		return "Trash is empty"
	case notelist.PageReminders:
		return "No reminders set"
	case notelist.PageLabel:
		return "No notes carry this label"
	default:
		return "No notes yet. Press n to create one."
	}
}

func (m *Model) labelName(id int64) string {
	for _, label := range m.knownLabels {
		if label != nil && label.ID == id {
			return label.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}
