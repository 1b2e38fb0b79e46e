package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/client"
	"noted/internal/logging"
	"noted/internal/notelist"
	"noted/internal/store"
	"noted/internal/types"
)

type uiMode int

const (
	modeList uiMode = iota
	modeEdit
	modeConfirm
	modeLabels
)

// Options wires the model's collaborators. Logger and UIState may be nil.
type Options struct {
	API       NoteService
	Logger    logging.Logger
	UIState   store.UIStateStore
	PageSize  int
	StartPage notelist.Page
}

// Model is the bubbletea root. All note state lives in the coordinator's
// page store; the model applies each action optimistically, fires the
// confirming request as a command, and reloads the page when one fails.
type Model struct {
	api      NoteService
	logger   logging.Logger
	uiState  store.UIStateStore
	pageSize int

	coord  *notelist.Coordinator
	cursor int
	mode   uiMode

	editor  *EditController
	confirm *ConfirmController
	labels  *LabelPicker

	knownLabels []*types.Label

	pendingDeleteID      int64
	pendingLabelAssignID int64

	loading bool
	status  string

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time
	now        func() time.Time

	width  int
	height int
}

func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	m := &Model{
		api:      opts.API,
		logger:   logger,
		uiState:  opts.UIState,
		pageSize: pageSize,
		editor:   NewEditController(),
		confirm:  NewConfirmController(),
		labels:   NewLabelPicker(),
		now:      time.Now,
	}
	m.coord = notelist.NewCoordinator(notelist.NewStore(opts.StartPage), opts.API, pageSize)
	m.loading = true
	return m
}

// Run starts the terminal UI and blocks until it exits.
func Run(opts Options) error {
	program := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(fetchPageCmd(m.coord), tickCmd())
}

func (m *Model) page() notelist.Page {
	return m.coord.Store().Page()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.Resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		return m, tickCmd()

	case notesLoadedMsg:
		// Responses for a page the user already left are stale.
		if msg.page != m.page() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Error("load page failed", logging.Field{Key: "page", Value: msg.page}, logging.Field{Key: "error", Value: msg.err})
			m.showErrorToast("Could not load " + msg.page.String())
			return m, nil
		}
		m.coord.Store().Load(msg.notes)
		m.clampCursor()
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.logger.Error("mutation failed",
				logging.Field{Key: "op", Value: msg.name},
				logging.Field{Key: "note", Value: msg.id},
				logging.Field{Key: "error", Value: msg.err})
			m.showErrorToast("Could not " + msg.name + " note")
			// No per-field rollback: reload the page to recover.
			if msg.page == m.page() {
				m.loading = true
				return m, fetchPageCmd(m.coord)
			}
			return m, nil
		}
		if msg.note != nil && msg.page == m.page() {
			m.coord.ApplyServer(msg.note)
			m.clampCursor()
		}
		return m, nil

	case noteCreatedMsg:
		if msg.err != nil {
			m.logger.Error("create failed", logging.Field{Key: "error", Value: msg.err})
			m.showErrorToast("Could not create note")
			return m, nil
		}
		if m.coord.InsertCreated(msg.note) {
			m.clampCursor()
		}
		m.showInfoToast("Note created")
		return m, nil

	case labelsLoadedMsg:
		if msg.err != nil {
			m.logger.Error("load labels failed", logging.Field{Key: "error", Value: msg.err})
			m.showErrorToast("Could not load labels")
			m.pendingLabelAssignID = 0
			return m, nil
		}
		m.knownLabels = msg.labels
		if m.pendingLabelAssignID != 0 {
			m.labels.OpenAssign(m.pendingLabelAssignID, msg.labels)
		} else {
			m.labels.OpenBrowse(msg.labels)
		}
		m.mode = modeLabels
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	switch m.mode {
	case modeEdit:
		return m.handleEditKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeLabels:
		return m.handleLabelsKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "j", "down":
		if m.cursor < m.coord.Store().Len()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, m.coord.Store().Len()-1)
	case "1":
		return m, m.setPage(notelist.Home())
	case "2":
		return m, m.setPage(notelist.Archive())
	case "3":
		return m, m.setPage(notelist.Trash())
	case "4":
		return m, m.setPage(notelist.Reminders())
	case "r":
		m.loading = true
		return m, fetchPageCmd(m.coord)
	case "n":
		m.editor.OpenCreate()
		m.editor.Resize(m.width, m.height)
		m.mode = modeEdit
	case "e":
		if note, ok := m.selectedNote(); ok {
			m.editor.OpenEdit(note)
			m.editor.Resize(m.width, m.height)
			m.mode = modeEdit
		}
	case "p":
		if note, ok := m.selectedNote(); ok {
			return m, m.stage(m.coord.TogglePin(note.ID))
		}
	case "a":
		if note, ok := m.selectedNote(); ok {
			return m, m.stage(m.coord.ToggleArchive(note.ID))
		}
	case "c":
		if note, ok := m.selectedNote(); ok {
			return m, m.stage(m.coord.Recolor(note.ID, nextColor(note.Color())))
		}
	case "d":
		if note, ok := m.selectedNote(); ok {
			if m.page().Kind == notelist.PageTrash {
				m.pendingDeleteID = note.ID
				m.confirm.Open("Delete forever?",
					fmt.Sprintf("%q will be deleted permanently. This cannot be undone.", noteDisplayTitle(note)),
					"Delete", "Cancel")
				m.mode = modeConfirm
				return m, nil
			}
			return m, m.stage(m.coord.SoftDelete(note.ID))
		}
	case "u":
		if note, ok := m.selectedNote(); ok && m.page().Kind == notelist.PageTrash {
			return m, m.stage(m.coord.Restore(note.ID))
		}
	case "l":
		if note, ok := m.selectedNote(); ok {
			m.pendingLabelAssignID = note.ID
			return m, fetchLabelsCmd(m.api)
		}
	case "L":
		m.pendingLabelAssignID = 0
		return m, fetchLabelsCmd(m.api)
	case "y":
		if note, ok := m.selectedNote(); ok {
			if err := copyTextToClipboard(note.Content); err != nil {
				m.logger.Warn("clipboard copy failed", logging.Field{Key: "error", Value: err})
				m.showErrorToast("Copy failed")
			} else {
				m.showInfoToast("Copied note content")
			}
		}
	}
	return m, nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result, cmd := m.editor.HandleKey(msg)
	switch result {
	case editResultCancel:
		m.editor.Close()
		m.mode = modeList
		return m, nil
	case editResultSave:
		return m.saveEditor()
	}
	return m, cmd
}

func (m *Model) saveEditor() (tea.Model, tea.Cmd) {
	defer func() {
		m.editor.Close()
		m.mode = modeList
	}()
	if m.editor.IsCreating() {
		// Empty notes are discarded, never sent.
		if m.editor.Empty() {
			m.showInfoToast("Discarded empty note")
			return m, nil
		}
		fields := m.editor.Fields()
		req := client.NoteRequest{
			Title:           fields.Title,
			Content:         fields.Content,
			Pinned:          fields.Pinned,
			BackgroundColor: fields.BackgroundColor,
			Reminder:        fields.Reminder,
		}
		return m, createNoteCmd(m.api, req)
	}
	// Unchanged saves skip the round trip entirely.
	if !m.editor.Dirty() {
		return m, nil
	}
	return m, m.stage(m.coord.FullEdit(m.editor.NoteID(), m.editor.Fields()))
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	handled, choice := m.confirm.HandleKey(msg)
	if !handled {
		return m, nil
	}
	switch choice {
	case confirmChoiceConfirm:
		id := m.pendingDeleteID
		m.pendingDeleteID = 0
		m.confirm.Close()
		m.mode = modeList
		return m, m.stage(m.coord.HardDelete(id))
	case confirmChoiceCancel:
		m.pendingDeleteID = 0
		m.confirm.Close()
		m.mode = modeList
	}
	return m, nil
}

func (m *Model) handleLabelsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.labels.HandleKey(msg) {
	case labelActionClose:
		m.labels.Close()
		m.pendingLabelAssignID = 0
		m.mode = modeList
	case labelActionToggle:
		label, ok := m.labels.Selected()
		if !ok {
			return m, nil
		}
		noteID := m.labels.NoteID()
		note, found := m.coord.Store().Get(noteID)
		if !found {
			return m, nil
		}
		assign := !note.HasLabel(label.ID)
		return m, m.stage(m.coord.ToggleLabel(noteID, label, assign))
	case labelActionOpenView:
		label, ok := m.labels.Selected()
		if !ok {
			return m, nil
		}
		m.labels.Close()
		m.pendingLabelAssignID = 0
		m.mode = modeList
		return m, m.setPage(notelist.LabelView(label.ID))
	}
	return m, nil
}

// stage turns a coordinator result into the background confirmation command.
// The optimistic transition is already visible by the time this returns.
func (m *Model) stage(mutation *notelist.Mutation, ok bool) tea.Cmd {
	if !ok || mutation == nil {
		return nil
	}
	m.clampCursor()
	return confirmCmd(m.page(), mutation)
}

// setPage swaps in a fresh store and coordinator for the target page and
// fetches it. Optimistic state never crosses pages.
func (m *Model) setPage(page notelist.Page) tea.Cmd {
	m.coord = notelist.NewCoordinator(notelist.NewStore(page), m.api, m.pageSize)
	m.cursor = 0
	m.loading = true
	m.persistUIState(page)
	return fetchPageCmd(m.coord)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.persistUIState(m.page())
	return m, tea.Quit
}

func (m *Model) persistUIState(page notelist.Page) {
	if m.uiState == nil {
		return
	}
	state := store.UIState{LastPage: pageStateName(page), LastLabelID: page.LabelID}
	if err := m.uiState.Save(state); err != nil {
		m.logger.Warn("persist ui state failed", logging.Field{Key: "error", Value: err})
	}
}

func (m *Model) selectedNote() (*types.Note, bool) {
	notes := m.coord.Store().Notes()
	if m.cursor < 0 || m.cursor >= len(notes) {
		return nil, false
	}
	return notes[m.cursor], true
}

func (m *Model) clampCursor() {
	if limit := m.coord.Store().Len() - 1; m.cursor > limit {
		m.cursor = max(0, limit)
	}
}

func noteDisplayTitle(note *types.Note) string {
	if note == nil {
		return ""
	}
	if note.Title != "" {
		return note.Title
	}
	return "Untitled"
}

func pageStateName(page notelist.Page) string {
	switch page.Kind {
	case notelist.PageArchive:
		return "archive"
	case notelist.PageTrash:
		return "trash"
	case notelist.PageReminders:
		return "reminders"
	case notelist.PageLabel:
		return "label"
	default:
		return "notes"
	}
}

// PageFromState maps a persisted ui state back to a page, defaulting to Home
// for anything unrecognized.
func PageFromState(state store.UIState) notelist.Page {
	switch state.LastPage {
	case "archive":
		return notelist.Archive()
	case "trash":
		return notelist.Trash()
	case "reminders":
		return notelist.Reminders()
	case "label":
		if state.LastLabelID > 0 {
			return notelist.LabelView(state.LastLabelID)
		}
	}
	return notelist.Home()
}
