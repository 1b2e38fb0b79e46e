package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/client"
	"noted/internal/notelist"
	"noted/internal/types"
)

const requestTimeout = 10 * time.Second

// NoteService is the backend surface the TUI needs. *client.Client
// satisfies it.
type NoteService interface {
	notelist.NoteAPI
	CreateNote(ctx context.Context, req client.NoteRequest) (*types.Note, error)
	ListLabels(ctx context.Context) ([]*types.Label, error)
}

type notesLoadedMsg struct {
	page  notelist.Page
	notes []*types.Note
	err   error
}

type mutationDoneMsg struct {
	page notelist.Page
	name string
	id   int64
	note *types.Note
	err  error
}

type noteCreatedMsg struct {
	note *types.Note
	err  error
}

type labelsLoadedMsg struct {
	labels []*types.Label
	err    error
}

type tickMsg time.Time

func fetchPageCmd(coord *notelist.Coordinator) tea.Cmd {
	page := coord.Store().Page()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		notes, err := coord.Fetch(ctx)
		return notesLoadedMsg{page: page, notes: notes, err: err}
	}
}

// confirmCmd runs a staged mutation's backing request in the background.
// The optimistic transition has already landed by the time this runs.
func confirmCmd(page notelist.Page, mutation *notelist.Mutation) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		note, err := mutation.Do(ctx)
		return mutationDoneMsg{page: page, name: mutation.Name, id: mutation.NoteID, note: note, err: err}
	}
}

func createNoteCmd(api NoteService, req client.NoteRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		note, err := api.CreateNote(ctx, req)
		return noteCreatedMsg{note: note, err: err}
	}
}

func fetchLabelsCmd(api NoteService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		labels, err := api.ListLabels(ctx)
		return labelsLoadedMsg{labels: labels, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
