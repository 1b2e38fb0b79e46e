package main

import (
	"context"
	"io"
	"os"

	"noted/internal/client"
	"noted/internal/config"
	"noted/internal/types"
)

type commandRunner interface {
	Run(args []string) error
}

// noteClient is the backend surface the line-oriented commands need.
// *client.Client satisfies it.
type noteClient interface {
	ListNotes(ctx context.Context, page, size int) ([]*types.Note, error)
	ListArchived(ctx context.Context, page, size int) ([]*types.Note, error)
	ListTrashed(ctx context.Context, page, size int) ([]*types.Note, error)
	ListReminders(ctx context.Context, page, size int) ([]*types.Note, error)
	ListNotesByLabel(ctx context.Context, labelID int64, page, size int) ([]*types.Note, error)
	CreateNote(ctx context.Context, req client.NoteRequest) (*types.Note, error)
	ListLabels(ctx context.Context) ([]*types.Label, error)
	CreateLabel(ctx context.Context, name string) (*types.Label, error)
	RenameLabel(ctx context.Context, id int64, name string) (*types.Label, error)
	DeleteLabel(ctx context.Context, id int64) error
}

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	newClient  func(cfg config.Config) (noteClient, error)
	runUI      func(cfg config.Config) error
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
		newClient: func(cfg config.Config) (noteClient, error) {
			return client.New(cfg.BaseURL(), cfg.Timeout())
		},
		runUI: runUIProcess,
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ls":     NewLSCommand(wiring.stdout, wiring.stderr, wiring.loadConfig, wiring.newClient),
		"add":    NewAddCommand(wiring.stdout, wiring.stderr, wiring.loadConfig, wiring.newClient),
		"labels": NewLabelsCommand(wiring.stdout, wiring.stderr, wiring.loadConfig, wiring.newClient),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"ui":     NewUICommand(wiring.stderr, wiring.loadConfig, wiring.runUI),
	}
}
