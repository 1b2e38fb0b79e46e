package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"noted/internal/app"
	"noted/internal/client"
	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/notelist"
	"noted/internal/store"
)

type UICommand struct {
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	runUI      func(cfg config.Config) error
}

func NewUICommand(stderr io.Writer, loadConfig func() (config.Config, error), runUI func(cfg config.Config) error) *UICommand {
	return &UICommand{
		stderr:     stderr,
		loadConfig: loadConfig,
		runUI:      runUI,
	}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	return c.runUI(cfg)
}

func runUIProcess(cfg config.Config) error {
	svc, err := client.New(cfg.BaseURL(), cfg.Timeout())
	if err != nil {
		return err
	}

	statePath, err := config.StatePath()
	if err != nil {
		return err
	}
	stateStore := store.NewFileUIStateStore(statePath)
	state, err := stateStore.Load()
	if err != nil {
		// A corrupt state file must not keep the UI from starting.
		state = store.UIState{}
	}
	startPage := app.PageFromState(state)
	if state.LastPage == "" {
		startPage = startPageFromConfig(cfg)
	}

	return app.Run(app.Options{
		API:       svc,
		Logger:    openUILogger(cfg),
		UIState:   stateStore,
		PageSize:  cfg.PageSize(),
		StartPage: startPage,
	})
}

// openUILogger writes logfmt lines to a file under the data dir; the UI
// owns the terminal, so nothing may log to stderr while it runs.
func openUILogger(cfg config.Config) logging.Logger {
	logPath, err := config.LogPath()
	if err != nil {
		return logging.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return logging.Nop()
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logging.Nop()
	}
	return logging.New(file, logging.ParseLevel(cfg.Logging.Level))
}

func startPageFromConfig(cfg config.Config) notelist.Page {
	switch cfg.UI.StartPage {
	case "archive":
		return notelist.Archive()
	case "trash":
		return notelist.Trash()
	case "reminders":
		return notelist.Reminders()
	default:
		return notelist.Home()
	}
}
