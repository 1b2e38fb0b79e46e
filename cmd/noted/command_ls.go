package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"strings"

	"noted/internal/config"
	"noted/internal/types"
)

type LSCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	newClient  func(cfg config.Config) (noteClient, error)
}

func NewLSCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error), newClient func(cfg config.Config) (noteClient, error)) *LSCommand {
	return &LSCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
		newClient:  newClient,
	}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	view := fs.String("view", "notes", "view to list: notes|archive|trash|reminders|label")
	labelID := fs.Int64("label", 0, "label id (with --view label)")
	page := fs.Int("page", 0, "page number, starting at 0")
	size := fs.Int("size", 0, "page size (defaults to config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if *size <= 0 {
		*size = cfg.PageSize()
	}

	api, err := c.newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var notes []*types.Note
	switch strings.ToLower(strings.TrimSpace(*view)) {
	case "", "notes", "home":
		notes, err = api.ListNotes(ctx, *page, *size)
	case "archive", "archived":
		notes, err = api.ListArchived(ctx, *page, *size)
	case "trash", "trashed":
		notes, err = api.ListTrashed(ctx, *page, *size)
	case "reminders":
		notes, err = api.ListReminders(ctx, *page, *size)
	case "label":
		if *labelID <= 0 {
			return errors.New("--view label requires --label <id>")
		}
		notes, err = api.ListNotesByLabel(ctx, *labelID, *page, *size)
	default:
		return errors.New("invalid view: must be notes, archive, trash, reminders, or label")
	}
	if err != nil {
		return err
	}

	printNotes(c.stdout, notes)
	return nil
}
