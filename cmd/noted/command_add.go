package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"noted/internal/client"
	"noted/internal/config"
	"noted/internal/types"
)

type AddCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	newClient  func(cfg config.Config) (noteClient, error)
}

func NewAddCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error), newClient func(cfg config.Config) (noteClient, error)) *AddCommand {
	return &AddCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
		newClient:  newClient,
	}
}

func (c *AddCommand) Run(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	color := fs.String("color", "", "background color name (white, blue, pink, orange, green, purple, yellow)")
	pin := fs.Bool("pin", false, "pin the note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := client.NoteRequest{
		Title:           strings.TrimSpace(*title),
		Content:         *content,
		Pinned:          *pin,
		BackgroundColor: types.DefaultNoteColor,
	}
	if *color != "" {
		hex, ok := colorByName(*color)
		if !ok {
			return fmt.Errorf("unknown color %q", *color)
		}
		req.BackgroundColor = hex
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	api, err := c.newClient(cfg)
	if err != nil {
		return err
	}

	note, err := api.CreateNote(context.Background(), req)
	if err != nil {
		if errors.Is(err, client.ErrEmptyNote) {
			fmt.Fprintln(c.stdout, "discarded empty note")
			return nil
		}
		return err
	}
	fmt.Fprintf(c.stdout, "created note %d\n", note.ID)
	return nil
}

func colorByName(name string) (string, bool) {
	for _, color := range types.NoteColors {
		if strings.EqualFold(color.Name, strings.TrimSpace(name)) {
			return color.Hex, true
		}
	}
	return "", false
}
