package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"noted/internal/config"
)

type LabelsCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	newClient  func(cfg config.Config) (noteClient, error)
}

func NewLabelsCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error), newClient func(cfg config.Config) (noteClient, error)) *LabelsCommand {
	return &LabelsCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
		newClient:  newClient,
	}
}

func (c *LabelsCommand) Run(args []string) error {
	fs := flag.NewFlagSet("labels", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	api, err := c.newClient(cfg)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if len(rest) == 0 || rest[0] == "list" {
		labels, err := api.ListLabels(ctx)
		if err != nil {
			return err
		}
		printLabels(c.stdout, labels)
		return nil
	}

	switch rest[0] {
	case "add":
		name := strings.TrimSpace(strings.Join(rest[1:], " "))
		if name == "" {
			return errors.New("usage: labels add <name>")
		}
		label, err := api.CreateLabel(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "created label %d\n", label.ID)
		return nil
	case "rename":
		if len(rest) < 3 {
			return errors.New("usage: labels rename <id> <name>")
		}
		id, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid label id %q", rest[1])
		}
		name := strings.TrimSpace(strings.Join(rest[2:], " "))
		if name == "" {
			return errors.New("usage: labels rename <id> <name>")
		}
		if _, err := api.RenameLabel(ctx, id, name); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "renamed label %d\n", id)
		return nil
	case "rm":
		if len(rest) != 2 {
			return errors.New("usage: labels rm <id>")
		}
		id, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid label id %q", rest[1])
		}
		if err := api.DeleteLabel(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "deleted label %d\n", id)
		return nil
	default:
		return fmt.Errorf("unknown labels subcommand: %s", rest[0])
	}
}
