package main

import (
	"flag"
	"fmt"
	"io"

	"noted/internal/config"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error)) *ConfigCommand {
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if !*defaults {
		loaded, err := c.loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if path, err := config.ConfigPath(); err == nil {
		fmt.Fprintf(c.stdout, "# %s\n", path)
	}
	out, err := cfg.Encode()
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.stdout, out)
	return err
}
