package main

import (
	"fmt"
	"os"
)

const usageText = `noted is a terminal client for a notes service.

Usage:
  noted <command> [flags]

Commands:
  ui       run the terminal UI (default)
  ls       list notes for a view
  add      create a note
  labels   manage labels
  config   print configuration (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Examples:
  noted
  noted ls --view archive
  noted ls --view label --label 3
  noted add --title "Groceries" --content "milk, eggs"
  noted labels add work
  noted config --default
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("ui", commands["ui"].Run(nil), wiring.stderr)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
