package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"

	"noted/internal/types"
)

const maxTitleColumnWidth = 40

func printNotes(output io.Writer, notes []*types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tPIN\tTITLE\tLABELS\tCREATED")
	for _, note := range notes {
		pin := "-"
		if note.Pinned {
			pin = "*"
		}
		names := make([]string, 0, len(note.Labels))
		for _, label := range note.Labels {
			if label != nil {
				names = append(names, label.Name)
			}
		}
		title := note.Title
		if title == "" {
			title = "(untitled)"
		}
		title = runewidth.Truncate(title, maxTitleColumnWidth, "…")
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			note.ID, pin, title, strings.Join(names, ","), note.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	_ = writer.Flush()
}

func printLabels(output io.Writer, labels []*types.Label) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME")
	for _, label := range labels {
		fmt.Fprintf(writer, "%d\t%s\n", label.ID, label.Name)
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
