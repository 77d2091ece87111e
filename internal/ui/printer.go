package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/calebmur/hefty/internal/scan"
	"github.com/calebmur/hefty/internal/stats"
)

const (
	mib = 1 << 20
	gib = 1 << 30
)

var (
	smallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	midStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	bigStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Printer writes ranked entries to a terminal or a pipe.
type Printer struct {
	W        io.Writer
	Color    bool
	Absolute bool
	Base     string // reference directory for relative display
}

// Table writes one "SIZE  PATH" line per entry. The size column is
// right-aligned; padding is applied before styling so ANSI escapes do not
// skew the widths.
func (p Printer) Table(entries []scan.Entry) error {
	sizes := make([]int64, len(entries))
	cells := make([]string, len(entries))
	width := 0
	for i, e := range entries {
		sizes[i] = e.Size()
		cells[i] = FormatSize(sizes[i])
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	for i, e := range entries {
		cell := fmt.Sprintf("%*s", width, cells[i])
		if p.Color {
			cell = p.styleSize(sizes[i]).Render(cell)
		}
		if _, err := fmt.Fprintf(p.W, "%s  %s\n", cell, DisplayPath(e.Path, p.Base, p.Absolute)); err != nil {
			return err
		}
	}
	return nil
}

func (Printer) styleSize(n int64) lipgloss.Style {
	switch {
	case n >= gib:
		return bigStyle
	case n >= 100*mib:
		return midStyle
	default:
		return smallStyle
	}
}

type entryRecord struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Depth int    `json:"depth"`
	Size  int64  `json:"size"`
	Human string `json:"human_size"`
}

// JSON writes the entries as an indented JSON array.
func (p Printer) JSON(entries []scan.Entry) error {
	records := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		size := e.Size()
		records = append(records, entryRecord{
			Path:  DisplayPath(e.Path, p.Base, p.Absolute),
			Kind:  e.Kind.String(),
			Depth: e.Depth,
			Size:  size,
			Human: FormatSize(size),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	_, err = fmt.Fprintln(p.W, string(data))
	return err
}

// Summary renders a one-line run summary from a stats snapshot.
func (p Printer) Summary(snap stats.Snapshot) string {
	line := fmt.Sprintf("%s entries (%s files, %s dirs, %s links), %s total, %d errors, %s",
		FormatCount(snap.Entries()),
		FormatCount(snap.Files),
		FormatCount(snap.Dirs),
		FormatCount(snap.Links),
		FormatSize(snap.Bytes),
		snap.WalkErrors+snap.SizeErrors,
		snap.Elapsed.Round(time.Millisecond),
	)
	if p.Color {
		return dimStyle.Render(line)
	}
	return line
}
