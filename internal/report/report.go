// Package report summarises explorer snapshots for terminal output.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/latticewalk/explorer"
)

// Row is the per-round count line: valid, invalid and waiting points.
type Row struct {
	Round   int
	Good    int
	Bad     int
	Waiting int
	Max     int
}

// Summary accumulates one Row per snapshot and running totals.
type Summary struct {
	Target    int
	Rows      []Row
	TotalGood int
	TotalBad  int
	Final     bool
}

// NewSummary returns an empty summary for a search with target.
func NewSummary(target int) *Summary {
	return &Summary{Target: target}
}

// Add records a snapshot.
func (s *Summary) Add(snap explorer.Snapshot) {
	s.Rows = append(s.Rows, Row{
		Round:   snap.Round,
		Good:    len(snap.Good),
		Bad:     len(snap.Bad),
		Waiting: len(snap.Waiting),
		Max:     snap.Max,
	})
	s.TotalGood += len(snap.Good)
	s.TotalBad += len(snap.Bad)
	s.Final = snap.Final
}

// Max returns the extent reported by the latest row, or 0.
func (s *Summary) Max() int {
	if len(s.Rows) == 0 {
		return 0
	}

	return s.Rows[len(s.Rows)-1].Max
}

// Message renders the count line for the latest round.
func (s *Summary) Message() string {
	waiting := 0
	if n := len(s.Rows); n > 0 {
		waiting = s.Rows[n-1].Waiting
	}

	return fmt.Sprintf("valid: %s, invalid: %s, waiting check: %s",
		humanize.Comma(int64(s.TotalGood)),
		humanize.Comma(int64(s.TotalBad)),
		humanize.Comma(int64(waiting)))
}

// RenderTable writes one row per round plus a totals footer.
func (s *Summary) RenderTable(w io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Round", "Good", "Bad", "Waiting", "Max"})
	for _, r := range s.Rows {
		tbl.AppendRow(table.Row{
			r.Round,
			humanize.Comma(int64(r.Good)),
			humanize.Comma(int64(r.Bad)),
			humanize.Comma(int64(r.Waiting)),
			r.Max,
		})
	}
	tbl.AppendFooter(table.Row{
		"Total",
		humanize.Comma(int64(s.TotalGood)),
		humanize.Comma(int64(s.TotalBad)),
		"",
		s.Max(),
	})
	tbl.Render()

	return nil
}

// RenderStatus writes a coloured one-line outcome.
func (s *Summary) RenderStatus(w io.Writer) error {
	var err error
	if s.Final {
		_, err = color.New(color.FgGreen).Fprintf(w, "Finished target %d in %d rounds, %s\n",
			s.Target, len(s.Rows), s.Message())
	} else {
		_, err = color.New(color.FgYellow).Fprintf(w, "Stopped target %d after %d rounds, %s\n",
			s.Target, len(s.Rows), s.Message())
	}

	return err
}
