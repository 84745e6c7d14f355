package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticewalk/explorer"
	"github.com/katalvlaran/latticewalk/lattice"
)

const (
	verifyCmdUse   = "verify"
	verifyCmdShort = "Cross-check a search against a brute-force scan"

	// maxReported caps how many differing points are listed.
	maxReported = 10
)

// ErrMismatch is returned when the search and the reference scan disagree.
var ErrMismatch = errors.New("search result differs from reference scan")

// ErrIncomplete is returned when verify is asked to stop before the end.
var ErrIncomplete = errors.New("search stopped before completion; remove --max-rounds")

// NewVerifyCommand creates the verify subcommand.
func NewVerifyCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   verifyCmdUse,
		Short: verifyCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, configPath)
		},
	}

	addSearchFlags(cmd, &configPath)

	return cmd
}

func runVerify(cmd *cobra.Command, configPath string) error {
	s, err := newSearch(cmd, configPath)
	if err != nil {
		return err
	}

	good := make(map[lattice.Point]struct{})
	bad := make(map[lattice.Point]struct{})
	last, err := s.drive(cmd.Context(), func(snap explorer.Snapshot) {
		for _, p := range snap.Good {
			good[p] = struct{}{}
		}
		for _, p := range snap.Bad {
			bad[p] = struct{}{}
		}
	})
	if err != nil {
		return err
	}
	if !last.Final {
		return ErrIncomplete
	}

	ref, err := lattice.Region(s.cfg.Search.Target, last.Max+1, nil)
	if err != nil {
		return fmt.Errorf("reference scan: %w", err)
	}

	out := cmd.OutOrStdout()
	missingGood, extraGood := diff(ref.Good, good)
	missingBad, extraBad := diff(ref.Halo, bad)
	if len(missingGood)+len(extraGood)+len(missingBad)+len(extraBad) == 0 && !ref.Clipped {
		color.New(color.FgGreen).Fprintf(out,
			"OK: target %d, %d good and %d boundary points match the reference scan\n",
			s.cfg.Search.Target, len(good), len(bad))

		return nil
	}

	red := color.New(color.FgRed)
	red.Fprintf(out, "MISMATCH: target %d\n", s.cfg.Search.Target)
	if ref.Clipped {
		red.Fprintf(out, "  reference scan was clipped at radius %d\n", last.Max+1)
	}
	report := func(label string, pts []lattice.Point) {
		if len(pts) == 0 {
			return
		}
		if len(pts) > maxReported {
			pts = pts[:maxReported]
		}
		red.Fprintf(out, "  %s: %v\n", label, pts)
	}
	report("good missing from search", missingGood)
	report("good only in search", extraGood)
	report("boundary missing from search", missingBad)
	report("boundary only in search", extraBad)

	return ErrMismatch
}

// diff returns reference points absent from got, and got points absent
// from the reference.
func diff(ref []lattice.Point, got map[lattice.Point]struct{}) (missing, extra []lattice.Point) {
	want := make(map[lattice.Point]struct{}, len(ref))
	for _, p := range ref {
		want[p] = struct{}{}
		if _, ok := got[p]; !ok {
			missing = append(missing, p)
		}
	}
	for p := range got {
		if _, ok := want[p]; !ok {
			extra = append(extra, p)
		}
	}

	return missing, extra
}
