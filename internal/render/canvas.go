// Package render is a terminal sink for explorer snapshots. It accumulates
// rounds into a full-plane picture and draws it as a character map.
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/latticewalk/explorer"
	"github.com/katalvlaran/latticewalk/lattice"
)

// Map glyphs.
const (
	glyphGood    = '#'
	glyphBad     = 'x'
	glyphWaiting = '.'
	glyphEmpty   = ' '
)

// Canvas accumulates snapshots. Good points persist across rounds and
// waiting points are replaced every round. Bad points show only the latest
// round unless KeepBad is set or the run has finished.
type Canvas struct {
	KeepBad bool

	good    map[lattice.Point]struct{}
	bad     map[lattice.Point]struct{}
	latest  map[lattice.Point]struct{}
	waiting map[lattice.Point]struct{}
	max     int
	final   bool
}

// NewCanvas returns an empty canvas.
func NewCanvas(keepBad bool) *Canvas {
	return &Canvas{
		KeepBad: keepBad,
		good:    make(map[lattice.Point]struct{}),
		bad:     make(map[lattice.Point]struct{}),
		latest:  make(map[lattice.Point]struct{}),
		waiting: make(map[lattice.Point]struct{}),
	}
}

// Add merges one snapshot into the canvas.
func (c *Canvas) Add(s explorer.Snapshot) {
	for _, p := range s.Good {
		c.good[p] = struct{}{}
	}
	clear(c.latest)
	for _, p := range s.Bad {
		c.bad[p] = struct{}{}
		c.latest[p] = struct{}{}
	}
	clear(c.waiting)
	for _, p := range s.Waiting {
		c.waiting[p] = struct{}{}
	}
	c.max = max(c.max, s.Max)
	c.final = s.Final
}

// Counts returns accumulated good and bad totals and the current waiting count.
func (c *Canvas) Counts() (good, bad, waiting int) {
	return len(c.good), len(c.bad), len(c.waiting)
}

// Glyph returns the character drawn at p.
func (c *Canvas) Glyph(p lattice.Point) rune {
	if _, ok := c.good[p]; ok {
		return glyphGood
	}
	bad := c.latest
	if c.KeepBad || c.final {
		bad = c.bad
	}
	if _, ok := bad[p]; ok {
		return glyphBad
	}
	if _, ok := c.waiting[p]; ok {
		return glyphWaiting
	}

	return glyphEmpty
}

// Render draws the square [−r, r]² with +y at the top, where r is the
// discovered extent plus one, capped at limit when limit > 0.
func (c *Canvas) Render(w io.Writer, limit int) error {
	r := c.max + 1
	if limit > 0 && r > limit {
		r = limit
	}
	paint := map[rune]func(a ...any) string{
		glyphGood:    color.New(color.FgGreen).SprintFunc(),
		glyphBad:     color.New(color.FgRed).SprintFunc(),
		glyphWaiting: color.New(color.FgHiBlack).SprintFunc(),
	}

	bw := bufio.NewWriter(w)
	for y := r; y >= -r; y-- {
		for x := -r; x <= r; x++ {
			g := c.Glyph(lattice.Point{X: x, Y: y})
			if fn, ok := paint[g]; ok {
				if _, err := bw.WriteString(fn(string(g))); err != nil {
					return err
				}
				continue
			}
			if _, err := bw.WriteRune(g); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
