package explorer

import (
	"cmp"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latticewalk/lattice"
)

// checkpointVersion is bumped whenever the encoded layout changes.
const checkpointVersion = 1

// checkpoint is the YAML layout of a saved Run State.
type checkpoint struct {
	Version int             `yaml:"version"`
	Target  int             `yaml:"target"`
	Max     int             `yaml:"max"`
	Limit   int             `yaml:"limit"`
	Round   int             `yaml:"round"`
	Done    bool            `yaml:"done"`
	Stats   Stats           `yaml:"stats"`
	Queue   []lattice.Point `yaml:"queue"`
	Visited []lattice.Point `yaml:"visited,flow"`
}

// Checkpoint encodes the Run State as YAML. The explorer is unchanged and
// may keep stepping. Options (pacing, hooks, logger) are not saved.
func (e *Explorer) Checkpoint() ([]byte, error) {
	visited := make([]lattice.Point, 0, len(e.visited))
	for p := range e.visited {
		visited = append(visited, p)
	}
	slices.SortFunc(visited, func(a, b lattice.Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})

	cp := checkpoint{
		Version: checkpointVersion,
		Target:  e.cls.Target(),
		Max:     e.max,
		Limit:   e.limit,
		Round:   e.round,
		Done:    e.state == Done,
		Stats:   e.stats,
		Queue:   e.Queued(),
		Visited: visited,
	}
	data, err := yaml.Marshal(&cp)
	if err != nil {
		return nil, fmt.Errorf("explorer: encode checkpoint: %w", err)
	}

	return data, nil
}

// Restore rebuilds an Explorer from Checkpoint output. opts are applied as
// in New; the saved batch limit is kept so pacing resumes where it left off.
// Returns ErrCorruptCheckpoint when the data cannot be decoded or violates
// the frontier invariants, or ErrOptionViolation for bad options.
func Restore(data []byte, opts ...Option) (*Explorer, error) {
	var cp checkpoint
	if err := yaml.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCheckpoint, err)
	}
	if err := cp.validate(); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	cls, err := lattice.NewClassifier(cp.Target, o.Oracle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCheckpoint, err)
	}

	e := &Explorer{
		cls:     cls,
		opts:    o,
		queue:   append([]lattice.Point(nil), cp.Queue...),
		visited: make(map[lattice.Point]struct{}, len(cp.Visited)),
		max:     cp.Max,
		limit:   cp.Limit,
		round:   cp.Round,
		state:   Yielding,
		stats:   cp.Stats,
	}
	for _, p := range cp.Visited {
		e.visited[p] = struct{}{}
	}
	if cp.Done {
		e.state = Done
	}

	return e, nil
}

// validate checks the Run State invariants: the frontier lies in the
// octant, is a subset of the visited set, and is empty exactly when done.
func (cp *checkpoint) validate() error {
	corrupt := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrCorruptCheckpoint}, args...)...)
	}
	switch {
	case cp.Version != checkpointVersion:
		return corrupt("unsupported version %d", cp.Version)
	case cp.Target < 0:
		return corrupt("negative target %d", cp.Target)
	case cp.Max < 0:
		return corrupt("negative max %d", cp.Max)
	case cp.Round < 0:
		return corrupt("negative round %d", cp.Round)
	case cp.Done != (len(cp.Queue) == 0):
		return corrupt("done=%t with %d queued points", cp.Done, len(cp.Queue))
	case !cp.Done && cp.Limit < 1:
		return corrupt("batch limit %d", cp.Limit)
	}

	visited := make(map[lattice.Point]struct{}, len(cp.Visited))
	for _, p := range cp.Visited {
		if !lattice.InOctant(p) {
			return corrupt("visited point %v outside octant", p)
		}
		if _, dup := visited[p]; dup {
			return corrupt("visited point %v listed twice", p)
		}
		visited[p] = struct{}{}
	}
	if _, ok := visited[lattice.Origin]; !ok {
		return corrupt("origin not visited")
	}
	queued := make(map[lattice.Point]struct{}, len(cp.Queue))
	for _, p := range cp.Queue {
		if _, ok := visited[p]; !ok {
			return corrupt("queued point %v not visited", p)
		}
		if _, dup := queued[p]; dup {
			return corrupt("queued point %v listed twice", p)
		}
		queued[p] = struct{}{}
	}

	return nil
}
