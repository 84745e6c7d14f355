package explorer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/latticewalk/digitsum"
	"github.com/katalvlaran/latticewalk/lattice"
)

// Sentinel errors for explorer construction and stepping.
var (
	// ErrNegativeTarget is returned when the digit-sum target is below zero.
	ErrNegativeTarget = errors.New("explorer: target must be non-negative")

	// ErrNegativeMax is returned when the initial max extent is below zero.
	ErrNegativeMax = errors.New("explorer: initial max must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explorer: invalid option supplied")

	// ErrDone is returned by Step once the final round has been delivered.
	ErrDone = errors.New("explorer: search already finished")

	// ErrCorruptCheckpoint is returned by Restore for inconsistent state.
	ErrCorruptCheckpoint = errors.New("explorer: corrupt checkpoint")

	// ErrStop may be returned by a Drive visitor to stop early without error.
	ErrStop = errors.New("explorer: stop driving")
)

// State is the lifecycle phase of an Explorer.
type State int

const (
	// Yielding means paused between rounds; Step resumes it.
	Yielding State = iota
	// Running means a round is in progress.
	Running
	// Done is terminal; the frontier is empty.
	Done
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Yielding:
		return "yielding"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is the output of one round. Point slices are in full-plane
// coordinates and owned by the caller.
type Snapshot struct {
	// Round is the 1-based round number.
	Round int
	// Good holds points confirmed within target during this round.
	Good []lattice.Point
	// Bad holds points rejected during this round.
	Bad []lattice.Point
	// Waiting holds every point still queued for later rounds.
	Waiting []lattice.Point
	// Max is the largest coordinate magnitude discovered so far.
	Max int
	// Final marks the terminal snapshot; Waiting is then empty.
	Final bool
}

// Stats are cumulative canonical-octant counters for a run.
type Stats struct {
	Good     int `yaml:"good"`
	Bad      int `yaml:"bad"`
	Enqueued int `yaml:"enqueued"`
}

// Option configures an Explorer via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New
// and Restore.
type Option func(*Options)

// Options holds the tunables of an Explorer.
type Options struct {
	// Pacing decides how many points each round processes.
	Pacing Pacing

	// Oracle computes digit sums. Nil selects a fresh oracle per run.
	Oracle *digitsum.Oracle

	// Logger receives per-round Debug records and a completion Info record.
	Logger *slog.Logger

	// OnEnqueue is called whenever a point joins the frontier.
	OnEnqueue func(p lattice.Point)

	// OnClassify is called for every dequeued point with its verdict.
	OnClassify func(p lattice.Point, good bool)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with FrontierPacing, a discarding logger,
// no shared oracle and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Pacing:     FrontierPacing(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnEnqueue:  func(lattice.Point) {},
		OnClassify: func(lattice.Point, bool) {},
	}
}

// WithPacing selects the batch policy. A nil or invalid policy is an
// ErrOptionViolation.
func WithPacing(p Pacing) Option {
	return func(o *Options) {
		if p == nil {
			o.err = fmt.Errorf("%w: pacing cannot be nil", ErrOptionViolation)
			return
		}
		if err := p.validate(); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Pacing = p
	}
}

// WithOracle shares a digit-sum oracle with other runs.
func WithOracle(oracle *digitsum.Oracle) Option {
	return func(o *Options) {
		if oracle != nil {
			o.Oracle = oracle
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a hook run when a point is enqueued.
func WithOnEnqueue(fn func(p lattice.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnClassify registers a hook run after each point is classified.
func WithOnClassify(fn func(p lattice.Point, good bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClassify = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.Oracle == nil {
		o.Oracle = digitsum.New()
	}

	return o, nil
}
