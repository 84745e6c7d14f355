package explorer

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/lattice"
)

// Explorer is the resumable Run State of one search: the frontier queue,
// the visited set, the running max extent and the next batch limit.
// Internally every point is in the canonical octant; reflection happens
// only when a Snapshot is built.
type Explorer struct {
	cls     *lattice.Classifier
	opts    Options
	queue   []lattice.Point
	visited map[lattice.Point]struct{}
	max     int
	limit   int
	round   int
	state   State
	stats   Stats
}

// New creates an Explorer for target, reporting initialMax until a larger
// extent is discovered. The frontier is seeded with the origin.
// Returns ErrNegativeTarget, ErrNegativeMax or ErrOptionViolation.
func New(target, initialMax int, opts ...Option) (*Explorer, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeTarget, target)
	}
	if initialMax < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeMax, initialMax)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	cls, err := lattice.NewClassifier(target, o.Oracle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNegativeTarget, err)
	}

	e := &Explorer{
		cls:     cls,
		opts:    o,
		queue:   make([]lattice.Point, 0, 1),
		visited: make(map[lattice.Point]struct{}),
		max:     initialMax,
		limit:   o.Pacing.Initial(),
		state:   Yielding,
	}
	e.enqueue(lattice.Origin)

	return e, nil
}

// Step runs exactly one round and returns its Snapshot. more is false when
// this was the final round. Calling Step on a finished Explorer returns
// ErrDone and a zero Snapshot.
func (e *Explorer) Step() (snap Snapshot, more bool, err error) {
	if e.state == Done {
		return Snapshot{}, false, fmt.Errorf("%w after round %d", ErrDone, e.round)
	}
	e.state = Running
	e.round++
	limit := e.limit

	var good, bad []lattice.Point
	for n := 0; n < limit && len(e.queue) > 0; n++ {
		p := e.dequeue()
		if e.cls.IsGood(p) {
			good = append(good, p)
			e.stats.Good++
			e.opts.OnClassify(p, true)
			e.enqueueNeighbors(p)
		} else {
			bad = append(bad, p)
			e.stats.Bad++
			e.opts.OnClassify(p, false)
		}
	}

	final := len(e.queue) == 0
	if final {
		e.state = Done
	} else {
		e.limit = max(e.opts.Pacing.Next(len(e.queue)), 1)
		e.state = Yielding
	}

	snap = Snapshot{
		Round:   e.round,
		Good:    lattice.Reflect(good),
		Bad:     lattice.Reflect(bad),
		Waiting: lattice.Reflect(e.queue),
		Max:     e.max,
		Final:   final,
	}
	e.opts.Logger.Debug("round complete",
		"round", e.round,
		"limit", limit,
		"good", len(good),
		"bad", len(bad),
		"queued", len(e.queue),
		"max", e.max,
	)
	if final {
		e.opts.Logger.Info("search complete",
			"target", e.cls.Target(),
			"rounds", e.round,
			"good", e.stats.Good,
			"bad", e.stats.Bad,
			"max", e.max,
		)
	}

	return snap, !final, nil
}

// State returns the lifecycle phase.
func (e *Explorer) State() State { return e.state }

// Target returns the digit-sum threshold.
func (e *Explorer) Target() int { return e.cls.Target() }

// Max returns the largest coordinate magnitude discovered so far.
func (e *Explorer) Max() int { return e.max }

// Round returns the number of completed rounds.
func (e *Explorer) Round() int { return e.round }

// Limit returns the batch limit of the next round.
func (e *Explorer) Limit() int { return e.limit }

// Stats returns the cumulative canonical-octant counters.
func (e *Explorer) Stats() Stats { return e.stats }

// Queued returns a copy of the frontier in FIFO order, octant-only.
func (e *Explorer) Queued() []lattice.Point {
	return append([]lattice.Point(nil), e.queue...)
}

// Visited reports how many points have ever been enqueued.
func (e *Explorer) Visited() int { return len(e.visited) }

// enqueue marks p visited, runs OnEnqueue and appends p to the frontier.
func (e *Explorer) enqueue(p lattice.Point) {
	e.visited[p] = struct{}{}
	e.stats.Enqueued++
	e.opts.OnEnqueue(p)
	e.queue = append(e.queue, p)
}

// dequeue pops the oldest frontier point.
func (e *Explorer) dequeue() lattice.Point {
	p := e.queue[0]
	e.queue = e.queue[1:]

	return p
}

// enqueueNeighbors enqueues the unvisited in-octant neighbours of p and
// raises max to cover them. Neighbours outside the octant are never
// discovered directly; Reflect reconstructs them.
func (e *Explorer) enqueueNeighbors(p lattice.Point) {
	for _, nb := range lattice.Neighbors4(p) {
		if !lattice.InOctant(nb) {
			continue
		}
		if _, seen := e.visited[nb]; seen {
			continue
		}
		e.enqueue(nb)
		e.max = max(e.max, nb.X, nb.Y)
	}
}
