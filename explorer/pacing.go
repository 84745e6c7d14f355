package explorer

import (
	"fmt"
	"math"
)

// Pacing decides how many frontier points each round may process.
// Implementations are provided by FrontierPacing, FixedPacing and DrainPacing.
type Pacing interface {
	// Initial returns the first round's batch limit.
	Initial() int
	// Next returns the following round's limit given how many points are
	// queued when the current round stops.
	Next(queued int) int
	// Name identifies the policy in logs and configuration.
	Name() string

	validate() error
}

type frontierPacing struct{}

// FrontierPacing starts with a limit of 1 and then uses the queue length
// observed at the end of each round, so each round covers about one layer.
func FrontierPacing() Pacing { return frontierPacing{} }

func (frontierPacing) Initial() int        { return 1 }
func (frontierPacing) Next(queued int) int { return max(queued, 1) }
func (frontierPacing) Name() string        { return "frontier" }
func (frontierPacing) validate() error     { return nil }

type fixedPacing struct{ n int }

// FixedPacing processes at most n points per round. n must be positive.
func FixedPacing(n int) Pacing { return fixedPacing{n: n} }

func (f fixedPacing) Initial() int { return f.n }
func (f fixedPacing) Next(int) int { return f.n }
func (f fixedPacing) Name() string { return "fixed" }

func (f fixedPacing) validate() error {
	if f.n <= 0 {
		return fmt.Errorf("fixed batch must be positive (got %d)", f.n)
	}

	return nil
}

type drainPacing struct{}

// DrainPacing processes the whole frontier in a single round.
func DrainPacing() Pacing { return drainPacing{} }

func (drainPacing) Initial() int    { return math.MaxInt }
func (drainPacing) Next(int) int    { return math.MaxInt }
func (drainPacing) Name() string    { return "drain" }
func (drainPacing) validate() error { return nil }

// ParsePacing maps a policy name to a Pacing. batch is used by "fixed".
func ParsePacing(name string, batch int) (Pacing, error) {
	var p Pacing
	switch name {
	case "", "frontier":
		p = FrontierPacing()
	case "fixed":
		p = FixedPacing(batch)
	case "drain":
		p = DrainPacing()
	default:
		return nil, fmt.Errorf("%w: unknown pacing %q", ErrOptionViolation, name)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	return p, nil
}
