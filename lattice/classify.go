package lattice

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/digitsum"
)

// Classifier decides whether lattice points are within a digit-sum target.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	target int
	oracle *digitsum.Oracle
}

// NewClassifier returns a Classifier for target. A nil oracle selects a
// fresh private one. Returns ErrNegativeTarget if target < 0.
func NewClassifier(target int, oracle *digitsum.Oracle) (*Classifier, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeTarget, target)
	}
	if oracle == nil {
		oracle = digitsum.New()
	}

	return &Classifier{target: target, oracle: oracle}, nil
}

// Target returns the threshold fixed at construction.
func (c *Classifier) Target() int { return c.target }

// Cost returns digitSum(X) + digitSum(Y).
func (c *Classifier) Cost(p Point) int {
	return c.oracle.Sum(p.X) + c.oracle.Sum(p.Y)
}

// IsGood reports whether Cost(p) ≤ Target().
func (c *Classifier) IsGood(p Point) bool {
	return c.Cost(p) <= c.target
}
