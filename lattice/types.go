package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrNegativeTarget indicates a digit-sum threshold below zero.
	ErrNegativeTarget = errors.New("lattice: target must be non-negative")
	// ErrNegativeRadius indicates a reference region with radius below zero.
	ErrNegativeRadius = errors.New("lattice: radius must be non-negative")
)

// Point is a lattice point. Equality is by value.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Origin is the search seed.
var Origin = Point{}

// conn4 lists the orthogonal neighbour offsets in the search's
// enqueue order: left, right, down, up.
var conn4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
