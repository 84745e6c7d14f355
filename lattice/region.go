package lattice

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/digitsum"
)

// RegionResult is the brute-force view of the good region around the origin.
type RegionResult struct {
	// Good holds the 4-connected good points containing the origin.
	Good []Point
	// Halo holds the bad points orthogonally adjacent to Good.
	Halo []Point
	// Clipped is true when some good point lies on the square border, so
	// the region may continue beyond the scanned square.
	Clipped bool
}

// Region scans the square [−radius, radius]² and returns the 4-connected
// component of good points containing the origin together with its bad
// halo. It does not use symmetry and is meant as a reference for the
// incremental search.
//
// Returns ErrNegativeTarget or ErrNegativeRadius for invalid input.
// A nil oracle selects a fresh private one.
//
// Time: O(R²), Memory: O(R²) with R = 2·radius+1.
func Region(target, radius int, oracle *digitsum.Oracle) (*RegionResult, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeRadius, radius)
	}
	cls, err := NewClassifier(target, oracle)
	if err != nil {
		return nil, err
	}

	side := 2*radius + 1
	index := func(p Point) int { return (p.Y+radius)*side + (p.X + radius) }
	inBounds := func(p Point) bool {
		return p.X >= -radius && p.X <= radius && p.Y >= -radius && p.Y <= radius
	}

	res := &RegionResult{}
	seen := make([]bool, side*side)
	seen[index(Origin)] = true

	// The origin always has cost 0, so it seeds the component.
	queue := []Point{Origin}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		res.Good = append(res.Good, u)
		if abs(u.X) == radius || abs(u.Y) == radius {
			res.Clipped = true
		}
		for _, v := range Neighbors4(u) {
			if !inBounds(v) || seen[index(v)] {
				continue
			}
			seen[index(v)] = true
			if cls.IsGood(v) {
				queue = append(queue, v)
			} else {
				res.Halo = append(res.Halo, v)
			}
		}
	}

	return res, nil
}
