package lattice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/digitsum"
	"github.com/katalvlaran/latticewalk/lattice"
)

// TestInOctantAndCanonical covers the octant predicate and folding.
func TestInOctantAndCanonical(t *testing.T) {
	cases := []struct {
		p      lattice.Point
		in     bool
		folded lattice.Point
	}{
		{lattice.Point{0, 0}, true, lattice.Point{0, 0}},
		{lattice.Point{3, 0}, true, lattice.Point{3, 0}},
		{lattice.Point{3, 3}, true, lattice.Point{3, 3}},
		{lattice.Point{3, 4}, false, lattice.Point{4, 3}},
		{lattice.Point{-3, 1}, false, lattice.Point{3, 1}},
		{lattice.Point{2, -5}, false, lattice.Point{5, 2}},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.in, lattice.InOctant(tc.p), "InOctant(%v)", tc.p)
		assert.Equalf(t, tc.folded, lattice.Canonical(tc.p), "Canonical(%v)", tc.p)
		assert.True(t, lattice.InOctant(lattice.Canonical(tc.p)))
	}
}

// TestNeighbors4_Order pins the neighbour order used by the search.
func TestNeighbors4_Order(t *testing.T) {
	got := lattice.Neighbors4(lattice.Point{X: 5, Y: 2})
	want := [4]lattice.Point{{4, 2}, {6, 2}, {5, 1}, {5, 3}}
	assert.Equal(t, want, got)
	assert.Equal(t, 7, lattice.Max(lattice.Point{X: -7, Y: 3}))
	assert.Equal(t, "(1,-2)", lattice.Point{X: 1, Y: -2}.String())
}

// TestClassifier covers thresholds, cost and input validation.
func TestClassifier(t *testing.T) {
	_, err := lattice.NewClassifier(-1, nil)
	require.True(t, errors.Is(err, lattice.ErrNegativeTarget), "got %v", err)

	c, err := lattice.NewClassifier(8, digitsum.New())
	require.NoError(t, err)
	assert.Equal(t, 8, c.Target())
	assert.Equal(t, 10, c.Cost(lattice.Point{X: 19, Y: 0}))
	assert.True(t, c.IsGood(lattice.Point{X: 8, Y: 0}))
	assert.True(t, c.IsGood(lattice.Point{X: -4, Y: 4}))
	assert.False(t, c.IsGood(lattice.Point{X: 9, Y: 0}))
	assert.True(t, c.IsGood(lattice.Point{X: 10, Y: -7}))

	zero, err := lattice.NewClassifier(0, nil)
	require.NoError(t, err)
	assert.True(t, zero.IsGood(lattice.Origin))
	assert.False(t, zero.IsGood(lattice.Point{X: 0, Y: 1}))
}

// TestRegion_Target0 expects only the origin with its four neighbours as halo.
func TestRegion_Target0(t *testing.T) {
	r, err := lattice.Region(0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []lattice.Point{lattice.Origin}, r.Good)
	assert.ElementsMatch(t, []lattice.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}, r.Halo)
	assert.False(t, r.Clipped)
}

// TestRegion_Target8 checks the diamond-like region for target 8 is fully
// contained in a radius-9 square and symmetric.
func TestRegion_Target8(t *testing.T) {
	r, err := lattice.Region(8, 12, nil)
	require.NoError(t, err)
	assert.False(t, r.Clipped)

	good := make(map[lattice.Point]bool, len(r.Good))
	for _, p := range r.Good {
		good[p] = true
	}
	for x := -8; x <= 8; x++ {
		for y := -8; y <= 8; y++ {
			if abs(x)+abs(y) <= 8 {
				assert.Truef(t, good[lattice.Point{X: x, Y: y}], "(%d,%d) should be good", x, y)
			}
		}
	}
	for p := range good {
		for _, img := range lattice.Orbit(p) {
			assert.Truef(t, good[img], "region not symmetric at %v", img)
		}
	}
}

// TestRegion_Clipped reports when the square is too small.
func TestRegion_Clipped(t *testing.T) {
	r, err := lattice.Region(8, 2, nil)
	require.NoError(t, err)
	assert.True(t, r.Clipped)

	_, err = lattice.Region(8, -1, nil)
	assert.ErrorIs(t, err, lattice.ErrNegativeRadius)
	_, err = lattice.Region(-1, 3, nil)
	assert.ErrorIs(t, err, lattice.ErrNegativeTarget)
}
