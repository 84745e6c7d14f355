package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/lattice"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestOrbit_Sizes checks the 1 / 4 / 8 image counts and that every image
// is built from the same pair of magnitudes.
func TestOrbit_Sizes(t *testing.T) {
	for x := 0; x <= 12; x++ {
		for y := 0; y <= x; y++ {
			p := lattice.Point{X: x, Y: y}
			imgs := lattice.Orbit(p)

			want := 8
			switch {
			case x == 0 && y == 0:
				want = 1
			case y == 0 || y == x:
				want = 4
			}
			require.Lenf(t, imgs, want, "Orbit(%v)", p)
			assert.Equal(t, p, imgs[0], "canonical point comes first")

			distinct := make(map[lattice.Point]bool, len(imgs))
			for _, img := range imgs {
				distinct[img] = true
				mags := map[int]bool{abs(img.X): true, abs(img.Y): true}
				assert.Truef(t, mags[x] && mags[y], "image %v of %v uses foreign magnitudes", img, p)
				assert.Equal(t, p, lattice.Canonical(img), "image must fold back to its source")
			}
			assert.Lenf(t, distinct, want, "Orbit(%v) has duplicates", p)
		}
	}
}

// TestOrbit_AxisImages pins the exact images of an axis point and a diagonal point.
func TestOrbit_AxisImages(t *testing.T) {
	assert.Equal(t,
		[]lattice.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
		lattice.Orbit(lattice.Point{X: 1, Y: 0}))
	assert.Equal(t,
		[]lattice.Point{{2, 2}, {-2, -2}, {-2, 2}, {2, -2}},
		lattice.Orbit(lattice.Point{X: 2, Y: 2}))
}

// TestOrbit_NonCanonicalInput folds arbitrary points before expanding.
func TestOrbit_NonCanonicalInput(t *testing.T) {
	assert.ElementsMatch(t,
		lattice.Orbit(lattice.Point{X: 3, Y: 1}),
		lattice.Orbit(lattice.Point{X: -1, Y: -3}))
}

// TestReflect_PreservesInput verifies Reflect concatenates orbits and leaves
// its argument untouched.
func TestReflect_PreservesInput(t *testing.T) {
	in := []lattice.Point{{0, 0}, {1, 0}, {2, 1}}
	orig := append([]lattice.Point(nil), in...)

	out := lattice.Reflect(in)
	assert.Len(t, out, 1+4+8)
	assert.Equal(t, orig, in)
	assert.Equal(t, lattice.Point{}, out[0])
	assert.Equal(t, lattice.Point{X: 1, Y: 0}, out[1])
	assert.Equal(t, lattice.Point{X: 2, Y: 1}, out[5])

	assert.Empty(t, lattice.Reflect(nil))
}
