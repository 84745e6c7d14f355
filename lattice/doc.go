// Package lattice defines integer lattice points and the pieces of the
// digit-sum search that operate on single points: classification,
// 4-neighbourhoods, canonical-octant folding, and 8-fold symmetry expansion.
//
// What
//
//   - Point: an immutable (X, Y) pair, comparable, usable directly as a map key.
//   - Classifier: IsGood(p) reports digitSum(X)+digitSum(Y) ≤ target.
//   - Orbit / Reflect: expand canonical-octant points (X ≥ Y ≥ 0) to every
//     image under reflection across both axes and the diagonal.
//   - Region: brute-force reference scan of a bounded square, used to
//     cross-check the incremental search.
//
// Why
//
//   - The cost function is invariant under sign flips of either coordinate
//     and under swapping them, so one eighth of the plane determines all of it.
//
// Orbit sizes
//
//	(0,0)              → 1 image
//	(x,0), (x,x), x>0  → 4 images
//	x > y > 0          → 8 images
//
// Errors
//
//   - ErrNegativeTarget: a classifier or region was requested with target < 0.
//   - ErrNegativeRadius: a region was requested with radius < 0.
package lattice
