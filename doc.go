// Package latticewalk is an incremental search over the integer lattice for
// every point (x, y) whose digit-sum cost digitSum(x) + digitSum(y) stays
// within a target. Results arrive in small resumable rounds so a consumer
// can draw the region as it grows.
//
// What is inside?
//
//	digitsum/  — memoized decimal digit-sum oracle, safe to share
//	lattice/   — Point, Classifier, canonical-octant folding, 8-fold Orbit / Reflect,
//	             and a brute-force reference Region
//	explorer/  — the resumable BFS over the octant X ≥ Y ≥ 0: Step, pacing policies,
//	             hooks, Drive, Checkpoint / Restore
//	cmd/latticewalk — CLI: run, verify, version
//
// How it works
//
//	The cost is invariant under sign flips and under swapping x and y, so the
//	explorer only walks one eighth of the plane. Bad points are never expanded:
//	a one-point halo of them closes the good region. Each round is reflected to
//	the full plane just before it is handed back.
//
// Quick picture for target 0:
//
//	    x
//	  x # x
//	    x
//
//	go get github.com/katalvlaran/latticewalk
package latticewalk
