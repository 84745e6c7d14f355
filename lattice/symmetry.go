package lattice

// Orbit returns every image of p under the 8 symmetries of the lattice
// (reflections across both axes and the diagonal). p is folded with
// Canonical first; the canonical representative is always the first
// element.
//
//	(0,0)                → [(0,0)]
//	y == 0 or y == x     → original + (−x,−y), (−y,x), (y,−x)
//	otherwise            → original + (x,−y), (−x,y), (−x,−y), (y,x), (y,−x), (−y,x), (−y,−x)
func Orbit(p Point) []Point {
	return appendOrbit(make([]Point, 0, orbitSize(Canonical(p))), p)
}

// Reflect returns a new slice holding the orbit of every point in points,
// in input order. The input is not modified.
func Reflect(points []Point) []Point {
	n := 0
	for _, p := range points {
		n += orbitSize(Canonical(p))
	}
	out := make([]Point, 0, n)
	for _, p := range points {
		out = appendOrbit(out, p)
	}

	return out
}

// orbitSize returns 1, 4 or 8 for a canonical point.
func orbitSize(c Point) int {
	switch {
	case c.X == 0 && c.Y == 0:
		return 1
	case c.Y == 0 || c.Y == c.X:
		return 4
	default:
		return 8
	}
}

func appendOrbit(dst []Point, p Point) []Point {
	c := Canonical(p)
	x, y := c.X, c.Y
	switch orbitSize(c) {
	case 1:
		return append(dst, c)
	case 4:
		return append(dst, c,
			Point{-x, -y}, Point{-y, x}, Point{y, -x})
	default:
		return append(dst, c,
			Point{x, -y}, Point{-x, y}, Point{-x, -y},
			Point{y, x}, Point{y, -x}, Point{-y, x}, Point{-y, -x})
	}
}
