package lattice

// InOctant reports whether p lies in the canonical octant X ≥ Y ≥ 0.
func InOctant(p Point) bool {
	return p.Y >= 0 && p.X >= p.Y
}

// Canonical folds p into the canonical octant by taking absolute values
// and ordering the coordinates. Every point of an orbit folds to the same
// representative. Coordinates must be greater than math.MinInt.
func Canonical(p Point) Point {
	x, y := abs(p.X), abs(p.Y)
	if y > x {
		x, y = y, x
	}

	return Point{X: x, Y: y}
}

// Max returns the larger coordinate magnitude of p.
func Max(p Point) int {
	return max(abs(p.X), abs(p.Y))
}

// Neighbors4 returns the four orthogonal neighbours of p in the order
// (x−1,y), (x+1,y), (x,y−1), (x,y+1).
func Neighbors4(p Point) [4]Point {
	var out [4]Point
	for i, d := range conn4 {
		out[i] = Point{X: p.X + d[0], Y: p.Y + d[1]}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
