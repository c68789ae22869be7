package tilegrid

// Line rasterizes the segment a→b with Bresenham's algorithm.
// The result starts with a, ends with b, and consecutive points are
// 8-adjacent. Line(a, a) is [a].
// Complexity: O(max(|dx|,|dy|)).
func Line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if b.X < a.X {
		sx = -1
	}
	if b.Y < a.Y {
		sy = -1
	}
	err := dx - dy

	pts := make([]Point, 0, max(dx, dy)+1)
	x, y := a.X, a.Y
	for {
		pts = append(pts, Point{x, y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
