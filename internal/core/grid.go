package core

// Grid describes a pixel surface addressed in square tiles.
type Grid struct {
	W, H int
	Tile int
}

// DefaultGrid is the canvas every renderer in the process draws on.
var DefaultGrid = Grid{W: CanvasWidth, H: CanvasHeight, Tile: TileSize}

// Cols returns the number of whole tiles per row.
func (g Grid) Cols() int {
	if g.Tile <= 0 {
		return 0
	}
	return g.W / g.Tile
}

// Rows returns the number of whole tiles per column.
func (g Grid) Rows() int {
	if g.Tile <= 0 {
		return 0
	}
	return g.H / g.Tile
}

// Contains reports whether the cell lies fully inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Cols() && p.Y < g.Rows()
}

// VerticalLines returns the x offsets of interior grid lines, excluding 0
// and the right edge.
func (g Grid) VerticalLines() []int {
	return interiorMultiples(g.Tile, g.W)
}

// HorizontalLines returns the y offsets of interior grid lines, excluding 0
// and the bottom edge.
func (g Grid) HorizontalLines() []int {
	return interiorMultiples(g.Tile, g.H)
}

func interiorMultiples(step, limit int) []int {
	if step <= 0 {
		return nil
	}
	out := make([]int, 0, limit/step)
	for v := step; v < limit; v += step {
		out = append(out, v)
	}
	return out
}
