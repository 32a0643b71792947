package core

import "context"

const (
	// TileSize is the edge length of one grid cell in pixels.
	TileSize = 10
	// CanvasWidth is the drawing surface width in pixels.
	CanvasWidth = 1000
	// CanvasHeight is the drawing surface height in pixels.
	CanvasHeight = 50

	RowCount = CanvasHeight / TileSize
	ColCount = CanvasWidth / TileSize
)

// Point is a position in grid-cell units.
type Point struct {
	X int
	Y int
}

// Pixel converts the cell position to the pixel coordinates of its top-left corner.
func (p Point) Pixel() (int, int) {
	return p.X * TileSize, p.Y * TileSize
}

// Villager is one entity of a snapshot. Only its action matters for drawing.
type Villager struct {
	Action Action
}

// Snapshot is one immutable state update. A newer snapshot replaces the
// previous one entirely.
type Snapshot struct {
	Villagers []Villager
}

// Moving returns the villagers whose action is Moving, in snapshot order.
func (s Snapshot) Moving() []Point {
	var out []Point
	for _, v := range s.Villagers {
		if p, ok := v.Action.Moving(); ok {
			out = append(out, p)
		}
	}
	return out
}

// Source is the external state owner that pushes snapshots into a Port.
// Run blocks until the source is exhausted or ctx is cancelled.
type Source interface {
	Name() string
	Run(ctx context.Context, port *Port) error
}

// Factory constructs a Source using an optional configuration map.
type Factory func(cfg map[string]string) Source

var sources = map[string]Factory{}

// Register adds a source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available source factories.
func Sources() map[string]Factory {
	return sources
}

// Pump runs src against port and closes the port when the source returns.
func Pump(ctx context.Context, src Source, port *Port) error {
	defer port.Close()
	return src.Run(ctx, port)
}
