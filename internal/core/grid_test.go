package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGridDimensions(t *testing.T) {
	assert.Equal(t, ColCount, DefaultGrid.Cols())
	assert.Equal(t, RowCount, DefaultGrid.Rows())
	assert.Equal(t, 100, ColCount)
	assert.Equal(t, 5, RowCount)
}

func TestGridLinesExcludeEdges(t *testing.T) {
	xs := DefaultGrid.VerticalLines()
	assert.Len(t, xs, 99)
	assert.Equal(t, 10, xs[0])
	assert.Equal(t, 990, xs[len(xs)-1])

	assert.Equal(t, []int{10, 20, 30, 40}, DefaultGrid.HorizontalLines())
}

func TestGridFloorsPartialTiles(t *testing.T) {
	g := Grid{W: 25, H: 9, Tile: 10}
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, []int{10, 20}, g.VerticalLines())
	assert.Empty(t, g.HorizontalLines())
}

func TestGridContains(t *testing.T) {
	assert.True(t, DefaultGrid.Contains(Point{X: 0, Y: 0}))
	assert.True(t, DefaultGrid.Contains(Point{X: 99, Y: 4}))
	assert.False(t, DefaultGrid.Contains(Point{X: 100, Y: 0}))
	assert.False(t, DefaultGrid.Contains(Point{X: 0, Y: 5}))
	assert.False(t, DefaultGrid.Contains(Point{X: -1, Y: 0}))
}

func TestRNGCellStaysInBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 500; i++ {
		assert.True(t, DefaultGrid.Contains(rng.Cell(DefaultGrid)))
	}
}
