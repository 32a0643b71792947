package ui

import (
	"testing"

	"village-view/internal/render"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	stats := render.FrameStats{Frame: 3, Villagers: 4, Moving: 2}
	assert.Equal(t, "demo  frame 3  villagers 4  moving 2", Status("demo", stats))

	stats.Skipped = 1
	assert.Equal(t, "frame 3  villagers 4  moving 2  skipped 1", Status("", stats))
}
