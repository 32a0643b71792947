package ui

import (
	"fmt"

	"village-view/internal/render"
)

// Status formats the strip text.
func Status(title string, stats render.FrameStats) string {
	s := fmt.Sprintf("frame %d  villagers %d  moving %d", stats.Frame, stats.Villagers, stats.Moving)
	if stats.Skipped > 0 {
		s += fmt.Sprintf("  skipped %d", stats.Skipped)
	}
	if title != "" {
		s = title + "  " + s
	}
	return s
}
