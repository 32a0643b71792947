package app

import (
	"context"
	"testing"

	"village-view/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRendersQueuedSnapshotsInOrder(t *testing.T) {
	port := core.NewPort(4)
	view, err := NewView(port)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, port.Publish(ctx, core.Snapshot{Villagers: []core.Villager{{Action: core.Move(1, 1)}}}))
	require.NoError(t, port.Publish(ctx, core.Snapshot{Villagers: []core.Villager{{Action: core.Move(4, 0)}}}))
	port.Close()

	n, finished := view.Pump()
	assert.Equal(t, 2, n)
	assert.True(t, finished)

	s := view.Renderer().Surface()
	assert.Equal(t, 2, view.Renderer().Stats().Frame)
	assert.Equal(t, uint8(255), s.At(45, 5).A, "latest snapshot drawn")
	assert.Equal(t, uint8(0), s.At(15, 15).A, "earlier snapshot fully replaced")
}

func TestViewRequiresFreePort(t *testing.T) {
	port := core.NewPort(1)
	_, err := NewView(port)
	require.NoError(t, err)

	_, err = NewView(port)
	assert.ErrorIs(t, err, core.ErrAlreadySubscribed)
}
