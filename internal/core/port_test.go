package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapAt(x int) Snapshot {
	return Snapshot{Villagers: []Villager{{Action: Move(x, 0)}}}
}

func TestPortDeliversInArrivalOrder(t *testing.T) {
	port := NewPort(8)
	var got []int
	require.NoError(t, port.Subscribe(func(s Snapshot) {
		got = append(got, s.Villagers[0].Action.Position.X)
	}))

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, port.Publish(ctx, snapAt(i)))
	}

	assert.Equal(t, 5, port.Drain())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 0, port.Drain())
}

func TestPortSingleSubscriber(t *testing.T) {
	port := NewPort(1)
	require.NoError(t, port.Subscribe(func(Snapshot) {}))
	assert.ErrorIs(t, port.Subscribe(func(Snapshot) {}), ErrAlreadySubscribed)
	assert.Error(t, NewPort(1).Subscribe(nil))
}

func TestPortDrainWithoutHandlerKeepsQueue(t *testing.T) {
	port := NewPort(2)
	require.NoError(t, port.Publish(context.Background(), snapAt(1)))
	assert.Equal(t, 0, port.Drain())

	delivered := 0
	require.NoError(t, port.Subscribe(func(Snapshot) { delivered++ }))
	assert.Equal(t, 1, port.Drain())
	assert.Equal(t, 1, delivered)
}

func TestPortCloseAndFinished(t *testing.T) {
	port := NewPort(2)
	require.NoError(t, port.Subscribe(func(Snapshot) {}))
	require.NoError(t, port.Publish(context.Background(), snapAt(1)))

	port.Close()
	port.Close()
	assert.ErrorIs(t, port.Publish(context.Background(), snapAt(2)), ErrPortClosed)
	assert.False(t, port.Finished(), "queued snapshot still pending")

	assert.Equal(t, 1, port.Drain())
	assert.True(t, port.Finished())
}

func TestPortPublishHonoursContext(t *testing.T) {
	port := NewPort(1)
	require.NoError(t, port.Publish(context.Background(), snapAt(1)))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := port.Publish(ctx, snapAt(2))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

type fixedSource struct {
	frames []Snapshot
}

func (f *fixedSource) Name() string { return "fixed" }

func (f *fixedSource) Run(ctx context.Context, port *Port) error {
	for _, s := range f.frames {
		if err := port.Publish(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func TestPumpClosesPort(t *testing.T) {
	port := NewPort(4)
	var got []int
	require.NoError(t, port.Subscribe(func(s Snapshot) {
		got = append(got, s.Villagers[0].Action.Position.X)
	}))

	src := &fixedSource{frames: []Snapshot{snapAt(3), snapAt(1)}}
	require.NoError(t, Pump(context.Background(), src, port))

	assert.Equal(t, 2, port.Drain())
	assert.Equal(t, []int{3, 1}, got)
	assert.True(t, port.Finished())
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Source { return nil })
	Register("nil-factory", nil)
	_, ok := Sources()["nil-factory"]
	assert.False(t, ok)

	Register("fixed-test", func(map[string]string) Source { return &fixedSource{} })
	f, ok := Sources()["fixed-test"]
	require.True(t, ok)
	assert.Equal(t, "fixed", f(nil).Name())
}
