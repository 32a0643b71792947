package replay

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"village-view/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recording = `{"villagers":[{"action":{"kind":"Moving","position":[1,0]}}]}

not json
{"villagers":[{"action":{"kind":"Idle"}},{"action":{"kind":"Moving","position":[2,3]}}]}
{"villagers":[]}
`

func TestReadFramesSkipsBlankAndBadLines(t *testing.T) {
	frames, err := ReadFrames(strings.NewReader(recording))
	require.NoError(t, err)
	require.Len(t, frames, 3)

	assert.Equal(t, []core.Point{{X: 1, Y: 0}}, frames[0].Moving())
	assert.Equal(t, []core.Point{{X: 2, Y: 3}}, frames[1].Moving())
	assert.Empty(t, frames[2].Villagers)
}

func collect(t *testing.T, port *core.Port) *[]int {
	t.Helper()
	var moving []int
	require.NoError(t, port.Subscribe(func(s core.Snapshot) {
		moving = append(moving, len(s.Moving()))
	}))
	return &moving
}

func TestRunPublishesRecordingInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(recording), 0o644))

	src := core.Sources()["replay"](map[string]string{"path": path, "interval": "0s"})
	port := core.NewPort(8)
	got := collect(t, port)

	require.NoError(t, core.Pump(context.Background(), src, port))
	assert.Equal(t, 3, port.Drain())
	assert.Equal(t, []int{1, 1, 0}, *got)
	assert.True(t, port.Finished())
}

func TestRunWithoutPath(t *testing.T) {
	err := New(DefaultConfig()).Run(context.Background(), core.NewPort(1))
	assert.Error(t, err)
}

func TestRunMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = filepath.Join(t.TempDir(), "missing.jsonl")
	err := New(cfg).Run(context.Background(), core.NewPort(1))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlayLoopStopsOnCancel(t *testing.T) {
	frames := []core.Snapshot{{Villagers: []core.Villager{{Action: core.Move(0, 0)}}}}
	port := core.NewPort(1)
	delivered := 0
	require.NoError(t, port.Subscribe(func(core.Snapshot) { delivered++ }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Play(ctx, port, frames, time.Millisecond, true) }()

	deadline := time.Now().Add(2 * time.Second)
	for delivered < 3 && time.Now().Before(deadline) {
		port.Drain()
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("looping replay did not stop after cancel")
	}
	assert.GreaterOrEqual(t, delivered, 3)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"path": "a.jsonl", "interval": "1s", "loop": "true"})
	assert.Equal(t, Config{Path: "a.jsonl", Interval: time.Second, Loop: true}, c)

	c = FromMap(map[string]string{"interval": "soon", "loop": "maybe"})
	assert.Equal(t, DefaultConfig(), c)
}
