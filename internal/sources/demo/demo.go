// Package demo publishes scripted snapshots so the renderer can be run
// without an application core attached.
package demo

import (
	"context"
	"strconv"
	"time"

	"village-view/internal/core"
)

// Config controls the scripted emitter.
type Config struct {
	Villagers    int
	MovingChance float64
	Interval     time.Duration
	// Frames limits the number of snapshots; 0 runs until cancelled.
	Frames int
	Seed   int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Villagers:    12,
		MovingChance: 0.6,
		Interval:     200 * time.Millisecond,
		Seed:         42,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["villagers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Villagers = parsed
		}
	}
	if v, ok := cfg["moving_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.MovingChance = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["frames"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Frames = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Demo emits random Idle/Moving snapshots on the default grid.
type Demo struct {
	cfg  Config
	grid core.Grid
}

// New returns a demo source for the provided configuration.
func New(cfg Config) *Demo {
	return &Demo{cfg: cfg, grid: core.DefaultGrid}
}

// Name returns the source identifier.
func (d *Demo) Name() string { return "demo" }

// Frame builds the next snapshot from rng.
func (d *Demo) Frame(rng *core.RNG) core.Snapshot {
	vs := make([]core.Villager, d.cfg.Villagers)
	for i := range vs {
		if !rng.Chance(d.cfg.MovingChance) {
			vs[i].Action = core.Action{Kind: core.ActionIdle}
			continue
		}
		p := rng.Cell(d.grid)
		vs[i].Action = core.Move(p.X, p.Y)
	}
	return core.Snapshot{Villagers: vs}
}

// Run publishes frames until the frame limit is reached or ctx is done.
func (d *Demo) Run(ctx context.Context, port *core.Port) error {
	rng := core.NewRNG(d.cfg.Seed)
	var tick <-chan time.Time
	if d.cfg.Interval > 0 {
		t := time.NewTicker(d.cfg.Interval)
		defer t.Stop()
		tick = t.C
	}
	for n := 0; d.cfg.Frames == 0 || n < d.cfg.Frames; n++ {
		if n > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if err := port.Publish(ctx, d.Frame(rng)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	core.Register("demo", func(cfg map[string]string) core.Source {
		return New(FromMap(cfg))
	})
}
