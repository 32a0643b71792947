// Package replay publishes snapshots recorded as JSON lines, one snapshot
// per line.
package replay

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"village-view/internal/core"
)

const maxLineBytes = 1 << 20

// Replay is a Source backed by a recording on disk.
type Replay struct {
	cfg Config
}

// New returns a replay source for the provided configuration.
func New(cfg Config) *Replay {
	return &Replay{cfg: cfg}
}

// Name returns the source identifier.
func (r *Replay) Name() string { return "replay" }

// Run loads the recording and publishes it frame by frame.
func (r *Replay) Run(ctx context.Context, port *core.Port) error {
	if r.cfg.Path == "" {
		return errors.New("replay: no path configured")
	}
	f, err := os.Open(r.cfg.Path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	frames, err := ReadFrames(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("replay %s: %w", r.cfg.Path, err)
	}
	if len(frames) == 0 {
		log.Printf("replay %s: no frames", r.cfg.Path)
		return nil
	}
	return Play(ctx, port, frames, r.cfg.Interval, r.cfg.Loop)
}

// ReadFrames decodes a JSON-lines recording. Blank lines are ignored and
// lines that are not snapshots are logged and skipped.
func ReadFrames(rd io.Reader) ([]core.Snapshot, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var frames []core.Snapshot
	line := 0
	for sc.Scan() {
		line++
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		snap, err := core.DecodeSnapshot(data)
		if err != nil {
			log.Printf("replay: line %d: %v", line, err)
			continue
		}
		frames = append(frames, snap)
	}
	return frames, sc.Err()
}

// Play publishes frames in order, waiting interval between consecutive
// frames. With loop set it starts over until ctx is cancelled.
func Play(ctx context.Context, port *core.Port, frames []core.Snapshot, interval time.Duration, loop bool) error {
	if len(frames) == 0 {
		return nil
	}
	first := true
	for {
		for _, snap := range frames {
			if !first {
				if err := wait(ctx, interval); err != nil {
					return err
				}
			}
			first = false
			if err := port.Publish(ctx, snap); err != nil {
				return err
			}
		}
		if !loop {
			return nil
		}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func init() {
	core.Register("replay", func(cfg map[string]string) core.Source {
		return New(FromMap(cfg))
	})
}
