package core

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrPortClosed is returned by Publish once the producer closed the port.
	ErrPortClosed = errors.New("port closed")
	// ErrAlreadySubscribed is returned when a second handler is registered.
	ErrAlreadySubscribed = errors.New("port already has a subscriber")
)

// Handler consumes one snapshot. It runs on the goroutine that calls Drain.
type Handler func(Snapshot)

// Port is the one-way draw channel between a Source and the renderer. The
// source publishes from its own goroutine; the UI loop drains queued
// snapshots synchronously, in arrival order, into the single handler.
type Port struct {
	queue chan Snapshot

	mu      sync.Mutex
	handler Handler

	closeOnce sync.Once
	closed    chan struct{}
}

// NewPort creates a port that queues up to buffer snapshots before Publish
// blocks.
func NewPort(buffer int) *Port {
	if buffer <= 0 {
		buffer = 1
	}
	return &Port{
		queue:  make(chan Snapshot, buffer),
		closed: make(chan struct{}),
	}
}

// Subscribe registers the handler. Only one handler may be registered for
// the lifetime of the port.
func (p *Port) Subscribe(h Handler) error {
	if h == nil {
		return errors.New("nil handler")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handler != nil {
		return ErrAlreadySubscribed
	}
	p.handler = h
	return nil
}

// Publish queues s for delivery, blocking while the queue is full.
func (p *Port) Publish(ctx context.Context, s Snapshot) error {
	select {
	case <-p.closed:
		return ErrPortClosed
	default:
	}
	select {
	case p.queue <- s:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.closed:
		return ErrPortClosed
	}
}

// Drain delivers every queued snapshot to the handler and returns how many
// were delivered. Without a handler nothing is consumed.
func (p *Port) Drain() int {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	if h == nil {
		return 0
	}
	n := 0
	for {
		select {
		case s := <-p.queue:
			h(s)
			n++
		default:
			return n
		}
	}
}

// Close marks the producer as finished. Snapshots already queued can still
// be drained.
func (p *Port) Close() {
	p.closeOnce.Do(func() { close(p.closed) })
}

// Finished reports whether the port is closed and fully drained.
func (p *Port) Finished() bool {
	select {
	case <-p.closed:
		return len(p.queue) == 0
	default:
		return false
	}
}
