package shortestpath

import (
	"context"
	"time"
)

// Player drives an Engine one step at a time, pausing between steps so an
// external renderer can draw each frame.
//
// The delay only affects wall-clock pacing; the sequence of state mutations
// and the resulting path are identical for every delay, including zero.
type Player[V comparable] struct {
	engine *Engine[V]
	delay  time.Duration
}

// NewPlayer wraps e with a per-step delay. Negative delays are treated as zero.
func NewPlayer[V comparable](e *Engine[V], delay time.Duration) *Player[V] {
	return &Player[V]{engine: e, delay: max(delay, 0)}
}

// Engine returns the wrapped engine.
func (p *Player[V]) Engine() *Engine[V] { return p.engine }

// Delay returns the pause between steps.
func (p *Player[V]) Delay() time.Duration { return p.delay }

// Play steps the engine until it finishes. After every step it waits for
// the delay and only then calls onFrame with a snapshot, so each state
// becomes observable one delay after the previous one (the first frame
// included).
//
// Cancelling ctx abandons the search: Play returns ctx.Err() and leaves the
// engine inert at its last suspension point. The delay is never a timeout.
func (p *Player[V]) Play(ctx context.Context, onFrame func(Snapshot[V])) ([]V, error) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status := p.engine.Step()

		if p.delay > 0 {
			if timer == nil {
				timer = time.NewTimer(p.delay)
			} else {
				timer.Reset(p.delay)
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		if onFrame != nil {
			onFrame(p.engine.Snapshot())
		}
		if status == Finished {
			return p.engine.Path(), nil
		}
	}
}
