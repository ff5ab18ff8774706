package shortestpath

import (
	"fmt"
	"log/slog"
)

// Heuristic estimates the remaining cost from v to end. It must return a
// non-negative value; an admissible heuristic never overestimates.
type Heuristic[V comparable] func(v, end V) float64

// Status is the result of a single Step.
type Status int

const (
	// Running means the engine stopped at a suspension point and has more work.
	Running Status = iota
	// Finished means the search terminated; further Steps are no-ops.
	Finished
)

// String returns "running" or "finished".
func (s Status) String() string {
	if s == Finished {
		return "finished"
	}

	return "running"
}

// Outcome describes how a search ended.
type Outcome int

const (
	// Pending means the search has not terminated yet.
	Pending Outcome = iota
	// Found means end was selected for expansion.
	Found
	// Exhausted means the open set emptied before end was reached.
	Exhausted
)

// String returns "pending", "found" or "exhausted".
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "pending"
	}
}

// Stats counts the work performed by an Engine.
type Stats struct {
	Steps         int `json:"steps"`          // suspension points reached
	Expansions    int `json:"expansions"`     // vertices finalized
	Evaluations   int `json:"evaluations"`    // neighbor evaluations
	Relaxations   int `json:"relaxations"`    // evaluations that improved gScore
	StaleDiscards int `json:"stale_discards"` // duplicate open-set entries dropped
	MaxOpen       int `json:"max_open"`       // largest open-set size observed
}

// String renders the counters on one line.
func (s Stats) String() string {
	return fmt.Sprintf("steps=%d expanded=%d evaluated=%d relaxed=%d stale=%d max_open=%d",
		s.Steps, s.Expansions, s.Evaluations, s.Relaxations, s.StaleDiscards, s.MaxOpen)
}

// Options holds hooks and diagnostics for an Engine.
type Options[V comparable] struct {
	// OnExpand is called when a vertex is selected and finalized.
	OnExpand func(v V)

	// OnEvaluate is called after the edge from→to was relaxed;
	// improved reports whether gScore[to] decreased.
	OnEvaluate func(from, to V, improved bool)

	// OnFinish is called once when the search terminates.
	OnFinish func(outcome Outcome, stats Stats)

	// Logger receives a Debug record per step. Defaults to a discard logger.
	Logger *slog.Logger
}

// Option configures an Engine.
type Option[V comparable] func(*Options[V])

// DefaultOptions returns no-op hooks and a discard logger.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		OnExpand:   func(V) {},
		OnEvaluate: func(V, V, bool) {},
		OnFinish:   func(Outcome, Stats) {},
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithOnExpand registers fn to run each time a vertex is expanded.
func WithOnExpand[V comparable](fn func(v V)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEvaluate registers fn to run after each neighbor evaluation.
func WithOnEvaluate[V comparable](fn func(from, to V, improved bool)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnEvaluate = fn
		}
	}
}

// WithOnFinish registers fn to run when the search terminates.
func WithOnFinish[V comparable](fn func(outcome Outcome, stats Stats)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithLogger sets the logger used for per-step Debug records.
func WithLogger[V comparable](l *slog.Logger) Option[V] {
	return func(o *Options[V]) {
		if l != nil {
			o.Logger = l
		}
	}
}
