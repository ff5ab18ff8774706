package server

import (
	"time"

	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/vertex"
)

// Config tunes a Server.
type Config struct {
	// Addr is the listen address. Default ":8080".
	Addr string
	// MaxCells rejects grids larger than this. Default 10000.
	MaxCells int
	// MaxDelay caps the per-frame delay of streamed searches. Default 1s.
	MaxDelay time.Duration
	// ShutdownTimeout bounds graceful shutdown. Default 5s.
	ShutdownTimeout time.Duration
	// AllowedOrigins lists the CORS origins of browser visualizers.
	// Default ["*"].
	AllowedOrigins []string
	// RateLimit caps /api/v1 requests per second across all clients;
	// zero disables limiting.
	RateLimit float64
	// Burst is the limiter bucket size. Default 10.
	Burst int
	// CacheBytes sizes the search result cache; negative disables it.
	// Default 4 MiB.
	CacheBytes int
	// CacheTTL is how long a cached result is served. Default 1m.
	CacheTTL time.Duration
}

// DefaultConfig returns the defaults listed on Config.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		MaxCells:        10000,
		MaxDelay:        time.Second,
		ShutdownTimeout: 5 * time.Second,
		AllowedOrigins:  []string{"*"},
		Burst:           10,
		CacheBytes:      4 << 20,
		CacheTTL:        time.Minute,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.MaxCells <= 0 {
		c.MaxCells = def.MaxCells
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = def.MaxDelay
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = def.ShutdownTimeout
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = def.AllowedOrigins
	}
	if c.Burst <= 0 {
		c.Burst = def.Burst
	}
	if c.CacheBytes == 0 {
		c.CacheBytes = def.CacheBytes
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}

	return c
}

// maxMessageBytes bounds a scenario request body or websocket message. A
// row costs its cells plus quotes and a comma, so one-cell rows take four
// bytes per cell; the remainder covers the other scenario fields.
func (c Config) maxMessageBytes() int64 {
	return 4*int64(c.MaxCells) + 4096
}

// SearchResponse is the result of one search.
type SearchResponse struct {
	RequestID      string             `json:"request_id"`
	Name           string             `json:"name,omitempty"`
	Algorithm      string             `json:"algorithm"`
	Representation string             `json:"representation"`
	Start          vertex.Name        `json:"start"`
	End            vertex.Name        `json:"end"`
	Outcome        string             `json:"outcome"`
	Path           []vertex.Name      `json:"path"`
	Cost           *float64           `json:"cost,omitempty"`
	Stats          shortestpath.Stats `json:"stats"`
	DurationMS     float64            `json:"duration_ms"`
	Cached         bool               `json:"cached,omitempty"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// Message types of the stream endpoint.
const (
	MsgFrame  = "frame"
	MsgResult = "result"
	MsgError  = "error"
)

// StreamMessage is one websocket message. Frame fields are set for
// MsgFrame, Result for MsgResult, Error for MsgError.
type StreamMessage struct {
	Type string `json:"type"`

	Step       int           `json:"step,omitempty"`
	Expanding  vertex.Name   `json:"expanding,omitempty"`
	Evaluating vertex.Name   `json:"evaluating,omitempty"`
	Open       []vertex.Name `json:"open,omitempty"`
	Visited    []vertex.Name `json:"visited,omitempty"`
	Outcome    string        `json:"outcome,omitempty"`

	Result *SearchResponse `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// frameMessage converts a snapshot into a MsgFrame.
func frameMessage(s shortestpath.Snapshot[vertex.Name]) StreamMessage {
	m := StreamMessage{
		Type:    MsgFrame,
		Step:    s.Step,
		Open:    s.Open,
		Visited: s.Visited,
		Outcome: s.Outcome.String(),
	}
	if s.HasExpanding {
		m.Expanding = s.Expanding
	}
	if s.HasEvaluating {
		m.Evaluating = s.Evaluating
	}

	return m
}
