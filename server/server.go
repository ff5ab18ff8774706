package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/vertex"
)

// ErrTooLarge indicates a grid with more cells than Config.MaxCells.
var ErrTooLarge = errors.New("server: grid too large")

const requestIDHeader = "X-Request-ID"

// Values of the source label on pathviz_searches_total.
const (
	sourceComputed = "computed"
	sourceCache    = "cache"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(*http.Request) bool { return true },
	ReadBufferSize:  64 * 1024,
	WriteBufferSize: 64 * 1024,
}

// Server serves searches over HTTP and websockets.
type Server struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	cache   *resultCache
	router  *gin.Engine
	handler http.Handler
}

// New builds a Server. A nil logger discards records.
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	cfg = cfg.withDefaults()
	s := &Server{
		cfg:     cfg,
		log:     log,
		metrics: newMetrics(),
		cache:   newResultCache(cfg.CacheBytes, int(cfg.CacheTTL.Seconds())),
		router:  gin.New(),
	}
	s.routes()
	s.handler = cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(s.router)

	return s
}

// Handler returns the HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() {
	s.router.Use(gin.Recovery(), s.requestID(), s.accessLog())

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/api/v1", s.throttle())
	v1.POST("/search", s.handleSearch)
	v1.GET("/search/stream", s.handleStream)
}

// requestID reuses a valid incoming X-Request-ID or assigns a new UUID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// throttle rejects requests beyond cfg.RateLimit with 429.
func (s *Server) throttle() gin.HandlerFunc {
	if s.cfg.RateLimit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	lim := rate.NewLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.Burst)

	return func(c *gin.Context) {
		if !lim.Allow() {
			s.metrics.throttled.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				RequestID: c.GetString(requestIDHeader),
				Error:     "server: rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"request_id", c.GetString(requestIDHeader),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}

// plan decodes and resolves a scenario, enforcing the size limit.
func (s *Server) plan(sc config.Scenario) (*config.Plan, error) {
	if cells := gridCells(sc.Grid); cells > s.cfg.MaxCells {
		return nil, fmt.Errorf("%w: %d cells, limit %d", ErrTooLarge, cells, s.cfg.MaxCells)
	}

	return sc.Resolve()
}

func gridCells(rows []string) int {
	n := 0
	for _, r := range rows {
		n += len(r)
	}

	return n
}

func (s *Server) handleSearch(c *gin.Context) {
	id := c.GetString(requestIDHeader)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.maxMessageBytes())
	var sc config.Scenario
	if err := c.ShouldBindJSON(&sc); err != nil {
		status := http.StatusBadRequest
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, ErrorResponse{RequestID: id, Error: err.Error()})
		return
	}
	key, keyErr := cacheKey(sc)
	if keyErr == nil {
		if res, ok := s.cache.get(key); ok {
			s.metrics.cacheHits.Inc()
			s.metrics.searches.WithLabelValues(res.Algorithm, "search", res.Outcome, sourceCache).Inc()
			res.RequestID, res.Name, res.Cached = id, sc.Name, true
			c.JSON(http.StatusOK, res)
			return
		}
	}
	plan, err := s.plan(sc)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, ErrorResponse{RequestID: id, Error: err.Error()})
		return
	}

	engine := plan.NewEngine(shortestpath.WithLogger[vertex.Name](s.log.With("request_id", id)))
	begin := time.Now()
	path, err := shortestpath.NewPlayer(engine, 0).Play(c.Request.Context(), nil)
	if err != nil {
		s.log.Warn("search abandoned", "request_id", id, "error", err)
		c.Status(499) // client closed request
		return
	}
	res := s.observe("search", id, plan, engine, path, time.Since(begin))
	if keyErr == nil {
		if err := s.cache.put(key, res); err != nil {
			s.log.Warn("cache store failed", "request_id", id, "error", err)
		}
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleStream(c *gin.Context) {
	id := c.GetString(requestIDHeader)
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "request_id", id, "error", err)
		return
	}
	defer ws.Close()
	s.metrics.streams.Inc()
	defer s.metrics.streams.Dec()
	ws.SetReadLimit(s.cfg.maxMessageBytes())

	var sc config.Scenario
	if err := ws.ReadJSON(&sc); err != nil {
		_ = ws.WriteJSON(StreamMessage{Type: MsgError, Error: err.Error()})
		return
	}
	plan, err := s.plan(sc)
	if err != nil {
		_ = ws.WriteJSON(StreamMessage{Type: MsgError, Error: err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	// The client sends nothing after the scenario; a read error means it left.
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.NextReader(); err != nil {
				return
			}
		}
	}()

	engine := plan.NewEngine(shortestpath.WithLogger[vertex.Name](s.log.With("request_id", id)))
	delay := min(plan.Delay, s.cfg.MaxDelay)
	begin := time.Now()
	var writeErr error
	path, err := shortestpath.NewPlayer(engine, delay).Play(ctx, func(snap shortestpath.Snapshot[vertex.Name]) {
		if writeErr != nil {
			return
		}
		if writeErr = ws.WriteJSON(frameMessage(snap)); writeErr != nil {
			cancel()
		}
	})
	if err != nil || writeErr != nil {
		s.log.Info("stream abandoned", "request_id", id, "error", errors.Join(err, writeErr))
		return
	}

	res := s.observe("stream", id, plan, engine, path, time.Since(begin))
	_ = ws.WriteJSON(StreamMessage{Type: MsgResult, Result: &res})
	_ = ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}

// observe records metrics and builds the response for a finished search.
func (s *Server) observe(endpoint, id string, plan *config.Plan, e *shortestpath.Engine[vertex.Name], path []vertex.Name, took time.Duration) SearchResponse {
	algo := plan.Algorithm.String()
	st := e.Stats()
	s.metrics.searches.WithLabelValues(algo, endpoint, e.Outcome().String(), sourceComputed).Inc()
	s.metrics.duration.WithLabelValues(algo).Observe(took.Seconds())
	s.metrics.expansions.WithLabelValues(algo).Observe(float64(st.Expansions))

	res := SearchResponse{
		RequestID:      id,
		Name:           plan.Name,
		Algorithm:      algo,
		Representation: plan.Representation.String(),
		Start:          plan.Start,
		End:            plan.End,
		Outcome:        e.Outcome().String(),
		Path:           path,
		Stats:          st,
		DurationMS:     float64(took.Microseconds()) / 1000,
	}
	if cost := shortestpath.PathCost(plan.Graph, path); !math.IsInf(cost, 1) {
		res.Cost = &cost
	}
	s.log.Info("search finished", "request_id", id, "algorithm", algo,
		"outcome", res.Outcome, "path_len", len(path), "stats", st.String())

	return res
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
