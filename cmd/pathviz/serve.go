package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/server"
)

func newServeCmd(a *app) *cobra.Command {
	cfg := server.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve searches over HTTP and websockets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(cfg, a.log.Slog()).Run(cmd.Context())
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	f.IntVar(&cfg.MaxCells, "max-cells", cfg.MaxCells, "Largest accepted grid, in cells")
	f.DurationVar(&cfg.MaxDelay, "max-delay", cfg.MaxDelay, "Cap on the per-frame delay of streamed searches")
	f.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown bound")
	f.StringSliceVar(&cfg.AllowedOrigins, "cors-origin", cfg.AllowedOrigins, "Allowed CORS origins of browser clients")
	f.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "API requests per second, 0 for unlimited")
	f.IntVar(&cfg.Burst, "burst", cfg.Burst, "Rate limiter burst size")
	f.IntVar(&cfg.CacheBytes, "cache-bytes", cfg.CacheBytes, "Result cache size in bytes, negative to disable")
	f.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "How long cached results are served")

	return cmd
}
