// Command pathviz runs and visualizes single-pair shortest-path searches on
// occupancy grids.
//
//	pathviz run maze.yaml --algorithm dijkstra --trace
//	pathviz animate maze.txt --delay 30ms
//	pathviz serve --addr :8080
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "pathviz:", err)
		stop()
		os.Exit(1)
	}
}
