package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/vertex"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		trace   bool
		color   bool
		compare bool
	)
	cmd := &cobra.Command{
		Use:   "run [SCENARIO]",
		Short: "Run a search headless and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.loadPlan(args)
			if err != nil {
				return err
			}
			theme := render.Plain()
			if color {
				theme = render.DefaultTheme()
			}
			out := cmd.OutOrStdout()
			if compare {
				for _, algo := range []config.Algorithm{config.Dijkstra, config.AStar} {
					p := *plan
					p.Algorithm = algo
					runOne(out, &p, a, render.New(theme), false)
					fmt.Fprintln(out)
				}
				return nil
			}
			runOne(out, plan, a, render.New(theme), trace)
			return nil
		},
	}
	a.addScenarioFlags(cmd)
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every frame of the search")
	cmd.Flags().BoolVar(&color, "color", isatty.IsTerminal(os.Stdout.Fd()), "Color the grid output (default on for terminals)")
	cmd.Flags().BoolVar(&compare, "compare", false, "Run both algorithms and print both results")

	return cmd
}

// runOne searches plan and writes the summary, and each frame when trace is set.
func runOne(out io.Writer, plan *config.Plan, a *app, r *render.Renderer, trace bool) {
	e := plan.NewEngine(shortestpath.WithLogger[vertex.Name](a.log.Slog()))
	algo := plan.Algorithm.String()

	if trace {
		for st := shortestpath.Running; st == shortestpath.Running; {
			st = e.Step()
			fmt.Fprintln(out, r.Grid(plan.Grid, e.Snapshot()))
			fmt.Fprintln(out, r.Status(algo, e.Snapshot(), math.Inf(1)))
			fmt.Fprintln(out)
		}
	} else {
		e.Run()
	}

	snap := e.Snapshot()
	cost := shortestpath.PathCost(plan.Graph, snap.Path)
	fmt.Fprintln(out, r.Frame(fmt.Sprintf("%s (%s, %s)", plan.Name, algo, plan.Representation), algo, plan.Grid, snap, cost))

	if snap.Path == nil {
		reason := "no path"
		if !plan.Grid.Connected(plan.Start, plan.End) {
			reason = "no path: start and end lie in different regions"
		}
		fmt.Fprintln(out, reason)
		return
	}
	names := make([]string, len(snap.Path))
	for i, v := range snap.Path {
		names[i] = string(v)
	}
	fmt.Fprintf(out, "path: %s\n", strings.Join(names, " -> "))
	fmt.Fprintf(out, "length: %s vertices, cost %s, %s of %s cells expanded\n",
		humanize.Comma(int64(len(snap.Path))),
		humanize.FtoaWithDigits(cost, 3),
		humanize.Comma(int64(snap.Stats.Expansions)),
		humanize.Comma(int64(len(plan.Grid.Names()))))
}
