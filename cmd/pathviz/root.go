package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/logging"
)

// app carries state shared by subcommands.
type app struct {
	logLevel string
	logJSON  bool
	logFile  string

	log *logging.Logger

	// scenario overrides
	algorithm      string
	representation string
	connectivity   int
	delay          string
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}
	root := &cobra.Command{
		Use:   "pathviz",
		Short: "Visualize Dijkstra and A* on grid graphs",
		Long: `pathviz runs single-pair shortest-path searches on occupancy grids.

Scenarios are YAML, TOML or plain grid files ('.' open, '#' wall,
'S' start, 'E' end). Without a file the built-in demo maze is used.

Subcommands:
  run      - search headless and print the path and counters
  animate  - step through the search in the terminal
  serve    - expose searches over HTTP and websockets`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			l, err := logging.New(logging.Config{
				Level:  level,
				JSON:   a.logJSON,
				File:   a.logFile,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.log.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", false, "Write console logs as JSON")
	pf.StringVar(&a.logFile, "log-file", "", "Also write JSON logs to this rotating file")

	root.AddCommand(newRunCmd(a), newAnimateCmd(a), newServeCmd(a))

	return root
}

// addScenarioFlags registers the per-search overrides on cmd.
func (a *app) addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&a.algorithm, "algorithm", "a", "", "Override algorithm: dijkstra or astar")
	f.StringVarP(&a.representation, "representation", "r", "", "Override graph representation: list or matrix")
	f.IntVarP(&a.connectivity, "connectivity", "c", 0, "Override grid connectivity: 4 or 8")
	f.StringVarP(&a.delay, "delay", "d", "", "Override the delay between animation steps, e.g. 40ms")
}

// loadPlan reads the scenario named by args (or the demo), applies the
// flag overrides and resolves it.
func (a *app) loadPlan(args []string) (*config.Plan, error) {
	sc := config.Default()
	if len(args) > 0 {
		var err error
		if sc, err = config.Load(args[0]); err != nil {
			return nil, err
		}
	}
	if a.algorithm != "" {
		sc.Algorithm = a.algorithm
	}
	if a.representation != "" {
		sc.Representation = a.representation
	}
	if a.connectivity != 0 {
		sc.Connectivity = a.connectivity
	}
	if a.delay != "" {
		sc.Delay = a.delay
	}

	plan, err := sc.Resolve()
	if err != nil {
		return nil, err
	}
	a.log.Info("scenario loaded", "name", plan.Name, "algorithm", plan.Algorithm.String(),
		"representation", plan.Representation.String(), "start", plan.Start, "end", plan.End)

	return plan, nil
}
