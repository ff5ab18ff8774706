package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/tui"
	"github.com/katalvlaran/pathviz/vertex"
)

func newAnimateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate [SCENARIO]",
		Short: "Step through a search in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.loadPlan(args)
			if err != nil {
				return err
			}
			final, err := tui.Run(cmd.Context(), plan, shortestpath.WithLogger[vertex.Name](a.log.Slog()))
			if err != nil {
				return err
			}
			e := final.Engine()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %s\n", plan.Name, e.Outcome(), e.Stats())

			return nil
		},
	}
	a.addScenarioFlags(cmd)

	return cmd
}
