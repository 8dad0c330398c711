package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tileplan/internal/engine"
	"github.com/danieljhkim/tileplan/internal/grid"
)

var markCmd = &cobra.Command{
	Use:   "mark <x,y> [<x,y>...]",
	Short: "Record quadrants as generated",
	Long: `Record one or more quadrants as generated in the ledger. All quadrants
in one invocation share a single generation id.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points := make([]grid.Point, 0, len(args))
		for _, arg := range args {
			p, err := grid.ParsePoint(arg)
			if err != nil {
				return err
			}
			points = append(points, p)
		}

		eng, closer, err := newEngine()
		if err != nil {
			return err
		}
		defer closer()

		result, err := eng.Mark(context.Background(), engine.MarkRequest{Points: points})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Marked %s generated", PrintCount(result.Marked, "quadrant", "quadrants")))
		PrintLabelValue("Generation", result.GenerationID)
		return nil
	},
}
