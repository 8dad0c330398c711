package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tileplan/internal/engine"
	"github.com/danieljhkim/tileplan/internal/grid"
	"github.com/danieljhkim/tileplan/internal/planner"
)

var (
	planDryRun    bool
	planStripSide string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a generation plan for a region",
	Long: `Compute the ordered generation steps for a region of the map.

Use 'plan rect' for a rectangular fill and 'plan strip' for a strip that
extends already generated content outward from one of its edges.`,
}

var planRectCmd = &cobra.Command{
	Use:   "rect <tlx> <tly> <brx> <bry>",
	Short: "Plan a rectangular region fill",
	Long: `Plan the generation of a rectangular region, top-left to bottom-right
inclusive. Quadrants already generated inside the region are skipped; the
plan covers every remaining quadrant with 2x2 blocks where nothing has
been generated nearby, pairs along existing content, and singles last.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		bounds, err := parseBounds(args)
		if err != nil {
			return err
		}

		eng, closer, err := newEngine()
		if err != nil {
			return err
		}
		defer closer()

		result, err := eng.PlanRectangle(context.Background(), engine.PlanRectangleRequest{
			Bounds: bounds,
			DryRun: planDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Rectangle Plan")
		PrintLabelValue("Bounds", bounds.String())
		PrintLabelValue("Pre-generated", strconv.Itoa(result.Summary.PreGenerated))
		PrintLabelValue("Steps", PrintCount(result.Summary.TotalSteps, "step", "steps"))
		printRectangleSteps(result.Document.Rectangle)

		if planDryRun {
			PrintInfo("Dry run: no plan document written")
			return nil
		}
		PrintSuccess(fmt.Sprintf("Plan written to %s", result.Path))
		return nil
	},
}

var planStripCmd = &cobra.Command{
	Use:   "strip <tlx> <tly> <brx> <bry>",
	Short: "Plan an expansion strip",
	Long: `Plan the generation of a strip that grows the map outward from
existing content. The strip must be empty, and one of its edges must sit
entirely against generated quadrants; that edge is detected automatically
unless --edge names it.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		bounds, err := parseBounds(args)
		if err != nil {
			return err
		}

		eng, closer, err := newEngine()
		if err != nil {
			return err
		}
		defer closer()

		result, err := eng.PlanStrip(context.Background(), engine.PlanStripRequest{
			Bounds: bounds,
			Edge:   planStripSide,
			DryRun: planDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Strip Plan")
		PrintLabelValue("Bounds", bounds.String())
		PrintLabelValue("Generation edge", string(result.Edge))
		PrintLabelValue("Steps", PrintCount(result.Summary.TotalSteps, "step", "steps"))
		printStripSteps(result.Document.Strip)

		if planDryRun {
			PrintInfo("Dry run: no plan document written")
			return nil
		}
		PrintSuccess(fmt.Sprintf("Plan written to %s", result.Path))
		return nil
	},
}

func printRectangleSteps(plan *planner.RectanglePlan) {
	if len(plan.Steps) == 0 {
		PrintEmptyState("nothing to generate")
		return
	}
	rows := make([][]string, 0, len(plan.Steps))
	for i, step := range plan.Steps {
		rows = append(rows, []string{
			strconv.Itoa(i), string(step.Type), formatQuadrants(step.Quadrants),
		})
	}
	PrintTable([]string{"#", "TYPE", "QUADRANTS"}, rows)
}

func printStripSteps(plan *planner.StripPlan) {
	if len(plan.Steps) == 0 {
		PrintEmptyState("nothing to generate")
		return
	}
	rows := make([][]string, 0, len(plan.Steps))
	for i, step := range plan.Steps {
		rows = append(rows, []string{
			strconv.Itoa(i), string(step.Type), string(step.Status), formatQuadrants(step.Quadrants),
		})
	}
	PrintTable([]string{"#", "TYPE", "STATUS", "QUADRANTS"}, rows)
}

func formatQuadrants(quadrants []grid.Point) string {
	parts := make([]string, 0, len(quadrants))
	for _, q := range quadrants {
		parts = append(parts, q.String())
	}
	return strings.Join(parts, " ")
}

func init() {
	planCmd.PersistentFlags().BoolVar(&planDryRun, "dry-run", false, "Compute the plan without writing a plan document")
	planStripCmd.Flags().StringVar(&planStripSide, "edge", "", "Generation edge (top, bottom, left, right); detected when omitted")
	planCmd.AddCommand(planRectCmd)
	planCmd.AddCommand(planStripCmd)
}
