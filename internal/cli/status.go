package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tileplan/internal/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status [<tlx> <tly> <brx> <bry>]",
	Short: "Show which quadrants have been generated",
	Long: `Report generation status. With four coordinates the report is limited
to that region and includes how much of it is generated; without
arguments it covers the whole ledger.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 4 {
			return fmt.Errorf("expected no arguments or four coordinates, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		req := engine.StatusRequest{}
		if len(args) == 4 {
			bounds, err := parseBounds(args)
			if err != nil {
				return err
			}
			req.Bounds = &bounds
		}

		eng, closer, err := newEngine()
		if err != nil {
			return err
		}
		defer closer()

		result, err := eng.Status(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Generation Status")
		if result.Bounds != nil {
			PrintLabelValue("Bounds", result.Bounds.String())
			PrintLabelValue("Generated", fmt.Sprintf("%d of %d quadrants", result.Generated, result.Total))
		} else {
			PrintLabelValue("Generated", strconv.Itoa(result.Generated))
		}

		if len(result.Points) == 0 {
			PrintEmptyState("no generated quadrants")
			return nil
		}
		items := make([]string, 0, len(result.Points))
		for _, p := range result.Points {
			items = append(items, p.String())
		}
		PrintList(items, 1)
		return nil
	},
}
