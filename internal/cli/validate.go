package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tileplan/internal/engine"
)

var validateCmd = &cobra.Command{
	Use:   "validate <plan-file>",
	Short: "Re-check a stored plan against the placement rules",
	Long: `Validate a plan document: replay every placement rule the planner used
and report each violation, then compare the generated quadrants around the
region with the snapshot the plan was computed against.

A stale plan is not necessarily broken, but it was planned for a world
that no longer exists; re-plan the region to be safe.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := newEngine()
		if err != nil {
			return err
		}
		defer closer()

		result, err := eng.ValidatePlan(context.Background(), engine.ValidateRequest{Path: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Plan Validation")
		PrintLabelValue("Document", result.Document.ID)
		PrintLabelValue("Kind", result.Document.Kind)

		if len(result.Violations) == 0 {
			PrintSuccess("Plan satisfies all placement rules")
		} else {
			PrintWarning(fmt.Sprintf("Found %s", PrintCount(len(result.Violations), "violation", "violations")))
			items := make([]string, 0, len(result.Violations))
			for _, v := range result.Violations {
				items = append(items, v.String())
			}
			PrintList(items, 1)
		}

		if result.Stale {
			PrintWarning("Generated quadrants changed since planning; re-plan this region")
		}
		if len(result.Violations) > 0 {
			return fmt.Errorf("plan failed validation")
		}
		return nil
	},
}
