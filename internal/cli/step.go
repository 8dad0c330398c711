package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tileplan/internal/engine"
)

var stepCmd = &cobra.Command{
	Use:   "step <plan-file> <index> <status>",
	Short: "Update the status of a strip plan step",
	Long: `Move one step of a strip plan through its lifecycle: pending,
executing, done, or failed. Marking a step done also records its
quadrants as generated in the ledger.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("step index %q is not an integer", args[1])
		}

		eng, closer, err := newEngine()
		if err != nil {
			return err
		}
		defer closer()

		result, err := eng.SetStepStatus(context.Background(), engine.StepStatusRequest{
			Path:   args[0],
			Step:   index,
			Status: args[2],
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Step %d marked %s", index, args[2]))
		if result.GenerationID != "" {
			PrintLabelValue("Generation", result.GenerationID)
		}
		return nil
	},
}
