package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/yms/internal/ports/primary"
	"github.com/example/yms/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history [category]",
	Short: "List issued batches, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if err := validateInput(historyInput{Limit: limit}); err != nil {
			return err
		}

		filters := primary.BatchFilters{Limit: limit}
		if len(args) == 1 {
			filters.Category = args[0]
		}
		_, err := wire.LabelAdapterWithOutput(cmd.OutOrStdout()).History(commandContext(cmd), filters)
		return err
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 20, "Maximum batches to show (0 for all)")
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return historyCmd
}
