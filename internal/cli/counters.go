package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/yms/internal/wire"
)

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Inspect and reset category counters",
}

var countersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every category counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.LabelAdapterWithOutput(cmd.OutOrStdout()).ListCounters(commandContext(cmd))
		return err
	},
}

var countersShowCmd = &cobra.Command{
	Use:   "show [category]",
	Short: "Show one counter and the next label it will issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.LabelAdapterWithOutput(cmd.OutOrStdout()).ShowCounter(commandContext(cmd), args[0])
		return err
	},
}

var countersResetCmd = &cobra.Command{
	Use:   "reset [category]",
	Short: "Reset a counter to zero",
	Long: `Reset a category counter so the next label is number 1 again.

Labels already printed are NOT recalled; resetting a counter that has issued
labels will produce duplicates. Requires --force once labels exist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		_, err := wire.LabelAdapterWithOutput(cmd.OutOrStdout()).ResetCounter(commandContext(cmd), args[0], force)
		return err
	},
}

func init() {
	countersResetCmd.Flags().BoolP("force", "f", false, "Reset even if labels were issued")

	countersCmd.AddCommand(countersListCmd)
	countersCmd.AddCommand(countersShowCmd)
	countersCmd.AddCommand(countersResetCmd)
}

// CountersCmd returns the counters command
func CountersCmd() *cobra.Command {
	return countersCmd
}
