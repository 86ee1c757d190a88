package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/yms/internal/ports/primary"
	"github.com/example/yms/internal/wire"
)

var generateCmd = &cobra.Command{
	Use:   "generate [category]",
	Short: "Issue a batch of labels",
	Long: `Issue the next labels for a category and advance its counter.

Fixed categories (Crates, Cartons, Pallets) use their configured prefix.
Custom and LR need --prefix; changing the prefix restarts the counter at 1.

Examples:
  yms generate Cartons -n 5
  yms generate Custom --prefix DOCK7- -n 20
  yms generate LR --prefix IN987098 -n 12 --plain | lp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		more, _ := cmd.Flags().GetBool("more")
		return runGenerate(cmd, args[0], more)
	},
}

var moreCmd = &cobra.Command{
	Use:   "more [category]",
	Short: "Continue the last run with more labels",
	Long: `Issue more labels as a continuation of the category's last run.
Captions keep counting within the run ("Case 6 of 8").

Examples:
  yms more Cartons -n 3
  yms more LR --prefix IN987098 -n 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], true)
	},
}

func runGenerate(cmd *cobra.Command, categoryName string, continuation bool) error {
	count, _ := cmd.Flags().GetInt("count")
	prefix, _ := cmd.Flags().GetString("prefix")
	plain, _ := cmd.Flags().GetBool("plain")

	if err := validateInput(generateInput{
		Category: categoryName,
		Prefix:   prefix,
		Count:    count,
		MaxBatch: wire.Config().MaxBatch,
	}); err != nil {
		return err
	}

	_, err := wire.LabelAdapterWithOutput(cmd.OutOrStdout()).Generate(commandContext(cmd), primary.GenerateLabelsRequest{
		Category:     categoryName,
		Prefix:       prefix,
		Count:        count,
		Continuation: continuation,
	}, plain)
	return err
}

func init() {
	for _, c := range []*cobra.Command{generateCmd, moreCmd} {
		c.Flags().IntP("count", "n", 1, "Number of labels to issue")
		c.Flags().StringP("prefix", "p", "", "Label prefix (required for Custom and LR)")
		c.Flags().Bool("plain", false, "Print one label per line")
	}
	generateCmd.Flags().Bool("more", false, "Continue the last run instead of starting a new one")
}

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	return generateCmd
}

// MoreCmd returns the more command
func MoreCmd() *cobra.Command {
	return moreCmd
}
