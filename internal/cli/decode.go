package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/yms/internal/ports/primary"
	"github.com/example/yms/internal/wire"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [category] [label]",
	Short: "Show the count behind a printed label",
	Long: `Decode a scanned label back to its count and report whether it was issued.

Examples:
  yms decode Cartons SBXA001
  yms decode Custom DOCK7-0003 --prefix DOCK7-`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, _ := cmd.Flags().GetString("prefix")
		_, err := wire.LabelAdapterWithOutput(cmd.OutOrStdout()).Decode(commandContext(cmd), primary.DecodeLabelRequest{
			Category: args[0],
			Prefix:   prefix,
			Label:    args[1],
		})
		return err
	},
}

func init() {
	decodeCmd.Flags().StringP("prefix", "p", "", "Prefix to strip (defaults to the category or last used prefix)")
}

// DecodeCmd returns the decode command
func DecodeCmd() *cobra.Command {
	return decodeCmd
}
