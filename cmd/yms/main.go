package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/yms/internal/cli"
	"github.com/example/yms/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "yms",
		Short:   "yms - sequential label numbering for the yard",
		Version: version.String(),
		Long: `yms issues sequential, human-readable labels for crates, cartons, pallets
and lorry receipts. Each category keeps its own counter; labels look like
SBX0001, and past 9999 continue as SBXA001..SBXZ9999.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("operator", "", "Operator recorded on issued batches (default: config operator or $USER)")

	// Label commands
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.MoreCmd())
	rootCmd.AddCommand(cli.DecodeCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Counter and catalog management
	rootCmd.AddCommand(cli.CountersCmd())
	rootCmd.AddCommand(cli.CategoriesCmd())
	rootCmd.AddCommand(cli.InitCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
