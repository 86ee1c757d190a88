package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/yms/internal/wire"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show configured label categories",
	Long: `Show label categories. Built-ins can be overridden and new ones added in
~/.yms/categories.yaml or ./.yms/categories.yaml (project wins).`,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their prefix and numbering",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.LabelAdapterWithOutput(cmd.OutOrStdout()).ListCategories(commandContext(cmd))
		return err
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd)
}

// CategoriesCmd returns the categories command
func CategoriesCmd() *cobra.Command {
	return categoriesCmd
}
