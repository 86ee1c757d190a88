package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/yms/internal/config"
	"github.com/example/yms/internal/db"
	"github.com/example/yms/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize yms config, categories and database",
		Long: `Write .yms/config.json and .yms/categories.yaml with defaults and create the
counter database (default ~/.yms/yms.db). Existing files are left alone.

Use --global to write the files under your home directory instead of the
current project.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if global {
				dir, err = os.UserHomeDir()
			}
			if err != nil {
				return fmt.Errorf("failed to resolve directory: %w", err)
			}
			out := cmd.OutOrStdout()

			if _, err := config.LoadConfig(dir); err != nil {
				if err := config.SaveConfig(dir, config.Default()); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Config written to %s/config.json\n", config.Dir(dir))
			} else {
				fmt.Fprintf(out, "  Config already exists in %s\n", config.Dir(dir))
			}

			wrote, err := config.WriteDefaultCatalog(dir)
			if err != nil {
				return err
			}
			if wrote {
				fmt.Fprintf(out, "✓ Categories written to %s/categories.yaml\n", config.Dir(dir))
			}

			// Config may move the database
			wire.Config()
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}
			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Fprintf(out, "✓ Database ready at %s\n", dbPath)

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  yms categories list")
			fmt.Fprintln(out, "  yms generate Cartons -n 5")
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write config under ~/.yms instead of ./.yms")
	return cmd
}
