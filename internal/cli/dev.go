package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/yms/internal/db"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "dev",
		Short:  "Development utilities (use via yms-dev shim)",
		Hidden: true,
		Long: `Development utilities for working with a scratch counter database.

These commands require YMS_DB_PATH to point at a dev database. Running
without it errors to prevent accidental changes to real counters.`,
	}

	cmd.AddCommand(devResetCmd())
	return cmd
}

func devResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset dev database with fresh fixtures",
		Long: `Delete the dev database and recreate it with fixture counters and batches.

Safety: requires YMS_DB_PATH to be set so production counters are never
reset by accident.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dbPath := os.Getenv(db.PathEnv)
			if dbPath == "" {
				return fmt.Errorf("%s not set - use 'yms-dev dev reset' instead of 'yms dev reset'\n\nThis safety check prevents accidental reset of your real counters", db.PathEnv)
			}

			if !force {
				fmt.Fprintf(out, "This will delete and recreate: %s\n", dbPath)
				fmt.Fprint(out, "Continue? [y/N] ")
				var response string
				fmt.Fscanln(cmd.InOrStdin(), &response)
				if response != "y" && response != "Y" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			db.Close()

			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete database: %w", err)
			}
			fmt.Fprintf(out, "✓ Deleted %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			fmt.Fprintln(out, "✓ Created fresh database with schema")

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Fprintln(out, "✓ Seeded fixture data")
			fmt.Fprintln(out, "\nSeeded: 5 counters (Cartons one short of overflow), 5 batches")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
