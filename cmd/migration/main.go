package main

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/drivers/database"
	"benefits-portal-service/internal/migration"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "develop"

func main() {
	rootCmd := &cobra.Command{
		Use:     "migration",
		Short:   "Manage the benefits portal Postgres schema",
		Version: Version,
	}

	rootCmd.AddCommand(upCmd())
	rootCmd.AddCommand(downCmd())
	rootCmd.AddCommand(statusCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := migration.Up(db)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migrations!\n", n)
			return nil
		},
	}
}

func downCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := migration.Down(db, steps)
			if err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migrations!\n", n)
			return nil
		},
	}
	cmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			statuses, err := migration.Statuses(db)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}
			for _, status := range statuses {
				state := "pending"
				if status.Applied {
					state = "applied"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-60s %s\n", status.ID, state)
			}
			return nil
		},
	}
}

func openDB() (*sql.DB, error) {
	driverConfig := config.NewDriverConfig()
	if driverConfig.Postgres.Host == "" {
		return nil, fmt.Errorf("POSTGRES_HOST is not set")
	}

	db, err := sql.Open("pgx", database.PostgresConnectionString(driverConfig))
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
