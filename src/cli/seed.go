package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/supply-dashboard/supply-dashboard-backend/src/db"
	"github.com/supply-dashboard/supply-dashboard-backend/src/seed"
)

var adminPassword string

// seedCmd populates an empty database
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin user and demo data",
	Long: `Migrate the schema, create the admin user and load a small demo data set.
Existing data is left untouched, so the command is safe to run repeatedly.

Examples:
  supply-dashboard seed --admin-password changeme
  ADMIN_PASSWORD=changeme supply-dashboard seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for the admin user (defaults to ADMIN_PASSWORD, then \"admin\")")
}

func runSeed(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	password := adminPassword
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}
	if password == "" {
		slog.Warn("No admin password given, using the default")
		password = "admin"
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	return seed.Seed(ctx, gormDB, password)
}
