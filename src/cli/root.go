package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/supply-dashboard/supply-dashboard-backend/src/config"
)

var (
	// Global flags
	envFile   string
	logFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "supply-dashboard",
	Short: "Supply chain dashboard backend",
	Long: `REST backend for the supply chain dashboard.

Serves CRUD endpoints for items, warehouses, inventories, orders, shipments,
suppliers and users on top of PostgreSQL.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log output format (json or text)")
}

// loadConfig reads the optional env file, installs the default logger and
// returns the resulting configuration.
func loadConfig() (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	cfg := config.Load()
	slog.SetDefault(newLogger(logFormat, cfg.LogLevel))
	return cfg, nil
}

func newLogger(format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
