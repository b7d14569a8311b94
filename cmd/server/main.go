// Package main implements the dinosaur-api command: an HTTP server for the
// dinosaur catalog plus the seed and migrate maintenance commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/dinosaur-api/internal/config"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/phrazzld/dinosaur-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// options holds the command line flags.
type options struct {
	configFile  string
	seedOnStart bool
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the command tree. Running the root command without a
// subcommand starts the server.
func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "dinosaur-api",
		Short:         "Read-only HTTP API for a dinosaur catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	rootCmd.Flags().BoolVar(&opts.seedOnStart, "seed", false, "reseed the catalog before serving")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	serveCmd.Flags().BoolVar(&opts.seedOnStart, "seed", false, "reseed the catalog before serving")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with the built-in dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	migrateCmd := &cobra.Command{
		Use:       "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "]",
		Short:     "Run database schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			return runMigrate(cmd.Context(), opts, command)
		},
	}

	rootCmd.AddCommand(serveCmd, seedCmd, migrateCmd)
	return rootCmd
}

// bootstrap loads the configuration and sets up the default logger.
func bootstrap(opts *options) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"base_url", cfg.Server.BaseURL,
		"driver", cfg.Database.Driver,
		"page_size", cfg.Collection.PageSize)
	if cfg.Database.URL != "" {
		l.Debug("Database configuration", "url_present", true)
	}

	return cfg, l, nil
}

func runServe(ctx context.Context, opts *options) error {
	cfg, l, err := bootstrap(opts)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// The memory store starts empty on every run.
	if opts.seedOnStart || cfg.Database.Driver == config.DriverMemory {
		if err := app.seedCatalog(ctx); err != nil {
			app.cleanup()
			return err
		}
	}

	return app.Run(ctx)
}

func runSeed(ctx context.Context, opts *options) error {
	cfg, l, err := bootstrap(opts)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.seedCatalog(ctx)
}

func runMigrate(ctx context.Context, opts *options, command string) error {
	cfg, l, err := bootstrap(opts)
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %s driver, configured driver is %s",
			config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Error("Error closing database connection", "error", err)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, l); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
