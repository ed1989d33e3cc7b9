package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/searchable/core/search"
	"github.com/goto/searchable/internal/server"
	"github.com/goto/searchable/internal/store/postgres"
	"github.com/goto/searchable/pkg/statsd"
)

// Version of the current build. Overridden by the build system.
var Version string

func cmdServe(baseCfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Serve the HTTP search API",
		Long:    heredoc.Doc(`Serve the record search HTTP API.`),
		Aliases: []string{"server", "start"},
		Example: heredoc.Doc(`
			$ searchable serve
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, baseCfg)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("searchable starting", "version", Version)

	statsdReporter, err := statsd.Init(logger, cfg.StatsD)
	if err != nil {
		return fmt.Errorf("failed to create statsd reporter: %w", err)
	}
	defer statsdReporter.Close()

	registry, err := loadRegistry(cfg.EntitiesFile)
	if err != nil {
		return err
	}
	logger.Info("loaded searchable entities", "entities", registry.Names())

	pgClient, err := postgres.NewClient(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create postgres client: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to postgres server", "host", cfg.DB.Host, "port", cfg.DB.Port)

	recordRepository, err := postgres.NewRecordRepository(pgClient)
	if err != nil {
		return fmt.Errorf("failed to create record repository: %w", err)
	}
	searchService := search.NewService(logger, registry, recordRepository)

	return server.Serve(ctx, cfg.Service, logger, searchService, statsdReporter)
}

func loadRegistry(path string) (*search.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open entity config %q: %w", path, err)
	}
	defer f.Close()

	registry, err := search.LoadRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load entity config %q: %w", path, err)
	}
	return registry, nil
}

func initLogger(logLevel string) *log.Logrus {
	return log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
}
