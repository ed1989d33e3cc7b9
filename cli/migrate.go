package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/searchable/internal/store/postgres"
)

func cmdMigrate(baseCfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migration",
		Example: heredoc.Doc(`
			$ searchable migrate
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
			return runMigrations(cfg)
		},
	}
}

func runMigrations(cfg *Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("searchable is migrating", "version", Version)

	pgClient, err := postgres.NewClient(cfg.DB)
	if err != nil {
		logger.Error("failed to prepare migration", "error", err)
		return err
	}
	defer pgClient.Close()

	if err := pgClient.Migrate(cfg.DB); err != nil {
		return fmt.Errorf("problem with migration %w", err)
	}

	logger.Info("migration done")
	return nil
}
