package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/goto/searchable/internal/server"
	"github.com/goto/searchable/internal/store/postgres"
	"github.com/goto/searchable/pkg/statsd"
)

const configFlag = "config"

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// Path to the entity declaration file
	EntitiesFile string `yaml:"entities_file" mapstructure:"entities_file" default:"entities.yaml"`

	// StatsD
	StatsD statsd.Config `yaml:"statsd" mapstructure:"statsd"`

	// Database
	DB postgres.Config `yaml:"db" mapstructure:"db"`

	// Service
	Service server.Config `yaml:"service" mapstructure:"service"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig("searchable").Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return loadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func loadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("searchable.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("SEARCHABLE"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, nil
		}
		return &cfg, err
	}
	return &cfg, nil
}

// LoadConfigFromFlag loads configuration from an explicit file path.
func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	return config.NewLoader(config.WithFile(cfgFile)).Load(cfg)
}

// loadConfig resolves the effective configuration for a command, honoring
// the --config flag override.
func loadConfig(cmd *cobra.Command, base *Config) (*Config, error) {
	cfgFile, _ := cmd.Flags().GetString(configFlag)
	if cfgFile == "" {
		return base, nil
	}

	var cfg Config
	if err := LoadConfigFromFlag(cfgFile, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage server configurations",
		Example: heredoc.Doc(`
			$ searchable config init
			$ searchable config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new server configuration",
		Example: heredoc.Doc(`
			$ searchable config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig("searchable")

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List server configuration settings",
		Example: heredoc.Doc(`
			$ searchable config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(os.Stdout).Encode(*cfg)
		},
	}
}
