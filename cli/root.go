package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

// New builds the root command for the searchable binary.
func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "searchable <command> <subcommand> [flags]",
		Short:         "Record Search Service",
		Long:          "Declarative record search for Postgres-backed stores.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
			$ searchable serve
			$ searchable migrate
			$ searchable config init
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'searchable <command> --help' for info about a command.
			`),
		},
	}

	rootCmd.AddCommand(
		cmdServe(cfg),
		cmdMigrate(cfg),
		configCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("searchable"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		SEARCHABLE_LOG_LEVEL      Logging level (default "info")
		SEARCHABLE_DB_HOST        Postgres host
		SEARCHABLE_DB_PORT        Postgres port
		SEARCHABLE_SERVICE_PORT   HTTP port (default 8080)
	`),
}
