package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/asserttypes/pkg/config"
	"github.com/dmitrymomot/asserttypes/pkg/logger"
)

const serviceName = "asserttypes"

var (
	envFile string
	verbose bool

	log = logger.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "asserttypes",
	Short: "Check data documents against type descriptors",
	Long: `asserttypes validates YAML, JSON and TOML documents against a type
descriptor: a type name ("posInt|str"), a list (["arrOf", "nonEmptyStr"])
or a mapping of keys to descriptors (a shape).

Configuration is read from the environment:
  APP_ENV                      development, staging or production
  ASSERT_TYPES_BYPASS          skip every check
  ASSERT_TYPES_DEBUG_ON_ERROR  log a stack trace on each failure
  ASSERT_TYPES_LINE_WIDTH      wrap error messages (0 disables)`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "read environment variables from this .env file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return err
		}
		config.ResetCache()
	}

	opts := []logger.Option{
		logger.WithEnvironment(os.Getenv("APP_ENV"), serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	} else {
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	}
	log = logger.New(opts...)
	return nil
}
