package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "annotation-registry.com/annotation-registry/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "annotation-registry",
	Short:         "Annotation task registry",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// loadConfig reads .env when present, parses the environment and sets up
// logging.
func loadConfig() (config.Config, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if err := config.NewLogger(cfg.LogLevel, cfg.LogPretty); err != nil {
		return config.Config{}, err
	}

	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}
	return cfg, nil
}
