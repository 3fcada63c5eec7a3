package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "annotation-registry.com/annotation-registry/internal/configs"
	repository "annotation-registry.com/annotation-registry/internal/repositories"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tasks table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := config.NewDatabaseClient(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = config.CloseDatabase(db) }()

		if err := repository.NewTaskRepository(db).Migrate(cmd.Context()); err != nil {
			return err
		}

		log.Info().Str("driver", cfg.DatabaseDriver).Msg("tasks table is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
