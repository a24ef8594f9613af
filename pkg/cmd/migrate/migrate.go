package migrate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/cmd/common"
	"github.com/mpapenbr/gc-segments/pkg/config"
	"github.com/mpapenbr/gc-segments/pkg/db/migrate"
)

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "performs database migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startMigration()
		},
	}

	cmd.Flags().StringVarP(&config.MigrationSourceURL,
		"migration-source-url",
		"m",
		"",
		"url to migration files (default: embedded migrations)")

	return cmd
}

func startMigration() error {
	common.SetupLogger()
	defer log.Sync()
	if err := common.WaitForDB(); err != nil {
		log.Error("database not ready", log.ErrorField(err))
		return err
	}

	dbURL := prepareURLForDB(config.DB)
	var err error
	if config.MigrationSourceURL == "" {
		log.Info("Using embedded migrations")
		err = migrate.MigrateDB(dbURL)
	} else {
		log.Info("Using migrations files at", log.String("source", config.MigrationSourceURL))
		err = migrate.MigrateFromSource(config.MigrationSourceURL, dbURL)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Info("Database is up to date")
	return nil
}

func prepareURLForDB(url string) string {
	options := "sslmode=disable"
	if strings.Contains(url, "sslmode=") {
		return url
	}
	if strings.Contains(url, "?") {
		return fmt.Sprintf("%s&%s", url, options)
	}
	return fmt.Sprintf("%s?%s", url, options)
}
