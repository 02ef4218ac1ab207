package main

import (
	"context"

	"github.com/aiu-lab/facility-service/facility/migrations"
	"github.com/aiu-lab/facility-service/pkg/postgres"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version]",
	Short:     "Apply or inspect the embedded schema migrations",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"up", "down", "status", "version"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}
		db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, nil)
		if err != nil {
			return err
		}
		defer db.Close()

		goose.SetBaseFS(migrations.MigrationFiles)
		if err := goose.SetDialect("postgres"); err != nil {
			return err
		}
		if err := goose.Run(command, db.DB, "."); err != nil {
			return errors.Wrapf(err, "goose %s", command)
		}
		return nil
	},
}
