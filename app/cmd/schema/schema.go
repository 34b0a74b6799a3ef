package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/persistence/v1/schema"
	"github.com/ribgsilva/studyvault/platform/database"
	"github.com/ribgsilva/studyvault/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command returns the schema command and its create and delete subcommands
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Schema Commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func() error {
				cmd.Println("creating schema")
				if err := schema.Create(cmd.Context()); err != nil {
					return fmt.Errorf("failed to create schema: %w", err)
				}
				cmd.Println("created schema")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Deletes the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func() error {
				cmd.Println("deleting schema")
				if err := schema.Drop(cmd.Context()); err != nil {
					return fmt.Errorf("failed to delete schema: %w", err)
				}
				cmd.Println("deleted schema")
				return nil
			})
		},
	})

	return cmd
}

// withDatabase runs f with only the database connected, the schema needs nothing else
func withDatabase(ctx context.Context, f func() error) error {
	// empty logger
	log := zap.NewNop().Sugar()
	sys.LoadStorage(log)
	sys.R.Log = log

	db, err := database.Open(ctx, sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	sys.R.Database = db

	return f()
}
