package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndhoang/moneymind/internal/cli"
	"github.com/ndhoang/moneymind/internal/storage"
)

func migrateCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// openStorage migrates as a side effect, so both modes just
			// report the resulting version.
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			version, err := store.SchemaVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}

			if status {
				fmt.Printf("schema version: %d (expected %d)\n", version, storage.ExpectedSchemaVersion)
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Database is at schema version %d", version)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "print the schema version without any other output")

	return cmd
}
