package main

import (
	"github.com/spf13/cobra"
)

func migrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply the embedded SQL migrations that have not yet been recorded in
schema_migrations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*envFile)
			if err != nil {
				return err
			}
			defer a.close()

			return a.migrate()
		},
	}
}
