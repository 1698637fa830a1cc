package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"voyago/internal/infra"
)

func MigrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := infra.AutoMigrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}
