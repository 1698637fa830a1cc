package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/infra"
	"voyago/pkg/config"
)

// opener hands out a database handle and the function that releases it.
type opener func(cmd *cobra.Command) (*gorm.DB, func(), error)

func NewRootCmd() *cobra.Command {
	var envFile string
	root := newRootCmd(func(cmd *cobra.Command) (*gorm.DB, func(), error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			return nil, nil, err
		}
		db, err := infra.OpenDatabase(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		return db, func() { infra.CloseDatabase(db, zap.NewNop()) }, nil
	})
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	return root
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "voyagectl",
		Short:         "Operational tasks for the voyago booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		MigrateCmd(open),
		SeedCmd(open),
		UsersCmd(open),
	)
	return root
}
