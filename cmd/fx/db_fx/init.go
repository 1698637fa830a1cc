package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/infra"
	"voyago/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg config.App, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := infra.AutoMigrate(db); err != nil {
			return nil, err
		}
		log.Info("database schema migrated", zap.String("driver", cfg.Database.Driver))
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})
	return db, nil
}
