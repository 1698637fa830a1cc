package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/booking_fx"
	"voyago/cmd/fx/catalog_fx"
	"voyago/cmd/fx/config_fx"
	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/marketing_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/cmd/fx/metrics_fx"
	"voyago/cmd/fx/mq_fx"
	"voyago/cmd/fx/payment_plan_fx"
	"voyago/cmd/fx/review_fx"
	"voyago/cmd/fx/user_fx"
	"voyago/internal/api"
	"voyago/pkg/config"
	mem "voyago/pkg/memcache"
	"voyago/pkg/metrics"
	"voyago/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),

		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mq_fx.Module,
		metrics_fx.Module,

		account_fx.Module,
		catalog_fx.Module,
		booking_fx.Module,
		payment_plan_fx.Module,
		user_fx.Module,
		review_fx.Module,
		marketing_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	cfg config.App,
	log *zap.Logger,
	m *metrics.Metrics,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	db *gorm.DB,
	h api.Controllers,
) *gin.Engine {
	deps := api.RouterDeps{
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Tokens:  tokens,
		Revoked: revoked,
		Health: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	return api.NewRouter(deps, h)
}

func StartServer(lc fx.Lifecycle, cfg config.App, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
