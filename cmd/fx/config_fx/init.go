package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyago/pkg/config"
	"voyago/pkg/logger"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideLogger, provideTokenManager, provideClock)

func provideConfig() (config.App, error) {
	return config.Load()
}

// provideLogger also replaces zap's globals so zap.L() in the response
// helpers logs through the same core.
func provideLogger(cfg config.App) (*zap.Logger, error) {
	log, err := logger.New(cfg.Logs.Level, cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

func provideTokenManager(cfg config.App) *utils.TokenManager {
	return utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideClock() utils.TimeProvider {
	return utils.RealTimeProvider{}
}
