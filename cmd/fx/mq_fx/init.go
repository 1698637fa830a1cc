package mq_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyago/pkg/config"
	"voyago/pkg/mq"
)

var Module = fx.Provide(providePublisher)

// providePublisher falls back to a no-op publisher when no broker is configured.
func providePublisher(lc fx.Lifecycle, cfg config.App, log *zap.Logger) (mq.EventPublisher, error) {
	if cfg.Broker.AMQPURL == "" {
		log.Info("AMQP_URL not set, domain events are discarded")
		return mq.NoopPublisher{}, nil
	}

	pub, err := mq.NewPublisher(cfg.Broker.AMQPURL, cfg.Broker.Exchange)
	if err != nil {
		return nil, err
	}
	log.Info("publishing domain events", zap.String("exchange", cfg.Broker.Exchange))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
