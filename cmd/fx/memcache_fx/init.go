package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "voyago/pkg/memcache"
)

const purgeInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedTokens)

// provideRevokedTokens also drops expired entries in the background so the
// deny list stays bounded by the token TTL.
func provideRevokedTokens(lc fx.Lifecycle, log *zap.Logger) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens()
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						if n := store.Purge(); n > 0 {
							log.Debug("purged revoked tokens", zap.Int("count", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
