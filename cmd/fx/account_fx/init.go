package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager, revoked mem.RevokedTokenStore, log *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, revoked, log)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
