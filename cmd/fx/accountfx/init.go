package accountfx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountStore, provideAccountService)

func provideAccountStore() mem.AccountStore {
	return mem.NewAccounts()
}

func provideAccountService(accounts mem.AccountStore) services.AccountServiceInterface {
	return services.NewAccountService(accounts)
}
