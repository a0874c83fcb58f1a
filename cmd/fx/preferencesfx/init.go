package preferencesfx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	providePreferenceService)

func providePreferenceService(generationClient utils.GenerationClientInterface) services.PreferenceServiceInterface {
	return services.NewPreferenceService(generationClient)
}
