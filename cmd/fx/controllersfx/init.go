package controllersfx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPreferenceController))
