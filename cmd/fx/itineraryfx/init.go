package itineraryfx

import (
	"time"

	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideDayGenerator, provideItineraryService)

func provideDayGenerator(
	generationClient utils.GenerationClientInterface,
	placesService services.PlacesServiceInterface,
) services.DayGeneratorInterface {
	return services.NewDayGenerator(generationClient, placesService)
}

func provideItineraryService(dayGenerator services.DayGeneratorInterface) services.ItineraryServiceInterface {
	// A hung generation call would otherwise stall the stream forever.
	dayTimeout := utils.GetEnvDuration("ITINERARY_DAY_TIMEOUT", 90*time.Second)
	return services.NewItineraryService(dayGenerator, dayTimeout)
}
