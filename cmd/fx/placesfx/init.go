package placesfx

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/fx"
	"googlemaps.github.io/maps"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideMapsClient, providePlacesService)

func provideMapsClient() (*maps.Client, error) {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}

func providePlacesService(client *maps.Client) services.PlacesServiceInterface {
	city := utils.GetEnvWithDefault("TARGET_CITY", "Athens, Greece")
	return services.NewPlacesService(client, os.Getenv("GOOGLE_MAPS_API_KEY"), city)
}
