package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type DayGeneratorInterface interface {
	// GenerateDay produces one day's itinerary. previousDaysContext is the
	// consolidated place-name summary of earlier days, passed verbatim into
	// the prompt so the model avoids repeats.
	GenerateDay(ctx context.Context, trip request_models.GenerateItineraryRequest, dayNumber, totalDays int, previousDaysContext string) (*response_models.DailyItinerary, error)
}

type DayGenerator struct {
	generationClient utils.GenerationClientInterface
	placesService    PlacesServiceInterface
}

func NewDayGenerator(
	generationClient utils.GenerationClientInterface,
	placesService PlacesServiceInterface,
) DayGeneratorInterface {
	return &DayGenerator{
		generationClient: generationClient,
		placesService:    placesService,
	}
}

// generatedItem is the raw per-item shape we ask the model for. Coordinates
// are deliberately absent: they come from the place lookup, never the model.
type generatedItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SearchQuery string `json:"search_query"`
}

type generatedDay struct {
	Day   int             `json:"day"`
	Items []generatedItem `json:"items"`
}

func (d *DayGenerator) GenerateDay(ctx context.Context, trip request_models.GenerateItineraryRequest, dayNumber, totalDays int, previousDaysContext string) (*response_models.DailyItinerary, error) {
	minItems, maxItems := itemCountRange(trip.TravelStyle)

	prompt := buildDayPrompt(trip, dayNumber, totalDays, minItems, maxItems, previousDaysContext)

	rawJSON, err := d.generationClient.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("day %d generation call failed: %w", dayNumber, err)
	}

	var day generatedDay
	if err := json.Unmarshal([]byte(rawJSON), &day); err != nil {
		return nil, fmt.Errorf("%w: day %d response is not the expected shape: %v", utils.ErrMalformedGeneration, dayNumber, err)
	}
	if len(day.Items) == 0 {
		return nil, fmt.Errorf("%w: day %d has no items", utils.ErrMalformedGeneration, dayNumber)
	}
	if len(day.Items) > maxItems {
		day.Items = day.Items[:maxItems]
	}

	items := make([]response_models.ItineraryItem, 0, len(day.Items))
	for _, candidate := range day.Items {
		item, err := d.resolveItem(ctx, trip, candidate)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", dayNumber, err)
		}
		if item == nil {
			log.Printf("Day %d: no place found for %q, dropping item", dayNumber, candidate.Name)
			continue
		}
		items = append(items, *item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: day %d has no resolvable items", utils.ErrMalformedGeneration, dayNumber)
	}

	return &response_models.DailyItinerary{
		Day:   dayNumber,
		Items: items,
	}, nil
}

// resolveItem looks the candidate up through the place enrichment lookup and
// builds the final item from the first match. Returns (nil, nil) when the
// lookup succeeds but finds nothing; a lookup failure propagates.
func (d *DayGenerator) resolveItem(ctx context.Context, trip request_models.GenerateItineraryRequest, candidate generatedItem) (*response_models.ItineraryItem, error) {
	query := candidate.SearchQuery
	if query == "" {
		query = candidate.Name
	}

	requireFood := candidate.Category == "culinary"
	places, err := d.placesService.FindPlaceDetails(ctx, query, requireFood)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 && requireFood {
		// Retry without the food filter rather than losing the meal slot.
		places, err = d.placesService.FindPlaceDetails(ctx, query, false)
		if err != nil {
			return nil, err
		}
	}
	if len(places) == 0 {
		return nil, nil
	}

	place := places[0]
	enrichment := place.Enrichment

	item := &response_models.ItineraryItem{
		Name:        candidate.Name,
		Description: candidate.Description,
		Category:    candidate.Category,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Enrichment:  &enrichment,
	}

	if trip.AccessibilityNeeds {
		item.AccessibilityScore = ComputeAccessibilityScore(enrichment.Accessibility)
	}

	return item, nil
}

func itemCountRange(travelStyle string) (int, int) {
	if travelStyle == "packed" {
		return 5, 7
	}
	return 3, 5
}

func buildDayPrompt(trip request_models.GenerateItineraryRequest, dayNumber, totalDays, minItems, maxItems int, previousDaysContext string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a personal travel assistant creating itineraries for trips to Athens, Greece.\n")
	fmt.Fprintf(&prompt, "Plan day %d of a %d-day trip.\n\n", dayNumber, totalDays)

	prompt.WriteString("CRITICAL REQUIREMENTS:\n")
	fmt.Fprintf(&prompt, "1. Suggest between %d and %d items for this single day.\n", minItems, maxItems)
	prompt.WriteString("2. Only suggest real, well-known places in Athens that can be found on a map. Coordinates are resolved by the server, so every name must be searchable.\n")
	prompt.WriteString("3. Each item's category must be one of: culinary, cultural, scenic, activity.\n")
	prompt.WriteString("4. Include at least one culinary item (restaurant, cafe or taverna) matching the budget.\n")

	switch trip.Budget {
	case "low":
		prompt.WriteString("5. Budget is low: prefer free attractions, street food and cheap eats.\n")
	case "high":
		prompt.WriteString("5. Budget is high: prefer premium experiences and fine dining.\n")
	default:
		prompt.WriteString("5. Budget is medium: prefer mid-range dining and paid attractions.\n")
	}

	if trip.AccessibilityNeeds {
		prompt.WriteString("6. The traveler needs wheelchair access: prioritize venues known for accessible entrances when available.\n")
	}

	if previousDaysContext != "" {
		prompt.WriteString("\nPlaces already planned on earlier days (do NOT repeat any of them):\n")
		prompt.WriteString(previousDaysContext)
		prompt.WriteString("\n")
	}

	prompt.WriteString("\nTrip Details:\n")
	fmt.Fprintf(&prompt, "- Dates: %s\n", trip.TripDates)
	fmt.Fprintf(&prompt, "- Interests: %s\n", trip.Interests)
	fmt.Fprintf(&prompt, "- Travel Style: %s\n", trip.TravelStyle)
	fmt.Fprintf(&prompt, "- Companions: %s\n", trip.CompanionType)

	prompt.WriteString("\nReturn JSON only, in this exact format:\n")
	fmt.Fprintf(&prompt, `{
  "day": %d,
  "items": [
    {
      "name": "Acropolis Museum",
      "description": "A short description of the visit.",
      "category": "cultural",
      "search_query": "Acropolis Museum"
    }
  ]
}`, dayNumber)
	prompt.WriteString("\nNo comments, no markdown.\n")

	return prompt.String()
}
