package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"googlemaps.github.io/maps"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

const defaultDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

// foodPlaceTypes are the Places API types that classify a result as a food
// place for the requireFoodPlace filter and the is_food_place flag.
var foodPlaceTypes = map[string]bool{
	"restaurant":    true,
	"cafe":          true,
	"bar":           true,
	"bakery":        true,
	"meal_takeaway": true,
	"meal_delivery": true,
}

type PlacesServiceInterface interface {
	// FindPlaceDetails resolves a free-text place query against the target
	// city and returns coordinates plus enrichment for each candidate.
	FindPlaceDetails(ctx context.Context, query string, requireFoodPlace bool) ([]response_models.PlaceResult, error)
}

// PlacesService wraps the Google Maps Places API. Text search goes through
// the official client; the per-result details fetch is a direct HTTP call
// because the client does not expose wheelchair_accessible_entrance.
type PlacesService struct {
	mapsClient *maps.Client
	httpClient *http.Client
	apiKey     string
	detailsURL string
	city       string
}

func NewPlacesService(mapsClient *maps.Client, apiKey, city string) PlacesServiceInterface {
	return &PlacesService{
		mapsClient: mapsClient,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		detailsURL: defaultDetailsURL,
		city:       city,
	}
}

func (s *PlacesService) FindPlaceDetails(ctx context.Context, query string, requireFoodPlace bool) ([]response_models.PlaceResult, error) {
	resp, err := s.mapsClient.TextSearch(ctx, &maps.TextSearchRequest{
		Query: fmt.Sprintf("%s, %s", query, s.city),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: text search %q: %v", utils.ErrPlaceLookupFailed, query, err)
	}

	results := make([]response_models.PlaceResult, 0, len(resp.Results))
	for _, place := range resp.Results {
		enrichment := firstPassEnrichment(place)

		if place.PlaceID != "" {
			details, err := s.fetchPlaceDetails(ctx, place.PlaceID)
			if err != nil {
				// Partial enrichment is acceptable; keep the first-pass values.
				log.Printf("Place details fetch failed for %q: %v", place.Name, err)
			} else {
				mergeDetails(&enrichment, details)
			}
		}

		results = append(results, response_models.PlaceResult{
			Name:       place.Name,
			Latitude:   place.Geometry.Location.Lat,
			Longitude:  place.Geometry.Location.Lng,
			Enrichment: enrichment,
		})
	}

	if requireFoodPlace {
		filtered := results[:0]
		for _, r := range results {
			if r.Enrichment.IsFoodPlace {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	return results, nil
}

// firstPassEnrichment builds enrichment from text-search fields alone. The
// search payload cannot distinguish absent numeric fields from zero, so zero
// values are treated as no data; the details fetch usually overrides them.
func firstPassEnrichment(place maps.PlacesSearchResult) response_models.Enrichment {
	enrichment := response_models.Enrichment{
		IsFoodPlace: isFoodPlace(place.Types),
	}
	if place.Rating > 0 {
		// The search payload carries float32 ratings; a direct widening turns
		// 4.7 into 4.699999809265137. Go through the shortest decimal form.
		rating, _ := strconv.ParseFloat(strconv.FormatFloat(float64(place.Rating), 'f', -1, 32), 64)
		enrichment.Rating = &rating
	}
	if place.UserRatingsTotal > 0 {
		total := place.UserRatingsTotal
		enrichment.UserRatingsTotal = &total
	}
	if place.PriceLevel > 0 {
		level := place.PriceLevel
		enrichment.PriceLevel = &level
		enrichment.PriceString = PriceString(&level)
	}
	if place.PlaceID != "" {
		mapsURL := "https://www.google.com/maps/place/?q=place_id:" + place.PlaceID
		enrichment.GoogleMapsURL = &mapsURL
	}
	return enrichment
}

// placeDetailsResult is the subset of the Place Details payload we consume.
// Pointer fields keep absent-vs-zero distinguishable.
type placeDetailsResult struct {
	Rating                       *float64 `json:"rating"`
	UserRatingsTotal             *int     `json:"user_ratings_total"`
	PriceLevel                   *int     `json:"price_level"`
	Website                      *string  `json:"website"`
	URL                          *string  `json:"url"`
	Types                        []string `json:"types"`
	WheelchairAccessibleEntrance *bool    `json:"wheelchair_accessible_entrance"`
}

func (s *PlacesService) fetchPlaceDetails(ctx context.Context, placeID string) (*placeDetailsResult, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "url,website,price_level,rating,user_ratings_total,types,wheelchair_accessible_entrance")
	params.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.detailsURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place details returned status %d", resp.StatusCode)
	}

	var payload struct {
		Status string              `json:"status"`
		Result *placeDetailsResult `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("could not decode place details: %w", err)
	}
	if payload.Status != "OK" || payload.Result == nil {
		return nil, fmt.Errorf("place details returned status %q", payload.Status)
	}
	return payload.Result, nil
}

func mergeDetails(enrichment *response_models.Enrichment, details *placeDetailsResult) {
	if details.Rating != nil {
		enrichment.Rating = details.Rating
	}
	if details.UserRatingsTotal != nil {
		enrichment.UserRatingsTotal = details.UserRatingsTotal
	}
	if details.PriceLevel != nil {
		enrichment.PriceLevel = details.PriceLevel
		enrichment.PriceString = PriceString(details.PriceLevel)
	}
	if details.Website != nil {
		enrichment.WebsiteURL = details.Website
	}
	if details.URL != nil {
		enrichment.GoogleMapsURL = details.URL
	}
	if len(details.Types) > 0 {
		enrichment.IsFoodPlace = isFoodPlace(details.Types)
	}
	if details.WheelchairAccessibleEntrance != nil {
		enrichment.Accessibility = &response_models.AccessibilityAttributes{
			WheelchairAccessibleEntrance: details.WheelchairAccessibleEntrance,
		}
	}
}

func isFoodPlace(types []string) bool {
	for _, t := range types {
		if foodPlaceTypes[t] {
			return true
		}
	}
	return false
}

// PriceString maps a Places price level to the display string. The level can
// legitimately be 0 (free), which still renders as the cheapest tier.
func PriceString(level *int) *string {
	if level == nil {
		return nil
	}
	var s string
	switch {
	case *level <= 0:
		s = "€"
	case *level == 1:
		s = "€€"
	case *level == 2:
		s = "€€€"
	default:
		s = "€€€€"
	}
	return &s
}
