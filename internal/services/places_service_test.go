package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"googlemaps.github.io/maps"

	"voyago/pkg/utils"
)

const textSearchBody = `{
	"status": "OK",
	"results": [
		{
			"name": "Acropolis Museum",
			"place_id": "pid-museum",
			"geometry": {"location": {"lat": 37.9685, "lng": 23.7281}},
			"rating": 4.7,
			"user_ratings_total": 50000,
			"price_level": 2,
			"types": ["museum", "tourist_attraction"]
		},
		{
			"name": "To Kati Allo",
			"place_id": "pid-taverna",
			"geometry": {"location": {"lat": 37.9667, "lng": 23.7286}},
			"rating": 4.5,
			"types": ["restaurant", "food"]
		}
	]
}`

func newTestPlacesService(t *testing.T, mux *http.ServeMux) *PlacesService {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := maps.NewClient(maps.WithAPIKey("test-key"), maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("maps.NewClient: %v", err)
	}

	return &PlacesService{
		mapsClient: client,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		apiKey:     "test-key",
		detailsURL: srv.URL + "/maps/api/place/details/json",
		city:       "Athens, Greece",
	}
}

func TestFindPlaceDetailsMergesDetails(t *testing.T) {
	var searchQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/place/textsearch/json", func(w http.ResponseWriter, r *http.Request) {
		searchQuery = r.URL.Query().Get("query")
		fmt.Fprint(w, textSearchBody)
	})
	mux.HandleFunc("/maps/api/place/details/json", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("place_id") != "pid-museum" {
			fmt.Fprint(w, `{"status": "NOT_FOUND"}`)
			return
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"result": {
				"rating": 4.8,
				"user_ratings_total": 51234,
				"price_level": 1,
				"website": "https://www.theacropolismuseum.gr",
				"url": "https://maps.google.com/?cid=42",
				"types": ["museum"],
				"wheelchair_accessible_entrance": true
			}
		}`)
	})

	svc := newTestPlacesService(t, mux)

	results, err := svc.FindPlaceDetails(context.Background(), "Acropolis Museum", false)
	if err != nil {
		t.Fatalf("FindPlaceDetails: %v", err)
	}
	if searchQuery != "Acropolis Museum, Athens, Greece" {
		t.Fatalf("search query should be scoped to the city, got %q", searchQuery)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	museum := results[0]
	if museum.Name != "Acropolis Museum" || museum.Latitude != 37.9685 || museum.Longitude != 23.7281 {
		t.Fatalf("unexpected place identity: %+v", museum)
	}

	e := museum.Enrichment
	if e.Rating == nil || *e.Rating != 4.8 {
		t.Fatalf("details rating should override the search rating, got %v", e.Rating)
	}
	if e.UserRatingsTotal == nil || *e.UserRatingsTotal != 51234 {
		t.Fatalf("unexpected ratings total: %v", e.UserRatingsTotal)
	}
	if e.PriceLevel == nil || *e.PriceLevel != 1 {
		t.Fatalf("unexpected price level: %v", e.PriceLevel)
	}
	if e.PriceString == nil || *e.PriceString != "€€" {
		t.Fatalf("unexpected price string: %v", e.PriceString)
	}
	if e.WebsiteURL == nil || *e.WebsiteURL != "https://www.theacropolismuseum.gr" {
		t.Fatalf("unexpected website: %v", e.WebsiteURL)
	}
	if e.GoogleMapsURL == nil || *e.GoogleMapsURL != "https://maps.google.com/?cid=42" {
		t.Fatalf("details maps URL should win, got %v", e.GoogleMapsURL)
	}
	if e.IsFoodPlace {
		t.Fatal("a museum is not a food place")
	}
	if e.Accessibility == nil || e.Accessibility.WheelchairAccessibleEntrance == nil || !*e.Accessibility.WheelchairAccessibleEntrance {
		t.Fatalf("accessibility entrance should carry through: %+v", e.Accessibility)
	}
}

func TestFindPlaceDetailsKeepsFirstPassOnDetailsFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/place/textsearch/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, textSearchBody)
	})
	mux.HandleFunc("/maps/api/place/details/json", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend hiccup", http.StatusInternalServerError)
	})

	svc := newTestPlacesService(t, mux)

	results, err := svc.FindPlaceDetails(context.Background(), "Acropolis Museum", false)
	if err != nil {
		t.Fatalf("a details failure must not fail the lookup: %v", err)
	}

	e := results[0].Enrichment
	if e.Rating == nil || *e.Rating != 4.7 {
		t.Fatalf("first-pass rating should survive, got %v", e.Rating)
	}
	if e.PriceString == nil || *e.PriceString != "€€€" {
		t.Fatalf("first-pass price level 2 should map to €€€, got %v", e.PriceString)
	}
	if e.GoogleMapsURL == nil || *e.GoogleMapsURL != "https://www.google.com/maps/place/?q=place_id:pid-museum" {
		t.Fatalf("maps URL should be derived from the place id, got %v", e.GoogleMapsURL)
	}
	if e.Accessibility != nil {
		t.Fatal("no accessibility data should be invented")
	}
	if e.WebsiteURL != nil {
		t.Fatal("no website should be invented")
	}
}

func TestFindPlaceDetailsFoodFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/place/textsearch/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, textSearchBody)
	})
	mux.HandleFunc("/maps/api/place/details/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "NOT_FOUND"}`)
	})

	svc := newTestPlacesService(t, mux)

	results, err := svc.FindPlaceDetails(context.Background(), "lunch", true)
	if err != nil {
		t.Fatalf("FindPlaceDetails: %v", err)
	}
	if len(results) != 1 || results[0].Name != "To Kati Allo" {
		t.Fatalf("expected only the taverna to pass the food filter, got %+v", results)
	}
	if !results[0].Enrichment.IsFoodPlace {
		t.Fatal("the taverna should be flagged as a food place")
	}
}

func TestFindPlaceDetailsSearchFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/place/textsearch/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "key expired", "results": []}`)
	})

	svc := newTestPlacesService(t, mux)

	_, err := svc.FindPlaceDetails(context.Background(), "anything", false)
	if !errors.Is(err, utils.ErrPlaceLookupFailed) {
		t.Fatalf("expected ErrPlaceLookupFailed, got %v", err)
	}
}

func TestFirstPassEnrichmentRatingPrecision(t *testing.T) {
	// Search results carry float32 ratings; the enrichment must not leak
	// widening artifacts like 4.699999809265137.
	for _, want := range []float64{4.7, 4.3, 3.9, 4.5, 5.0} {
		result := maps.PlacesSearchResult{Rating: float32(want)}
		e := firstPassEnrichment(result)
		if e.Rating == nil || *e.Rating != want {
			t.Fatalf("rating %v came through as %v", want, e.Rating)
		}
	}

	if e := firstPassEnrichment(maps.PlacesSearchResult{}); e.Rating != nil {
		t.Fatalf("zero rating should be treated as absent, got %v", *e.Rating)
	}
}

func TestPriceString(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		level *int
		want  string
	}{
		{intPtr(0), "€"},
		{intPtr(1), "€€"},
		{intPtr(2), "€€€"},
		{intPtr(3), "€€€€"},
		{intPtr(4), "€€€€"},
	}
	for _, tt := range tests {
		got := PriceString(tt.level)
		if got == nil || *got != tt.want {
			t.Fatalf("PriceString(%d) = %v, want %q", *tt.level, got, tt.want)
		}
	}

	if got := PriceString(nil); got != nil {
		t.Fatalf("PriceString(nil) = %q, want nil", *got)
	}
}

func TestIsFoodPlace(t *testing.T) {
	tests := []struct {
		types []string
		want  bool
	}{
		{[]string{"restaurant", "point_of_interest"}, true},
		{[]string{"cafe"}, true},
		{[]string{"bakery"}, true},
		{[]string{"meal_takeaway"}, true},
		{[]string{"museum", "tourist_attraction"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := isFoodPlace(tt.types); got != tt.want {
			t.Fatalf("isFoodPlace(%v) = %t, want %t", tt.types, got, tt.want)
		}
	}
}
