package response_models

// Progress tells the stream consumer how far along the run is. Informational
// only; ordering is guaranteed by the emission order itself.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// AccessibilityAttributes is the raw bundle returned by the place lookup.
// Each field is independently nullable; nil means "no data", not "no".
type AccessibilityAttributes struct {
	WheelchairAccessibleEntrance *bool `json:"wheelchair_accessible_entrance"`
	WheelchairAccessibleRestroom *bool `json:"wheelchair_accessible_restroom"`
	WheelchairAccessibleParking  *bool `json:"wheelchair_accessible_parking"`
	WheelchairAccessibleSeating  *bool `json:"wheelchair_accessible_seating"`
}

type Enrichment struct {
	Rating           *float64                 `json:"rating"`
	UserRatingsTotal *int                     `json:"user_ratings_total"`
	PriceLevel       *int                     `json:"price_level"`
	PriceString      *string                  `json:"price_string"`
	WebsiteURL       *string                  `json:"website_url"`
	GoogleMapsURL    *string                  `json:"google_maps_url"`
	IsFoodPlace      bool                     `json:"is_food_place"`
	Accessibility    *AccessibilityAttributes `json:"accessibility,omitempty"`
}

type ItineraryItem struct {
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Category           string      `json:"category"` // "culinary", "cultural", "scenic", "activity"
	Latitude           float64     `json:"latitude"`
	Longitude          float64     `json:"longitude"`
	Enrichment         *Enrichment `json:"enrichment,omitempty"`
	AccessibilityScore *int        `json:"accessibility_score,omitempty"`
}

// DailyItinerary is one emitted frame of the stream. The server keeps no copy
// after emission.
type DailyItinerary struct {
	Day      int             `json:"day"`
	Items    []ItineraryItem `json:"items"`
	Progress Progress        `json:"progress"`
}

// ItineraryEvent is what the orchestrator pushes onto its output channel.
// Exactly one of Day/Err is set; an Err event is always terminal.
type ItineraryEvent struct {
	Day *DailyItinerary
	Err error
}

// StreamError is the wire shape of a terminal error frame.
type StreamError struct {
	Error string `json:"error"`
}

// PlaceResult is one candidate returned by the place enrichment lookup.
type PlaceResult struct {
	Name       string     `json:"name"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Enrichment Enrichment `json:"enrichment"`
}
