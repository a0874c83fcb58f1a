package request_models

// SummarizePreferencesRequest is the structured onboarding answer set that the
// preference summarizer condenses into a single interests string.
type SummarizePreferencesRequest struct {
	TripDates          string   `json:"trip_dates"`
	NumberOfDays       int      `json:"number_of_days"`
	Budget             string   `json:"budget"`
	Interests          []string `json:"interests"` // e.g. ["history", "food", "nightlife"]
	TravelStyle        string   `json:"travel_style"`
	CompanionType      string   `json:"companion_type"`
	AccessibilityNeeds bool     `json:"accessibility_needs,omitempty"`
}
