package request_models

// GenerateItineraryRequest carries the trip parameters for both the one-shot
// and the streaming itinerary endpoints. Interests is the consolidated prose
// signal (usually the output of the preference summarizer).
type GenerateItineraryRequest struct {
	TripDates          string `json:"trip_dates"`
	NumberOfDays       int    `json:"number_of_days" binding:"required,min=1"`
	Budget             string `json:"budget" binding:"required,oneof=low medium high"`
	Interests          string `json:"interests"`
	TravelStyle        string `json:"travel_style" binding:"required,oneof=relaxed packed"`
	CompanionType      string `json:"companion_type" binding:"required,oneof=solo couple family friends"`
	AccessibilityNeeds bool   `json:"accessibility_needs,omitempty"`
}
