package response_models

type PreferenceSummary struct {
	Summary            string `json:"summary"`
	AccessibilityNeeds bool   `json:"accessibility_needs,omitempty"`
}
