package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type PreferenceServiceInterface interface {
	// SummarizePreferences condenses structured onboarding answers into the
	// prose interests signal used for itinerary generation. One-shot call,
	// no streaming, no enrichment.
	SummarizePreferences(ctx context.Context, req request_models.SummarizePreferencesRequest) (*response_models.PreferenceSummary, error)
}

type PreferenceService struct {
	generationClient utils.GenerationClientInterface
}

func NewPreferenceService(generationClient utils.GenerationClientInterface) PreferenceServiceInterface {
	return &PreferenceService{
		generationClient: generationClient,
	}
}

func (p *PreferenceService) SummarizePreferences(ctx context.Context, req request_models.SummarizePreferencesRequest) (*response_models.PreferenceSummary, error) {
	if req.NumberOfDays < 1 {
		return nil, fmt.Errorf("%w: number_of_days must be at least 1", utils.ErrInvalidInput)
	}
	if len(req.Interests) == 0 {
		return nil, fmt.Errorf("%w: at least one interest is required", utils.ErrInvalidInput)
	}

	rawJSON, err := p.generationClient.GenerateJSON(ctx, buildSummaryPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("preference summarization call failed: %w", err)
	}

	var summary response_models.PreferenceSummary
	if err := json.Unmarshal([]byte(rawJSON), &summary); err != nil {
		return nil, fmt.Errorf("%w: summary response is not the expected shape: %v", utils.ErrMalformedGeneration, err)
	}
	if strings.TrimSpace(summary.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", utils.ErrMalformedGeneration)
	}

	summary.AccessibilityNeeds = summary.AccessibilityNeeds || req.AccessibilityNeeds
	return &summary, nil
}

func buildSummaryPrompt(req request_models.SummarizePreferencesRequest) string {
	var prompt strings.Builder

	prompt.WriteString("You are an expert trip planner. Summarize the following preferences into a concise, informative summary that will drive a personalized itinerary for Athens, Greece.\n")
	prompt.WriteString("Capture the duration, budget level, key interests, travel pace and companions.\n\n")

	fmt.Fprintf(&prompt, "Trip Dates: %s\n", req.TripDates)
	fmt.Fprintf(&prompt, "Number of Days: %d\n", req.NumberOfDays)
	fmt.Fprintf(&prompt, "Budget: %s\n", req.Budget)
	fmt.Fprintf(&prompt, "Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&prompt, "Travel Style: %s\n", req.TravelStyle)
	fmt.Fprintf(&prompt, "Companion Type: %s\n", req.CompanionType)
	fmt.Fprintf(&prompt, "Accessibility Needs: %t\n", req.AccessibilityNeeds)

	if req.AccessibilityNeeds {
		prompt.WriteString("\nEmphasize that the traveler requires wheelchair-accessible entrances, restrooms, parking and seating where available.\n")
	}

	prompt.WriteString("\nReturn JSON only, in this exact format:\n")
	prompt.WriteString(`{"summary": "...", "accessibility_needs": false}`)
	prompt.WriteString("\nNo comments, no markdown.\n")

	return prompt.String()
}
