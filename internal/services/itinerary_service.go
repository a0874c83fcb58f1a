package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type ItineraryServiceInterface interface {
	// GenerateItinerary runs the full day loop and returns the assembled
	// list in one shot.
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) ([]response_models.DailyItinerary, error)

	// StreamItinerary runs the same loop but pushes each completed day onto
	// events as soon as it is ready. The channel is always closed before
	// returning. A failure for day k produces exactly one terminal Err event;
	// cancellation of ctx stops the loop silently.
	StreamItinerary(ctx context.Context, req request_models.GenerateItineraryRequest, events chan<- response_models.ItineraryEvent)
}

type ItineraryService struct {
	dayGenerator DayGeneratorInterface
	dayTimeout   time.Duration
}

func NewItineraryService(dayGenerator DayGeneratorInterface, dayTimeout time.Duration) ItineraryServiceInterface {
	return &ItineraryService{
		dayGenerator: dayGenerator,
		dayTimeout:   dayTimeout,
	}
}

var (
	validBudgets    = map[string]bool{"low": true, "medium": true, "high": true}
	validStyles     = map[string]bool{"relaxed": true, "packed": true}
	validCompanions = map[string]bool{"solo": true, "couple": true, "family": true, "friends": true}
)

func validateTripRequest(req request_models.GenerateItineraryRequest) error {
	if req.NumberOfDays < 1 {
		return fmt.Errorf("%w: number_of_days must be at least 1", utils.ErrInvalidInput)
	}
	if !validBudgets[req.Budget] {
		return fmt.Errorf("%w: budget must be low, medium or high", utils.ErrInvalidInput)
	}
	if !validStyles[req.TravelStyle] {
		return fmt.Errorf("%w: travel_style must be relaxed or packed", utils.ErrInvalidInput)
	}
	if !validCompanions[req.CompanionType] {
		return fmt.Errorf("%w: companion_type must be solo, couple, family or friends", utils.ErrInvalidInput)
	}
	return nil
}

func (s *ItineraryService) StreamItinerary(ctx context.Context, req request_models.GenerateItineraryRequest, events chan<- response_models.ItineraryEvent) {
	defer close(events)

	if err := validateTripRequest(req); err != nil {
		s.emit(ctx, events, response_models.ItineraryEvent{Err: err})
		return
	}

	var consolidatedContext strings.Builder

	for dayNum := 1; dayNum <= req.NumberOfDays; dayNum++ {
		if ctx.Err() != nil {
			// Client went away; nobody is left to receive an error frame.
			log.Printf("Itinerary stream cancelled before day %d", dayNum)
			return
		}

		day, err := s.generateDay(ctx, req, dayNum, consolidatedContext.String())
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("Itinerary stream cancelled during day %d", dayNum)
				return
			}
			s.emit(ctx, events, response_models.ItineraryEvent{
				Err: fmt.Errorf("failed to generate day %d: %w", dayNum, err),
			})
			return
		}

		day.Progress = response_models.Progress{Current: dayNum, Total: req.NumberOfDays}
		if !s.emit(ctx, events, response_models.ItineraryEvent{Day: day}) {
			return
		}

		appendDayContext(&consolidatedContext, dayNum, day.Items)
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) ([]response_models.DailyItinerary, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	var consolidatedContext strings.Builder
	days := make([]response_models.DailyItinerary, 0, req.NumberOfDays)

	for dayNum := 1; dayNum <= req.NumberOfDays; dayNum++ {
		day, err := s.generateDay(ctx, req, dayNum, consolidatedContext.String())
		if err != nil {
			return nil, fmt.Errorf("failed to generate day %d: %w", dayNum, err)
		}

		day.Progress = response_models.Progress{Current: dayNum, Total: req.NumberOfDays}
		days = append(days, *day)
		appendDayContext(&consolidatedContext, dayNum, day.Items)
	}

	return days, nil
}

func (s *ItineraryService) generateDay(ctx context.Context, req request_models.GenerateItineraryRequest, dayNum int, consolidatedContext string) (*response_models.DailyItinerary, error) {
	dayCtx := ctx
	if s.dayTimeout > 0 {
		var cancel context.CancelFunc
		dayCtx, cancel = context.WithTimeout(ctx, s.dayTimeout)
		defer cancel()
	}
	return s.dayGenerator.GenerateDay(dayCtx, req, dayNum, req.NumberOfDays, consolidatedContext)
}

// emit delivers the event unless the consumer is gone. Returns false when the
// context was cancelled before the event could be handed off.
func (s *ItineraryService) emit(ctx context.Context, events chan<- response_models.ItineraryEvent, event response_models.ItineraryEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// appendDayContext extends the consolidated cross-day context with one line
// of place names. Names only: enrichment and descriptions would bloat later
// prompts and leak stale pricing into them.
func appendDayContext(b *strings.Builder, dayNum int, items []response_models.ItineraryItem) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	fmt.Fprintf(b, "Day %d: %s. ", dayNum, strings.Join(names, ", "))
}
