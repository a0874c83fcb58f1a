package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a full itinerary in one response
// @Description Runs the day-by-day loop server-side and returns the assembled list. Use the stream endpoint for progressive delivery.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/generate-itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Itinerary generated successfully")
}

// GenerateItineraryStream godoc
// @Summary Generate an itinerary day by day over SSE
// @Description Emits one text/event-stream frame per completed day; on failure after day k a single {"error": ...} frame terminates the stream.
// @Tags AI
// @Accept json
// @Produce text/event-stream
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Security BearerAuth
// @Router /ai/generate-itinerary-stream [post]
func (i *ItineraryController) GenerateItineraryStream(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	// Disable nginx buffering so days reach the client as they complete.
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	events := make(chan response_models.ItineraryEvent)
	go i.itineraryService.StreamItinerary(c.Request.Context(), req, events)

	c.Stream(func(w io.Writer) bool {
		event, ok := <-events
		if !ok {
			return false
		}
		if event.Err != nil {
			c.SSEvent("", response_models.StreamError{Error: event.Err.Error()})
			return false
		}
		c.SSEvent("", event.Day)
		return true
	})
}
