package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		preferenceService: preferenceService,
	}
}

// SummarizePreferences godoc
// @Summary Summarize onboarding preferences
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.SummarizePreferencesRequest true "Onboarding answers"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/summarize-preferences [post]
func (p *PreferenceController) SummarizePreferences(c *gin.Context) {
	var req request_models.SummarizePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary, err := p.preferenceService.SummarizePreferences(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Preferences summarized successfully")
}
