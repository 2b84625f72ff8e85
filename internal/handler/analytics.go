package handler

import (
	"net/http"

	"github.com/osse101/StudyGarden_Go/internal/analytics"
	"github.com/osse101/StudyGarden_Go/internal/logger"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsSvc analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// Summary returns review-log totals
// @Summary Get review totals
// @Description Returns totals over the local review log
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary "Review totals"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	sum, err := h.analyticsSvc.Summary(r.Context())
	if err != nil {
		log.Error("Analytics summary failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}

	respondJSON(w, http.StatusOK, sum)
}
