package handler

import (
	"net/http"

	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/streak"
)

// ReviewRequest represents one review outcome delivered by the host app
type ReviewRequest struct {
	Outcome string `json:"outcome" validate:"required,outcome"`
}

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	streakSvc streak.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(streakSvc streak.Service) *ReviewHandler {
	return &ReviewHandler{
		streakSvc: streakSvc,
	}
}

// HandleReview processes one review outcome
// @Summary Process a review outcome
// @Description Updates the streak and grants rewards for one reviewed card
// @Tags review
// @Accept json
// @Produce json
// @Param request body ReviewRequest true "Review outcome"
// @Success 200 {object} domain.ReviewResult "Review processed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /review [post]
func (h *ReviewHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ReviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Review"); err != nil {
		return
	}

	result, err := h.streakSvc.HandleReview(r.Context(), domain.Outcome(req.Outcome))
	if err != nil {
		log.Error("Review processing failed", "error", err, "outcome", req.Outcome)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
