package handler

import (
	"net/http"

	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/shop"
)

// BuyRequest represents a request to buy one resource
type BuyRequest struct {
	Kind string `json:"kind" validate:"required,resourcekind"`
}

// ThemeRequest addresses one theme by id
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,max=50"`
}

// ShopHandler handles shop HTTP requests
type ShopHandler struct {
	shopSvc shop.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopSvc shop.Service) *ShopHandler {
	return &ShopHandler{
		shopSvc: shopSvc,
	}
}

// Buy exchanges coins for one resource
// @Summary Buy a resource
// @Description Exchanges coins for one unit of a resource at the catalog price
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyRequest true "Resource to buy"
// @Success 200 {object} SuccessResponse "Purchase complete"
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Failure 404 {object} ErrorResponse "Not for sale"
// @Router /shop/buy [post]
func (h *ShopHandler) Buy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
		return
	}

	if err := h.shopSvc.Buy(r.Context(), domain.ResourceKind(req.Kind)); err != nil {
		log.Error("Buy failed", "error", err, "kind", req.Kind)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Purchase complete"})
}

// UnlockTheme purchases a theme
// @Summary Unlock a theme
// @Description Purchases a theme for the flat theme price
// @Tags shop
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Theme to unlock"
// @Success 200 {object} SuccessResponse "Theme unlocked"
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Failure 404 {object} ErrorResponse "Unknown theme"
// @Failure 409 {object} ErrorResponse "Already owned"
// @Router /shop/theme/unlock [post]
func (h *ShopHandler) UnlockTheme(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ThemeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unlock theme"); err != nil {
		return
	}

	if err := h.shopSvc.UnlockTheme(r.Context(), req.Theme); err != nil {
		log.Error("Unlock theme failed", "error", err, "theme", req.Theme)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Theme unlocked"})
}

// ActivateTheme switches the active theme
// @Summary Activate a theme
// @Description Switches the active theme to an owned one
// @Tags shop
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Theme to activate"
// @Success 200 {object} SuccessResponse "Theme activated"
// @Failure 400 {object} ErrorResponse "Theme not owned"
// @Failure 404 {object} ErrorResponse "Unknown theme"
// @Router /shop/theme/activate [post]
func (h *ShopHandler) ActivateTheme(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ThemeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Activate theme"); err != nil {
		return
	}

	if err := h.shopSvc.ActivateTheme(r.Context(), req.Theme); err != nil {
		log.Error("Activate theme failed", "error", err, "theme", req.Theme)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Theme activated"})
}
