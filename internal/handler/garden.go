package handler

import (
	"net/http"

	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/garden"
	"github.com/osse101/StudyGarden_Go/internal/logger"
)

// PlaceItemRequest represents a request to place an item on the grid
type PlaceItemRequest struct {
	Kind string `json:"kind" validate:"required,itemkind"`
	Col  int    `json:"col" validate:"gte=0"`
	Row  int    `json:"row" validate:"gte=0"`
}

// ItemRequest addresses one placed item by id
type ItemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

// MoveItemRequest represents a request to relocate a placed item
type MoveItemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
	Col    int    `json:"col" validate:"gte=0"`
	Row    int    `json:"row" validate:"gte=0"`
}

// TileRequest addresses one grid tile
type TileRequest struct {
	Col int `json:"col" validate:"gte=0"`
	Row int `json:"row" validate:"gte=0"`
}

// PlaceItemResponse returns the id of a newly placed item
type PlaceItemResponse struct {
	ItemID string `json:"item_id"`
}

// GardenHandler handles garden grid HTTP requests
type GardenHandler struct {
	gardenSvc garden.Service
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(gardenSvc garden.Service) *GardenHandler {
	return &GardenHandler{
		gardenSvc: gardenSvc,
	}
}

// Snapshot returns the full garden view
// @Summary Get the garden snapshot
// @Description Returns the grid, inventory, streak and themes with derived item health
// @Tags garden
// @Produce json
// @Success 200 {object} domain.Snapshot "Current garden state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /garden [get]
func (h *GardenHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	snap, err := h.gardenSvc.Snapshot(r.Context())
	if err != nil {
		log.Error("Snapshot failed", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, snap)
}

// Place puts a new item on the grid
// @Summary Place an item
// @Description Places a plant, tree or seed, debiting one matching resource
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlaceItemRequest true "Placement request"
// @Success 200 {object} PlaceItemResponse "Item placed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Unknown kind"
// @Failure 409 {object} ErrorResponse "Tile occupied or footprint does not fit"
// @Router /garden/place [post]
func (h *GardenHandler) Place(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlaceItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place item"); err != nil {
		return
	}

	id, err := h.gardenSvc.Place(r.Context(), domain.ItemKind(req.Kind), domain.Tile{Col: req.Col, Row: req.Row})
	if err != nil {
		log.Error("Place failed", "error", err, "kind", req.Kind)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, PlaceItemResponse{ItemID: id})
}

// Water waters one item
// @Summary Water an item
// @Description Waters a living item, debiting one water
// @Tags garden
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item to water"
// @Success 200 {object} SuccessResponse "Item watered"
// @Failure 400 {object} ErrorResponse "Invalid request or dead item"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /garden/water [post]
func (h *GardenHandler) Water(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Water item"); err != nil {
		return
	}

	if err := h.gardenSvc.Water(r.Context(), req.ItemID); err != nil {
		log.Error("Water failed", "error", err, "itemID", req.ItemID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item watered"})
}

// Remove deletes one item from the grid
// @Summary Remove an item
// @Description Removes an item, freeing its tiles. No resource is refunded.
// @Tags garden
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item to remove"
// @Success 200 {object} SuccessResponse "Item removed"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /garden/remove [post]
func (h *GardenHandler) Remove(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
		return
	}

	if err := h.gardenSvc.Remove(r.Context(), req.ItemID); err != nil {
		log.Error("Remove failed", "error", err, "itemID", req.ItemID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item removed"})
}

// Move relocates one item
// @Summary Move an item
// @Description Relocates an item to a free footprint
// @Tags garden
// @Accept json
// @Produce json
// @Param request body MoveItemRequest true "Move request"
// @Success 200 {object} SuccessResponse "Item moved"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Destination occupied"
// @Router /garden/move [post]
func (h *GardenHandler) Move(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req MoveItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move item"); err != nil {
		return
	}

	if err := h.gardenSvc.Move(r.Context(), req.ItemID, domain.Tile{Col: req.Col, Row: req.Row}); err != nil {
		log.Error("Move failed", "error", err, "itemID", req.ItemID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item moved"})
}

// Sunlight applies one sunlight to the whole garden
// @Summary Apply sunlight
// @Description Sets every living item blooming for a day, debiting one sunlight
// @Tags garden
// @Produce json
// @Success 200 {object} SuccessResponse "Sunlight applied"
// @Failure 400 {object} ErrorResponse "No sunlight in inventory"
// @Failure 404 {object} ErrorResponse "No living items"
// @Router /garden/sunlight [post]
func (h *GardenHandler) Sunlight(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := h.gardenSvc.ApplySunlight(r.Context()); err != nil {
		log.Error("Sunlight failed", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Sunlight applied"})
}

// PlacePath lays a path tile
// @Summary Place a path tile
// @Description Lays a decorative path tile, debiting one path resource
// @Tags garden
// @Accept json
// @Produce json
// @Param request body TileRequest true "Tile"
// @Success 200 {object} SuccessResponse "Path placed"
// @Failure 409 {object} ErrorResponse "Path already present"
// @Router /garden/path [post]
func (h *GardenHandler) PlacePath(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place path"); err != nil {
		return
	}

	if err := h.gardenSvc.PlacePath(r.Context(), domain.Tile{Col: req.Col, Row: req.Row}); err != nil {
		log.Error("Place path failed", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Path placed"})
}

// RemovePath lifts a path tile
// @Summary Remove a path tile
// @Description Lifts a path tile and refunds the path resource
// @Tags garden
// @Accept json
// @Produce json
// @Param request body TileRequest true "Tile"
// @Success 200 {object} SuccessResponse "Path removed"
// @Failure 404 {object} ErrorResponse "No path at that tile"
// @Router /garden/path [delete]
func (h *GardenHandler) RemovePath(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove path"); err != nil {
		return
	}

	if err := h.gardenSvc.RemovePath(r.Context(), domain.Tile{Col: req.Col, Row: req.Row}); err != nil {
		log.Error("Remove path failed", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Path removed"})
}
