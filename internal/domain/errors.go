package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Inventory errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Grid errors
	ErrMsgTileOccupied      = "tile is occupied"
	ErrMsgOutOfBounds       = "tile is out of bounds"
	ErrMsgInsufficientSpace = "insufficient space"

	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgItemDead     = "item is dead"

	// Theme errors
	ErrMsgThemeAlreadyOwned = "theme is already owned"
	ErrMsgThemeNotOwned     = "theme is not owned"

	// Persistence errors
	ErrMsgCorruptState = "corrupt state document"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the engine.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Inventory errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Grid errors
	ErrTileOccupied      = errors.New(ErrMsgTileOccupied)
	ErrOutOfBounds       = errors.New(ErrMsgOutOfBounds)
	ErrInsufficientSpace = errors.New(ErrMsgInsufficientSpace)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrItemDead     = errors.New(ErrMsgItemDead)

	// Theme errors
	ErrThemeAlreadyOwned = errors.New(ErrMsgThemeAlreadyOwned)
	ErrThemeNotOwned     = errors.New(ErrMsgThemeNotOwned)

	// Persistence errors. ErrCorruptState never escapes the state package;
	// loading falls back to defaults instead.
	ErrCorruptState = errors.New(ErrMsgCorruptState)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
