package inventory

import (
	"fmt"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

// Credit adds amount of kind to the inventory. Amount must be at least 1 and
// the kind must be known; anything else is rejected before any mutation.
func Credit(inv domain.Inventory, kind domain.ResourceKind, amount int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, kind)
	}
	if amount < 1 {
		return fmt.Errorf("%w: credit amount %d", domain.ErrInvalidInput, amount)
	}
	inv[kind] += amount
	return nil
}

// Debit removes amount of kind from the inventory. Either the full amount is
// removed or nothing changes: a balance below amount fails with
// ErrInsufficientFunds and leaves the inventory untouched.
func Debit(inv domain.Inventory, kind domain.ResourceKind, amount int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, kind)
	}
	if amount < 1 {
		return fmt.Errorf("%w: debit amount %d", domain.ErrInvalidInput, amount)
	}
	if inv[kind] < amount {
		return fmt.Errorf("%w: need %d %s, have %d", domain.ErrInsufficientFunds, amount, kind, inv[kind])
	}
	inv[kind] -= amount
	return nil
}

// Balance returns the current count for kind. Unknown kinds read as zero.
func Balance(inv domain.Inventory, kind domain.ResourceKind) int {
	return inv[kind]
}
