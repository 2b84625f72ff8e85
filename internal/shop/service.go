package shop

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/StudyGarden_Go/internal/clock"
	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/inventory"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/metrics"
	"github.com/osse101/StudyGarden_Go/internal/state"
)

// Service defines the shop business logic: converting coins into garden
// resources and theme unlocks at server-side prices.
type Service interface {
	// Buy exchanges coins for one unit of the given resource.
	Buy(ctx context.Context, kind domain.ResourceKind) error
	// UnlockTheme purchases a theme, adding it to the owned set.
	UnlockTheme(ctx context.Context, theme string) error
	// ActivateTheme switches the active theme to an owned one.
	ActivateTheme(ctx context.Context, theme string) error
}

type service struct {
	manager *state.Manager
	clock   clock.Clock
	bus     event.Bus
}

// NewService creates a new shop service
func NewService(manager *state.Manager, clk clock.Clock, bus event.Bus) Service {
	return &service{
		manager: manager,
		clock:   clk,
		bus:     bus,
	}
}

// Buy exchanges coins for one unit of the given resource. Debit and credit
// happen in one mutation, so a failed purchase never moves coins.
func (s *service) Buy(ctx context.Context, kind domain.ResourceKind) error {
	log := logger.FromContext(ctx)

	price, ok := Prices[kind]
	if !ok {
		return fmt.Errorf("%w: %q is not for sale", domain.ErrItemNotFound, kind)
	}

	err := s.manager.Update(ctx, func(st *domain.State) error {
		if err := inventory.Debit(st.Inventory, domain.ResourceCoin, price); err != nil {
			return err
		}
		return inventory.Credit(st.Inventory, kind, 1)
	})
	if err != nil {
		return err
	}

	metrics.ItemsBought.WithLabelValues(string(kind)).Inc()
	metrics.CoinsSpent.Add(float64(price))
	log.Info("Resource bought", "kind", kind, "price", price)
	return nil
}

// UnlockTheme purchases a theme for the flat theme price
func (s *service) UnlockTheme(ctx context.Context, theme string) error {
	log := logger.FromContext(ctx)

	if !slices.Contains(domain.KnownThemes, theme) {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrItemNotFound, theme)
	}

	err := s.manager.Update(ctx, func(st *domain.State) error {
		if st.Themes.Owns(theme) {
			return fmt.Errorf("%w: %s", domain.ErrThemeAlreadyOwned, theme)
		}
		if err := inventory.Debit(st.Inventory, domain.ResourceCoin, ThemePrice); err != nil {
			return err
		}
		st.Themes.Owned = append(st.Themes.Owned, theme)
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ThemesUnlocked.WithLabelValues(theme).Inc()
	metrics.CoinsSpent.Add(float64(ThemePrice))
	if err := s.bus.Publish(ctx, event.NewThemeUnlockedEvent(theme, ThemePrice, s.clock.Now())); err != nil {
		log.Warn("Failed to publish theme event", "error", err)
	}
	log.Info("Theme unlocked", "theme", theme)
	return nil
}

// ActivateTheme switches the active theme
func (s *service) ActivateTheme(ctx context.Context, theme string) error {
	return s.manager.Update(ctx, func(st *domain.State) error {
		if !st.Themes.Owns(theme) {
			if !slices.Contains(domain.KnownThemes, theme) {
				return fmt.Errorf("%w: unknown theme %q", domain.ErrItemNotFound, theme)
			}
			return fmt.Errorf("%w: %s", domain.ErrThemeNotOwned, theme)
		}
		st.Themes.Active = theme
		return nil
	})
}
