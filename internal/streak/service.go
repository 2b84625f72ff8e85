package streak

import (
	"context"
	"fmt"

	"github.com/osse101/StudyGarden_Go/internal/clock"
	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/inventory"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/metrics"
	"github.com/osse101/StudyGarden_Go/internal/state"
)

// Service defines the streak and reward business logic. The host application
// delivers one outcome per reviewed card; scoring the review itself is out of
// scope here.
type Service interface {
	// HandleReview processes one review outcome and returns the resulting
	// streak and the grants applied.
	HandleReview(ctx context.Context, outcome domain.Outcome) (*domain.ReviewResult, error)
}

type service struct {
	manager *state.Manager
	clock   clock.Clock
	bus     event.Bus
}

// NewService creates a new streak service
func NewService(manager *state.Manager, clk clock.Clock, bus event.Bus) Service {
	return &service{
		manager: manager,
		clock:   clk,
		bus:     bus,
	}
}

// HandleReview processes one review outcome. A correct answer bumps the
// streak, credits one coin, and grants a resource for every reward interval
// the new streak is an exact multiple of; the intervals fire independently,
// so streak 30 grants both the 15-interval water and the 30-interval plant.
// An incorrect answer resets the streak and grants nothing.
func (s *service) HandleReview(ctx context.Context, outcome domain.Outcome) (*domain.ReviewResult, error) {
	log := logger.FromContext(ctx)

	if !outcome.Valid() {
		return nil, fmt.Errorf("%w: unknown outcome %q", domain.ErrInvalidInput, outcome)
	}

	var result domain.ReviewResult
	err := s.manager.Update(ctx, func(st *domain.State) error {
		result = domain.ReviewResult{Outcome: outcome, Grants: []domain.Grant{}}

		if outcome == domain.OutcomeIncorrect {
			if st.Streak.Current > 0 {
				metrics.StreakResets.Inc()
			}
			st.Streak.Current = 0
			result.Streak = 0
			result.LifetimeCorrect = st.Streak.LifetimeCorrect
			return nil
		}

		st.Streak.Current++
		st.Streak.LifetimeCorrect++

		grants := []domain.Grant{{Kind: domain.ResourceCoin, Amount: domain.CoinsPerCorrect}}
		for _, threshold := range domain.StreakThresholds {
			if st.Streak.Current%threshold.Interval == 0 {
				grants = append(grants, domain.Grant{Kind: threshold.Kind, Amount: 1})
			}
		}
		for _, g := range grants {
			if err := inventory.Credit(st.Inventory, g.Kind, g.Amount); err != nil {
				return err
			}
		}

		result.Streak = st.Streak.Current
		result.LifetimeCorrect = st.Streak.LifetimeCorrect
		result.Grants = grants
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ReviewsProcessed.WithLabelValues(string(outcome)).Inc()
	for _, g := range result.Grants {
		metrics.RewardsGranted.WithLabelValues(string(g.Kind)).Add(float64(g.Amount))
	}

	if err := s.bus.Publish(ctx, event.NewReviewProcessedEvent(result, s.clock.Now())); err != nil {
		log.Warn("Failed to publish review event", "error", err)
	}

	log.Debug("Review processed",
		"outcome", outcome, "streak", result.Streak, "grants", len(result.Grants))
	return &result, nil
}
