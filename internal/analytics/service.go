package analytics

import (
	"context"
	"time"

	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/logger"
)

// Service maintains the local review log. It observes the event bus rather
// than being called by the review path, so logging failures can never block a
// study session.
type Service interface {
	// Subscribe registers the analytics logger on the bus.
	Subscribe(bus event.Bus)

	// Summary returns totals over the review log.
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	store *Store
}

// NewService creates a new analytics service
func NewService(store *Store) Service {
	return &service{store: store}
}

// Subscribe registers the review-log handler
func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.ReviewProcessed, s.handleReview)
}

// handleReview appends a processed review to the log. Errors are logged and
// swallowed; the bus treats subscribers as observers.
func (s *service) handleReview(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := evt.Payload.(event.ReviewProcessedPayloadV1)
	if !ok {
		log.Debug("Unexpected review payload type, skipping", "type", evt.Type)
		return nil
	}

	rec := ReviewRecord{
		Outcome:         payload.Outcome,
		Streak:          payload.Streak,
		LifetimeCorrect: payload.LifetimeCorrect,
		Grants:          payload.Grants,
		CreatedAt:       time.Unix(payload.Timestamp, 0).UTC(),
	}
	if err := s.store.RecordReview(ctx, rec); err != nil {
		log.Warn("Failed to record review", "error", err)
	}
	return nil
}

// Summary returns totals over the review log
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	return s.store.Summarize(ctx)
}
