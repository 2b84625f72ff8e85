package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var got []Event
	bus.Subscribe(ReviewProcessed, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	ev := NewReviewProcessedEvent(domain.ReviewResult{
		Outcome: domain.OutcomeCorrect,
		Streak:  3,
		Grants:  []domain.Grant{{Kind: domain.ResourceCoin, Amount: 1}},
	}, time.Unix(1700000000, 0))

	require.NoError(t, bus.Publish(context.Background(), ev))
	require.Len(t, got, 1)

	payload, ok := got[0].Payload.(ReviewProcessedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 3, payload.Streak)
	assert.Equal(t, int64(1700000000), payload.Timestamp)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), Event{Type: ItemDied})
	assert.NoError(t, err)
}

func TestMemoryBusCollectsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(ThemeUnlocked, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(ThemeUnlocked, func(ctx context.Context, e Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), NewThemeUnlockedEvent("night", 2000, time.Now()))
	assert.ErrorContains(t, err, "1 errors")
}
