package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/event"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndSummarize(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	records := []ReviewRecord{
		{
			Outcome: domain.OutcomeCorrect, Streak: 1, LifetimeCorrect: 1,
			Grants:    []domain.Grant{{Kind: domain.ResourceCoin, Amount: 1}},
			CreatedAt: now,
		},
		{
			Outcome: domain.OutcomeCorrect, Streak: 2, LifetimeCorrect: 2,
			Grants: []domain.Grant{
				{Kind: domain.ResourceCoin, Amount: 1},
				{Kind: domain.ResourceWater, Amount: 1},
			},
			CreatedAt: now.Add(time.Minute),
		},
		{
			Outcome: domain.OutcomeIncorrect, Streak: 0, LifetimeCorrect: 2,
			Grants:    nil,
			CreatedAt: now.Add(2 * time.Minute),
		},
	}
	for _, rec := range records {
		require.NoError(t, store.RecordReview(ctx, rec))
	}

	sum, err := store.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Reviews)
	assert.Equal(t, 2, sum.Correct)
	assert.Equal(t, 2, sum.CoinsGranted)
}

func TestStore_EmptySummary(t *testing.T) {
	store := newTestStore(t)

	sum, err := store.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Summary{}, sum)
}

func TestService_RecordsReviewEvents(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store)
	bus := event.NewMemoryBus()
	svc.Subscribe(bus)
	ctx := context.Background()

	res := domain.ReviewResult{
		Outcome:         domain.OutcomeCorrect,
		Streak:          15,
		LifetimeCorrect: 40,
		Grants: []domain.Grant{
			{Kind: domain.ResourceCoin, Amount: 1},
			{Kind: domain.ResourceWater, Amount: 1},
		},
	}
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, bus.Publish(ctx, event.NewReviewProcessedEvent(res, at)))

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Reviews)
	assert.Equal(t, 1, sum.Correct)
	assert.Equal(t, 1, sum.CoinsGranted)
}

func TestService_IgnoresForeignPayloads(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store)
	bus := event.NewMemoryBus()
	svc.Subscribe(bus)
	ctx := context.Background()

	// A payload of the wrong shape is skipped without error.
	require.NoError(t, bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.ReviewProcessed,
		Payload: map[string]interface{}{"junk": true},
	}))

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Reviews)
}
