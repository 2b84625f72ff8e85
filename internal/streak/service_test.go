package streak

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyGarden_Go/internal/clock"
	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/state"
)

func newTestService(t *testing.T) (Service, *state.Manager, *event.MemoryBus) {
	t.Helper()
	m := state.NewManager(context.Background(), state.NewMemoryStore())
	clk := clock.NewSimulatedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	bus := event.NewMemoryBus()
	return NewService(m, clk, bus), m, bus
}

func balance(m *state.Manager, kind domain.ResourceKind) int {
	var n int
	m.View(func(st *domain.State) { n = st.Inventory[kind] })
	return n
}

func correctN(t *testing.T, svc Service, n int) *domain.ReviewResult {
	t.Helper()
	var last *domain.ReviewResult
	for i := 0; i < n; i++ {
		res, err := svc.HandleReview(context.Background(), domain.OutcomeCorrect)
		require.NoError(t, err)
		last = res
	}
	return last
}

func TestHandleReview_CorrectCreditsOneCoin(t *testing.T) {
	svc, m, _ := newTestService(t)

	res, err := svc.HandleReview(context.Background(), domain.OutcomeCorrect)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 1, res.LifetimeCorrect)
	assert.Equal(t, []domain.Grant{{Kind: domain.ResourceCoin, Amount: 1}}, res.Grants)
	assert.Equal(t, 1, balance(m, domain.ResourceCoin))
}

func TestHandleReview_CoinsEqualCorrectCount(t *testing.T) {
	svc, m, _ := newTestService(t)
	ctx := context.Background()

	correct := 0
	for i := 0; i < 40; i++ {
		outcome := domain.OutcomeCorrect
		if i%7 == 3 {
			outcome = domain.OutcomeIncorrect
		} else {
			correct++
		}
		_, err := svc.HandleReview(ctx, outcome)
		require.NoError(t, err)
	}

	assert.Equal(t, correct, balance(m, domain.ResourceCoin))
}

func TestHandleReview_ThresholdGrants(t *testing.T) {
	tests := []struct {
		streak int
		want   []domain.Grant
	}{
		{streak: 14, want: []domain.Grant{{Kind: domain.ResourceCoin, Amount: 1}}},
		{streak: 15, want: []domain.Grant{
			{Kind: domain.ResourceCoin, Amount: 1},
			{Kind: domain.ResourceWater, Amount: 1},
		}},
		{streak: 30, want: []domain.Grant{
			{Kind: domain.ResourceCoin, Amount: 1},
			{Kind: domain.ResourceWater, Amount: 1},
			{Kind: domain.ResourcePlant, Amount: 1},
		}},
		{streak: 50, want: []domain.Grant{
			{Kind: domain.ResourceCoin, Amount: 1},
			{Kind: domain.ResourceTree, Amount: 1},
		}},
		{streak: 150, want: []domain.Grant{
			{Kind: domain.ResourceCoin, Amount: 1},
			{Kind: domain.ResourceWater, Amount: 1},
			{Kind: domain.ResourcePlant, Amount: 1},
			{Kind: domain.ResourceTree, Amount: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("streak %d", tt.streak), func(t *testing.T) {
			svc, _, _ := newTestService(t)
			res := correctN(t, svc, tt.streak)
			assert.Equal(t, tt.streak, res.Streak)
			assert.Equal(t, tt.want, res.Grants)
		})
	}
}

func TestHandleReview_StreakThirtyGrantsWaterAndPlant(t *testing.T) {
	svc, m, _ := newTestService(t)

	correctN(t, svc, 30)

	// Beyond coins: one water at 15 and 30, one plant at 30, on top of the
	// default state's 3 water and 1 plant.
	assert.Equal(t, 30, balance(m, domain.ResourceCoin))
	assert.Equal(t, 3+2, balance(m, domain.ResourceWater))
	assert.Equal(t, 1+1, balance(m, domain.ResourcePlant))
}

func TestHandleReview_IncorrectResetsStreak(t *testing.T) {
	svc, m, _ := newTestService(t)
	ctx := context.Background()

	correctN(t, svc, 14)

	res, err := svc.HandleReview(ctx, domain.OutcomeIncorrect)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Streak)
	assert.Equal(t, 14, res.LifetimeCorrect)
	assert.Empty(t, res.Grants)

	// The next correct restarts from 1; the near-miss 15 never fires.
	res, err = svc.HandleReview(ctx, domain.OutcomeCorrect)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 3, balance(m, domain.ResourceWater))
}

func TestHandleReview_InvalidOutcome(t *testing.T) {
	svc, m, _ := newTestService(t)

	_, err := svc.HandleReview(context.Background(), "skipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, balance(m, domain.ResourceCoin))
}

func TestHandleReview_PublishesEvent(t *testing.T) {
	svc, _, bus := newTestService(t)

	var got []event.Event
	bus.Subscribe(event.ReviewProcessed, func(_ context.Context, ev event.Event) error {
		got = append(got, ev)
		return nil
	})

	_, err := svc.HandleReview(context.Background(), domain.OutcomeCorrect)
	require.NoError(t, err)

	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(event.ReviewProcessedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, domain.OutcomeCorrect, payload.Outcome)
	assert.Equal(t, 1, payload.Streak)
}

func BenchmarkHandleReview(b *testing.B) {
	m := state.NewManager(context.Background(), state.NewMemoryStore())
	clk := clock.NewSimulatedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	svc := NewService(m, clk, event.NewMemoryBus())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.HandleReview(ctx, domain.OutcomeCorrect); err != nil {
			b.Fatal(err)
		}
	}
}
