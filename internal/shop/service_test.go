package shop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyGarden_Go/internal/clock"
	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/state"
)

func newTestService(t *testing.T, coins int) (Service, *state.Manager) {
	t.Helper()
	m := state.NewManager(context.Background(), state.NewMemoryStore())
	require.NoError(t, m.Update(context.Background(), func(st *domain.State) error {
		st.Inventory[domain.ResourceCoin] = coins
		return nil
	}))
	clk := clock.NewSimulatedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	return NewService(m, clk, event.NewMemoryBus()), m
}

func balance(m *state.Manager, kind domain.ResourceKind) int {
	var n int
	m.View(func(st *domain.State) { n = st.Inventory[kind] })
	return n
}

func TestBuy(t *testing.T) {
	tests := []struct {
		kind  domain.ResourceKind
		price int
	}{
		{kind: domain.ResourceWater, price: 20},
		{kind: domain.ResourcePlant, price: 50},
		{kind: domain.ResourceTree, price: 100},
		{kind: domain.ResourceSunlight, price: 200},
		{kind: domain.ResourceSeed, price: 1000},
		{kind: domain.ResourcePath, price: 20},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			svc, m := newTestService(t, 1000)

			before := balance(m, tt.kind)
			require.NoError(t, svc.Buy(context.Background(), tt.kind))
			assert.Equal(t, before+1, balance(m, tt.kind))
			assert.Equal(t, 1000-tt.price, balance(m, domain.ResourceCoin))
		})
	}
}

func TestBuy_InsufficientCoinsIsAtomic(t *testing.T) {
	svc, m := newTestService(t, 99)

	err := svc.Buy(context.Background(), domain.ResourceTree)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Neither side of the exchange moved.
	assert.Equal(t, 99, balance(m, domain.ResourceCoin))
	assert.Equal(t, 0, balance(m, domain.ResourceTree))
}

func TestBuy_UnknownKind(t *testing.T) {
	svc, m := newTestService(t, 5000)

	// Coins are not for sale, nor are made-up kinds.
	assert.ErrorIs(t, svc.Buy(context.Background(), domain.ResourceCoin), domain.ErrItemNotFound)
	assert.ErrorIs(t, svc.Buy(context.Background(), "gem"), domain.ErrItemNotFound)
	assert.Equal(t, 5000, balance(m, domain.ResourceCoin))
}

func TestUnlockTheme(t *testing.T) {
	svc, m := newTestService(t, 2500)
	ctx := context.Background()

	require.NoError(t, svc.UnlockTheme(ctx, "night"))
	assert.Equal(t, 500, balance(m, domain.ResourceCoin))
	m.View(func(st *domain.State) {
		assert.True(t, st.Themes.Owns("night"))
		assert.Equal(t, domain.DefaultTheme, st.Themes.Active)
	})

	// Buying the same theme twice is refused before any coins move.
	err := svc.UnlockTheme(ctx, "night")
	assert.ErrorIs(t, err, domain.ErrThemeAlreadyOwned)
	assert.Equal(t, 500, balance(m, domain.ResourceCoin))

	assert.ErrorIs(t, svc.UnlockTheme(ctx, domain.DefaultTheme), domain.ErrThemeAlreadyOwned)
	assert.ErrorIs(t, svc.UnlockTheme(ctx, "disco"), domain.ErrItemNotFound)

	err = svc.UnlockTheme(ctx, "winter")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 500, balance(m, domain.ResourceCoin))
}

func TestActivateTheme(t *testing.T) {
	svc, m := newTestService(t, 2000)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ActivateTheme(ctx, "summer"), domain.ErrThemeNotOwned)
	assert.ErrorIs(t, svc.ActivateTheme(ctx, "disco"), domain.ErrItemNotFound)

	require.NoError(t, svc.UnlockTheme(ctx, "summer"))
	require.NoError(t, svc.ActivateTheme(ctx, "summer"))
	m.View(func(st *domain.State) {
		assert.Equal(t, "summer", st.Themes.Active)
	})

	// Switching back to default always works.
	require.NoError(t, svc.ActivateTheme(ctx, domain.DefaultTheme))
	m.View(func(st *domain.State) {
		assert.Equal(t, domain.DefaultTheme, st.Themes.Active)
	})
}
