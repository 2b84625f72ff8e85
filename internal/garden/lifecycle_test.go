package garden

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

func TestClassify(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		kind       domain.ItemKind
		elapsed    time.Duration
		wantHealth domain.Health
		wantWilt   int
	}{
		{name: "plant fresh", kind: domain.ItemPlant, elapsed: 0, wantHealth: domain.HealthHealthy},
		{name: "plant at 12 hours", kind: domain.ItemPlant, elapsed: 12 * time.Hour, wantHealth: domain.HealthHealthy},
		{name: "plant just thirsty", kind: domain.ItemPlant, elapsed: 24 * time.Hour, wantHealth: domain.HealthThirsty, wantWilt: 1},
		{name: "plant heavy wilt at 2 days", kind: domain.ItemPlant, elapsed: 48 * time.Hour, wantHealth: domain.HealthThirsty, wantWilt: 2},
		{name: "plant dead at 3 days", kind: domain.ItemPlant, elapsed: 72 * time.Hour, wantHealth: domain.HealthDead},
		{name: "plant dead at 4 days", kind: domain.ItemPlant, elapsed: 96 * time.Hour, wantHealth: domain.HealthDead},
		{name: "tree thirsty", kind: domain.ItemTree, elapsed: 30 * time.Hour, wantHealth: domain.HealthThirsty, wantWilt: 1},
		{name: "tree dead at 2 days", kind: domain.ItemTree, elapsed: 48 * time.Hour, wantHealth: domain.HealthDead},
		{name: "seed dead at 2 days", kind: domain.ItemSeed, elapsed: 48 * time.Hour, wantHealth: domain.HealthDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := &domain.Item{
				Kind:          tt.kind,
				PlantedAt:     base,
				LastWateredAt: base,
			}
			health, wilt := Classify(it, base.Add(tt.elapsed))
			assert.Equal(t, tt.wantHealth, health)
			assert.Equal(t, tt.wantWilt, wilt)
		})
	}
}

func TestClassify_BloomForcesHealthy(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	until := base.Add(40 * time.Hour)
	it := &domain.Item{
		Kind:          domain.ItemPlant,
		PlantedAt:     base,
		LastWateredAt: base,
		BloomUntil:    &until,
	}

	// 30h unwatered would be thirsty, but the bloom is still active.
	health, wilt := Classify(it, base.Add(30*time.Hour))
	assert.Equal(t, domain.HealthHealthy, health)
	assert.Equal(t, 0, wilt)

	// Bloom expired; decay resumes from the untouched watering timestamp.
	health, _ = Classify(it, base.Add(41*time.Hour))
	assert.Equal(t, domain.HealthThirsty, health)
}

func TestClassify_DeadFlagWins(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	it := &domain.Item{
		Kind:          domain.ItemPlant,
		PlantedAt:     base,
		LastWateredAt: base,
		Dead:          true,
	}
	health, _ := Classify(it, base)
	assert.Equal(t, domain.HealthDead, health)
}

func TestFootprintFits(t *testing.T) {
	g := domain.NewGarden()
	g.Items = append(g.Items, &domain.Item{
		ID:     "blocker",
		Kind:   domain.ItemPlant,
		Origin: domain.Tile{Col: 5, Row: 3},
	})

	tests := []struct {
		name    string
		kind    domain.ItemKind
		origin  domain.Tile
		wantErr error
	}{
		{name: "free tile", kind: domain.ItemPlant, origin: domain.Tile{Col: 0, Row: 0}},
		{name: "occupied tile", kind: domain.ItemPlant, origin: domain.Tile{Col: 5, Row: 3}, wantErr: domain.ErrTileOccupied},
		{name: "origin off grid", kind: domain.ItemPlant, origin: domain.Tile{Col: 15, Row: 0}, wantErr: domain.ErrOutOfBounds},
		{name: "negative origin", kind: domain.ItemPlant, origin: domain.Tile{Col: -1, Row: 0}, wantErr: domain.ErrOutOfBounds},
		{name: "tree fits", kind: domain.ItemTree, origin: domain.Tile{Col: 0, Row: 0}},
		{name: "tree footprint off right edge", kind: domain.ItemTree, origin: domain.Tile{Col: 14, Row: 0}, wantErr: domain.ErrInsufficientSpace},
		{name: "tree footprint off bottom edge", kind: domain.ItemTree, origin: domain.Tile{Col: 0, Row: 6}, wantErr: domain.ErrInsufficientSpace},
		{name: "tree overlapping occupant", kind: domain.ItemTree, origin: domain.Tile{Col: 4, Row: 2}, wantErr: domain.ErrTileOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := footprintFits(g, tt.kind, tt.origin, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFootprintFits_IgnoresSelf(t *testing.T) {
	g := domain.NewGarden()
	it := &domain.Item{
		ID:     "tree-1",
		Kind:   domain.ItemTree,
		Origin: domain.Tile{Col: 3, Row: 3},
	}
	g.Items = append(g.Items, it)

	// Shifting one tile over overlaps the old footprint, which is fine.
	assert.NoError(t, footprintFits(g, it.Kind, domain.Tile{Col: 4, Row: 3}, it))
}
