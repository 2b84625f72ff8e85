package garden

import (
	"time"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

// bloomActive reports whether a sunlight bloom is still in effect.
func bloomActive(it *domain.Item, now time.Time) bool {
	return it.BloomUntil != nil && now.Before(*it.BloomUntil)
}

// Classify derives the lifecycle state of an item at the given instant.
// An active bloom forces Healthy and suspends wilting; otherwise the state
// follows the time elapsed since the last watering. The wilt level is
// cosmetic: 0 while healthy, 1 when thirsty, 2 for plants thirsty past two
// days.
func Classify(it *domain.Item, now time.Time) (domain.Health, int) {
	if it.Dead {
		return domain.HealthDead, 0
	}
	if bloomActive(it, now) {
		return domain.HealthHealthy, 0
	}

	elapsed := now.Sub(it.LastWateredAt)
	if elapsed >= it.Kind.DeathThreshold() {
		return domain.HealthDead, 0
	}
	if elapsed >= domain.ThirstyAfter {
		wilt := 1
		if it.Kind == domain.ItemPlant && elapsed >= domain.HeavyWiltAfter {
			wilt = 2
		}
		return domain.HealthThirsty, wilt
	}
	return domain.HealthHealthy, 0
}

// dueToDie reports whether the item has gone unwatered past its survival
// limit. An active bloom keeps the item alive regardless of elapsed time;
// the decay timer resumes where it left off when the bloom expires.
func dueToDie(it *domain.Item, now time.Time) bool {
	if it.Dead || bloomActive(it, now) {
		return false
	}
	return now.Sub(it.LastWateredAt) >= it.Kind.DeathThreshold()
}

// evolutionColor picks the cosmetic color assigned when a seed sprouts. The
// choice is keyed off the timestamp rather than a seeded RNG so the engine
// stays free of global randomness.
func evolutionColor(at time.Time) string {
	return domain.ItemColors[int(at.UnixNano())%len(domain.ItemColors)]
}

// footprintFits reports whether kind's footprint anchored at origin lies fully
// on the grid and overlaps no item other than self (which may be nil).
func footprintFits(g *domain.Garden, kind domain.ItemKind, origin domain.Tile, self *domain.Item) error {
	if !origin.InBounds() {
		return domain.ErrOutOfBounds
	}
	size := kind.FootprintSize()
	for dr := 0; dr < size; dr++ {
		for dc := 0; dc < size; dc++ {
			t := domain.Tile{Col: origin.Col + dc, Row: origin.Row + dr}
			if !t.InBounds() {
				return domain.ErrInsufficientSpace
			}
			if occ := g.ItemAt(t); occ != nil && occ != self {
				return domain.ErrTileOccupied
			}
		}
	}
	return nil
}
