package garden

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/StudyGarden_Go/internal/clock"
	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/inventory"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/metrics"
	"github.com/osse101/StudyGarden_Go/internal/naming"
	"github.com/osse101/StudyGarden_Go/internal/state"
)

// Service defines the garden grid business logic. Every operation evaluates
// pending decay and evolution first, so the grid is always current at the
// moment a command runs without any background timer.
type Service interface {
	// Place puts a new item of the given kind on the grid, debiting one
	// matching resource. Returns the new item's id.
	Place(ctx context.Context, kind domain.ItemKind, origin domain.Tile) (string, error)
	// Water waters a living item, debiting one water.
	Water(ctx context.Context, itemID string) error
	// Remove deletes an item from the grid. No resource is refunded.
	Remove(ctx context.Context, itemID string) error
	// Move relocates an item to a free footprint.
	Move(ctx context.Context, itemID string, origin domain.Tile) error
	// ApplySunlight debits one sunlight and sets every living item blooming.
	ApplySunlight(ctx context.Context) error
	// PlacePath lays a decorative path tile, debiting one path resource.
	PlacePath(ctx context.Context, tile domain.Tile) error
	// RemovePath lifts a path tile and refunds the path resource.
	RemovePath(ctx context.Context, tile domain.Tile) error
	// Tick applies due deaths and evolutions without any other effect.
	Tick(ctx context.Context) error
	// Snapshot returns the read-only aggregate view for the UI layer.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

type service struct {
	manager *state.Manager
	clock   clock.Clock
	bus     event.Bus
}

// NewService creates a new garden service
func NewService(manager *state.Manager, clk clock.Clock, bus event.Bus) Service {
	return &service{
		manager: manager,
		clock:   clk,
		bus:     bus,
	}
}

// tick marks newly-dead items and applies due seed evolution, returning the
// lifecycle events to publish. Dead items stay on the grid (addressable for
// Remove) but never evolve or bloom. A plant grown from a seed becomes a tree
// only when its 2x2 footprint fits; until then the evolution is deferred
// without error and retried on every tick.
func tick(st *domain.State, now time.Time) []event.Event {
	var events []event.Event
	for _, it := range st.Garden.Items {
		if it.Dead {
			continue
		}
		if dueToDie(it, now) {
			it.Dead = true
			metrics.ItemsDied.WithLabelValues(string(it.Kind)).Inc()
			events = append(events, event.NewItemDiedEvent(it, now))
			continue
		}

		if it.Kind == domain.ItemSeed && now.Sub(it.SeedPlantedAt) >= domain.SeedToPlantAfter {
			it.Kind = domain.ItemPlant
			it.PlantedAt = now
			it.LastWateredAt = now
			it.Color = evolutionColor(now)
			metrics.ItemsEvolved.WithLabelValues(string(domain.ItemPlant)).Inc()
			events = append(events, event.NewItemEvolvedEvent(it, now))
		}

		if it.Kind == domain.ItemPlant && !it.SeedPlantedAt.IsZero() &&
			now.Sub(it.SeedPlantedAt) >= domain.SeedToTreeAfter {
			if footprintFits(st.Garden, domain.ItemTree, it.Origin, it) == nil {
				it.Kind = domain.ItemTree
				it.PlantedAt = now
				it.LastWateredAt = now
				it.WaterCount = 0
				metrics.ItemsEvolved.WithLabelValues(string(domain.ItemTree)).Inc()
				events = append(events, event.NewItemEvolvedEvent(it, now))
			}
		}
	}
	return events
}

// publish delivers lifecycle events after the mutation has committed. Bus
// failures are logged, never propagated: subscribers are observers, not
// participants.
func (s *service) publish(ctx context.Context, events []event.Event) {
	log := logger.FromContext(ctx)
	for _, ev := range events {
		if err := s.bus.Publish(ctx, ev); err != nil {
			log.Warn("Failed to publish event", "type", ev.Type, "error", err)
		}
	}
}

// Place puts a new item of the given kind on the grid
func (s *service) Place(ctx context.Context, kind domain.ItemKind, origin domain.Tile) (string, error) {
	log := logger.FromContext(ctx)

	switch kind {
	case domain.ItemPlant, domain.ItemTree, domain.ItemSeed:
	default:
		return "", fmt.Errorf("%w: unknown item kind %q", domain.ErrInvalidInput, kind)
	}

	now := s.clock.Now()
	id := uuid.New().String()
	var events []event.Event

	err := s.manager.Update(ctx, func(st *domain.State) error {
		events = tick(st, now)

		if err := footprintFits(st.Garden, kind, origin, nil); err != nil {
			return err
		}
		if err := inventory.Debit(st.Inventory, kind.PlacementResource(), 1); err != nil {
			return err
		}

		it := &domain.Item{
			ID:            id,
			Kind:          kind,
			Origin:        origin,
			PlantedAt:     now,
			LastWateredAt: now,
		}
		if kind == domain.ItemSeed {
			it.SeedPlantedAt = now
		}
		st.Garden.Items = append(st.Garden.Items, it)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.publish(ctx, events)
	metrics.ItemsPlaced.WithLabelValues(string(kind)).Inc()
	log.Info("Item placed", "itemID", id, "kind", kind, "col", origin.Col, "row", origin.Row)
	return id, nil
}

// Water waters a living item
func (s *service) Water(ctx context.Context, itemID string) error {
	now := s.clock.Now()
	var events []event.Event

	err := s.manager.Update(ctx, func(st *domain.State) error {
		events = tick(st, now)

		it := st.Garden.ItemByID(itemID)
		if it == nil {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		if it.Dead {
			return fmt.Errorf("%w: %s", domain.ErrItemDead, itemID)
		}
		if err := inventory.Debit(st.Inventory, domain.ResourceWater, domain.WateringCost); err != nil {
			return err
		}

		it.LastWateredAt = now
		if it.Kind == domain.ItemTree && it.WaterCount < domain.TreeWaterCap {
			it.WaterCount++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	metrics.ItemsWatered.Inc()
	return nil
}

// Remove deletes an item from the grid
func (s *service) Remove(ctx context.Context, itemID string) error {
	now := s.clock.Now()
	var events []event.Event
	var removed domain.ItemKind

	err := s.manager.Update(ctx, func(st *domain.State) error {
		events = tick(st, now)

		items := st.Garden.Items
		for i, it := range items {
			if it.ID == itemID {
				removed = it.Kind
				st.Garden.Items = append(items[:i], items[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	metrics.ItemsRemoved.WithLabelValues(string(removed)).Inc()
	return nil
}

// Move relocates an item to a free footprint
func (s *service) Move(ctx context.Context, itemID string, origin domain.Tile) error {
	now := s.clock.Now()
	var events []event.Event

	err := s.manager.Update(ctx, func(st *domain.State) error {
		events = tick(st, now)

		it := st.Garden.ItemByID(itemID)
		if it == nil {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		if err := footprintFits(st.Garden, it.Kind, origin, it); err != nil {
			return err
		}
		it.Origin = origin
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	return nil
}

// ApplySunlight sets every living item blooming
func (s *service) ApplySunlight(ctx context.Context) error {
	now := s.clock.Now()
	until := now.Add(domain.BloomDuration)
	var events []event.Event

	err := s.manager.Update(ctx, func(st *domain.State) error {
		events = tick(st, now)

		var living []*domain.Item
		for _, it := range st.Garden.Items {
			if !it.Dead {
				living = append(living, it)
			}
		}
		if len(living) == 0 {
			return fmt.Errorf("%w: no living items to bloom", domain.ErrItemNotFound)
		}
		if err := inventory.Debit(st.Inventory, domain.ResourceSunlight, 1); err != nil {
			return err
		}

		for _, it := range living {
			u := until
			it.BloomUntil = &u
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	metrics.SunlightApplied.Inc()
	return nil
}

// PlacePath lays a decorative path tile
func (s *service) PlacePath(ctx context.Context, tile domain.Tile) error {
	return s.manager.Update(ctx, func(st *domain.State) error {
		if !tile.InBounds() {
			return fmt.Errorf("%w: (%d,%d)", domain.ErrOutOfBounds, tile.Col, tile.Row)
		}
		if st.Garden.HasPath(tile) {
			return fmt.Errorf("%w: path at (%d,%d)", domain.ErrTileOccupied, tile.Col, tile.Row)
		}
		if err := inventory.Debit(st.Inventory, domain.ResourcePath, 1); err != nil {
			return err
		}
		st.Garden.Paths = append(st.Garden.Paths, tile)
		return nil
	})
}

// RemovePath lifts a path tile and refunds it
func (s *service) RemovePath(ctx context.Context, tile domain.Tile) error {
	return s.manager.Update(ctx, func(st *domain.State) error {
		for i, p := range st.Garden.Paths {
			if p == tile {
				st.Garden.Paths = append(st.Garden.Paths[:i], st.Garden.Paths[i+1:]...)
				return inventory.Credit(st.Inventory, domain.ResourcePath, 1)
			}
		}
		return fmt.Errorf("%w: no path at (%d,%d)", domain.ErrItemNotFound, tile.Col, tile.Row)
	})
}

// Tick applies due deaths and evolutions
func (s *service) Tick(ctx context.Context) error {
	now := s.clock.Now()
	var events []event.Event

	err := s.manager.Update(ctx, func(st *domain.State) error {
		events = tick(st, now)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	return nil
}

// Snapshot returns the read-only aggregate view. The tick runs first inside
// the same mutation, so the snapshot never shows an item the decay rules have
// already claimed.
func (s *service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	now := s.clock.Now()
	var events []event.Event
	var snap *domain.Snapshot

	err := s.manager.Update(ctx, func(st *domain.State) error {
		events = tick(st, now)
		snap = buildSnapshot(st, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events)
	return snap, nil
}

func buildSnapshot(st *domain.State, now time.Time) *domain.Snapshot {
	items := make([]domain.ItemStatus, 0, len(st.Garden.Items))
	for _, it := range st.Garden.Items {
		health, wilt := Classify(it, now)
		items = append(items, domain.ItemStatus{
			ID:            it.ID,
			Kind:          it.Kind,
			Origin:        it.Origin,
			Footprint:     it.Kind.FootprintSize(),
			Health:        health,
			WiltLevel:     wilt,
			Blooming:      bloomActive(it, now),
			Color:         it.Color,
			WaterCount:    it.WaterCount,
			PlantedAt:     it.PlantedAt,
			LastWateredAt: it.LastWateredAt,
		})
	}

	paths := make([]domain.Tile, len(st.Garden.Paths))
	copy(paths, st.Garden.Paths)

	return &domain.Snapshot{
		Width:     st.Garden.Width,
		Height:    st.Garden.Height,
		Inventory: st.Inventory.Clone(),
		Labels:    naming.Labels(),
		Items:     items,
		Paths:     paths,
		Streak:    st.Streak,
		Themes:    st.Themes.Clone(),
	}
}
