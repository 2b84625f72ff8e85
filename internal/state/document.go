package state

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

// Decode parses a raw versioned document, migrating it forward when it was
// saved by an older schema. The returned state is normalized: every inventory
// kind present, grid at current dimensions, default theme owned.
// Any structural problem is reported as domain.ErrCorruptState; callers are
// expected to fall back to defaults rather than surface it.
func Decode(raw []byte) (*domain.State, int, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrCorruptState, err)
	}

	version, ok := doc["schema_version"].(float64)
	if !ok {
		return nil, 0, fmt.Errorf("%w: missing schema_version", domain.ErrCorruptState)
	}

	steps, err := migrate(doc, int(version))
	if err != nil {
		return nil, steps, err
	}

	// Round-trip the migrated document into the typed aggregate.
	migrated, err := json.Marshal(doc)
	if err != nil {
		return nil, steps, fmt.Errorf("%w: %v", domain.ErrCorruptState, err)
	}

	var st domain.State
	if err := json.Unmarshal(migrated, &st); err != nil {
		return nil, steps, fmt.Errorf("%w: %v", domain.ErrCorruptState, err)
	}

	if err := normalize(&st); err != nil {
		return nil, steps, err
	}
	return &st, steps, nil
}

// Encode serializes the aggregate tagged with the current schema version.
func Encode(st *domain.State) ([]byte, error) {
	st.SchemaVersion = domain.CurrentSchemaVersion
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// normalize enforces structural invariants after decoding: fixed grid
// dimensions, known inventory kinds, default theme ownership, items within
// bounds with sane timestamps.
func normalize(st *domain.State) error {
	st.Inventory = st.Inventory.Normalize()

	if st.Garden == nil {
		return fmt.Errorf("%w: missing garden", domain.ErrCorruptState)
	}
	st.Garden.Width = domain.GardenWidth
	st.Garden.Height = domain.GardenHeight
	if st.Garden.Items == nil {
		st.Garden.Items = []*domain.Item{}
	}
	if st.Garden.Paths == nil {
		st.Garden.Paths = []domain.Tile{}
	}

	for _, it := range st.Garden.Items {
		if it.ID == "" || !it.Origin.InBounds() {
			return fmt.Errorf("%w: invalid item placement", domain.ErrCorruptState)
		}
		switch it.Kind {
		case domain.ItemPlant, domain.ItemTree, domain.ItemSeed:
		default:
			return fmt.Errorf("%w: unknown item kind %q", domain.ErrCorruptState, it.Kind)
		}
		if it.PlantedAt.IsZero() {
			return fmt.Errorf("%w: item %s has no placement time", domain.ErrCorruptState, it.ID)
		}
		if it.LastWateredAt.IsZero() {
			it.LastWateredAt = it.PlantedAt
		}
	}

	if st.Streak.Current < 0 {
		st.Streak.Current = 0
	}
	if st.Streak.LifetimeCorrect < 0 {
		st.Streak.LifetimeCorrect = 0
	}

	if !st.Themes.Owns(domain.DefaultTheme) {
		st.Themes.Owned = append(st.Themes.Owned, domain.DefaultTheme)
	}
	if !st.Themes.Owns(st.Themes.Active) {
		st.Themes.Active = domain.DefaultTheme
	}
	return nil
}
