package domain

import "time"

// ItemKind identifies what occupies a garden tile
type ItemKind string

// FootprintSize returns the square footprint edge for the kind (trees are 2x2).
func (k ItemKind) FootprintSize() int {
	if k == ItemTree {
		return 2
	}
	return 1
}

// PlacementResource returns the inventory kind debited when placing this item.
func (k ItemKind) PlacementResource() ResourceKind {
	switch k {
	case ItemPlant:
		return ResourcePlant
	case ItemTree:
		return ResourceTree
	case ItemSeed:
		return ResourceSeed
	}
	return ""
}

// DeathThreshold returns how long the kind survives unwatered.
func (k ItemKind) DeathThreshold() time.Duration {
	switch k {
	case ItemPlant:
		return PlantDiesAfter
	case ItemTree:
		return TreeDiesAfter
	default:
		return SeedDiesAfter
	}
}

// Tile is a coordinate pair on the garden grid. Col is in [0, GardenWidth),
// Row in [0, GardenHeight).
type Tile struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// InBounds reports whether the tile lies on the grid.
func (t Tile) InBounds() bool {
	return t.Col >= 0 && t.Col < GardenWidth && t.Row >= 0 && t.Row < GardenHeight
}

// Item is a placed garden entity. Origin is the top-left tile of its
// footprint. SeedPlantedAt carries the original seed placement time across
// transmutations; it is zero for items that were never seeds.
type Item struct {
	ID            string     `json:"id"`
	Kind          ItemKind   `json:"kind"`
	Origin        Tile       `json:"origin"`
	PlantedAt     time.Time  `json:"planted_at"`
	SeedPlantedAt time.Time  `json:"seed_planted_at,omitempty"`
	LastWateredAt time.Time  `json:"last_watered_at"`
	WaterCount    int        `json:"water_count,omitempty"`
	BloomUntil    *time.Time `json:"bloom_until,omitempty"`
	Color         string     `json:"color,omitempty"`
	Dead          bool       `json:"dead,omitempty"`
}

// Tiles returns every tile the item's footprint occupies.
func (it *Item) Tiles() []Tile {
	size := it.Kind.FootprintSize()
	tiles := make([]Tile, 0, size*size)
	for dr := 0; dr < size; dr++ {
		for dc := 0; dc < size; dc++ {
			tiles = append(tiles, Tile{Col: it.Origin.Col + dc, Row: it.Origin.Row + dr})
		}
	}
	return tiles
}

// Occupies reports whether the item's footprint covers the tile.
func (it *Item) Occupies(t Tile) bool {
	size := it.Kind.FootprintSize()
	return t.Col >= it.Origin.Col && t.Col < it.Origin.Col+size &&
		t.Row >= it.Origin.Row && t.Row < it.Origin.Row+size
}

// Garden holds the placed items and the decorative path overlay. Occupancy is
// derived from item footprints rather than stored per tile.
type Garden struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Items  []*Item `json:"items"`
	Paths  []Tile  `json:"paths"`
}

// NewGarden returns an empty garden at the fixed dimensions.
func NewGarden() *Garden {
	return &Garden{
		Width:  GardenWidth,
		Height: GardenHeight,
		Items:  []*Item{},
		Paths:  []Tile{},
	}
}

// ItemByID returns the item with the given id, or nil.
func (g *Garden) ItemByID(id string) *Item {
	for _, it := range g.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// ItemAt returns the item whose footprint covers the tile, or nil.
func (g *Garden) ItemAt(t Tile) *Item {
	for _, it := range g.Items {
		if it.Occupies(t) {
			return it
		}
	}
	return nil
}

// HasPath reports whether a path overlays the tile.
func (g *Garden) HasPath(t Tile) bool {
	for _, p := range g.Paths {
		if p == t {
			return true
		}
	}
	return false
}
