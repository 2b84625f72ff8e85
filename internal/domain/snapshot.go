package domain

import "time"

// Health is the derived lifecycle classification of a placed item.
type Health string

const (
	HealthHealthy Health = "healthy"
	HealthThirsty Health = "thirsty"
	HealthDead    Health = "dead"
)

// ItemStatus is the read-only view of one placed item plus its derived
// lifecycle state at snapshot time.
type ItemStatus struct {
	ID            string    `json:"id"`
	Kind          ItemKind  `json:"kind"`
	Origin        Tile      `json:"origin"`
	Footprint     int       `json:"footprint"`
	Health        Health    `json:"health"`
	WiltLevel     int       `json:"wilt_level"`
	Blooming      bool      `json:"blooming"`
	Color         string    `json:"color,omitempty"`
	WaterCount    int       `json:"water_count,omitempty"`
	PlantedAt     time.Time `json:"planted_at"`
	LastWateredAt time.Time `json:"last_watered_at"`
}

// Snapshot is the read-only aggregate view handed to the UI layer. The
// renderer never mutates engine state directly; it issues commands instead.
type Snapshot struct {
	Width     int                     `json:"width"`
	Height    int                     `json:"height"`
	Inventory Inventory               `json:"inventory"`
	Labels    map[ResourceKind]string `json:"labels"`
	Items     []ItemStatus            `json:"items"`
	Paths     []Tile                  `json:"paths"`
	Streak    Streak                  `json:"streak"`
	Themes    Themes                  `json:"themes"`
}
