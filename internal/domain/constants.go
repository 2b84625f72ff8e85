package domain

import "time"

// Garden dimensions (columns x rows)
const (
	GardenWidth  = 15
	GardenHeight = 7
)

// Resource kinds tracked in the inventory
const (
	ResourceWater    ResourceKind = "water"
	ResourcePlant    ResourceKind = "plant"
	ResourceTree     ResourceKind = "tree"
	ResourceSunlight ResourceKind = "sunlight"
	ResourceCoin     ResourceKind = "coin"
	ResourceSeed     ResourceKind = "seed"
	ResourcePath     ResourceKind = "path"
)

// ResourceKinds lists every inventory key in canonical order
var ResourceKinds = []ResourceKind{
	ResourceWater,
	ResourcePlant,
	ResourceTree,
	ResourceSunlight,
	ResourceCoin,
	ResourceSeed,
	ResourcePath,
}

// Item kinds that can occupy garden tiles
const (
	ItemPlant ItemKind = "plant"
	ItemTree  ItemKind = "tree"
	ItemSeed  ItemKind = "seed"
)

// Lifecycle thresholds. Elapsed time is measured from the last watering
// (or placement, if never watered).
const (
	// ThirstyAfter is when a living item starts wilting
	ThirstyAfter = 24 * time.Hour

	// HeavyWiltAfter is when a plant's wilt level goes from 1 to 2
	HeavyWiltAfter = 48 * time.Hour

	// PlantDiesAfter is the unwatered survival limit for plants
	PlantDiesAfter = 72 * time.Hour

	// TreeDiesAfter is the unwatered survival limit for trees
	TreeDiesAfter = 48 * time.Hour

	// SeedDiesAfter is the unwatered survival limit for seeds
	SeedDiesAfter = 48 * time.Hour

	// BloomDuration is how long one sunlight keeps items blooming
	BloomDuration = 24 * time.Hour

	// SeedToPlantAfter is the age at which a living seed becomes a plant
	SeedToPlantAfter = 7 * 24 * time.Hour

	// SeedToTreeAfter is the age (from the original seed placement) at which
	// the evolved plant becomes a tree
	SeedToTreeAfter = 14 * 24 * time.Hour
)

// TreeWaterCap is the number of distinct waterings a tree accumulates before
// it counts as fully maintained. Cosmetic only; death is governed by elapsed
// time alone.
const TreeWaterCap = 4

// WateringCost is the water debited per watering action
const WateringCost = 1

// ItemColors are the cosmetic colors assigned when a seed evolves
var ItemColors = []string{
	"red",
	"orange",
	"yellow",
	"dark_blue",
	"light_blue",
	"purple",
	"pink",
	"teal",
}

// DefaultTheme is pre-owned and always active on a fresh state
const DefaultTheme = "default"

// KnownThemes lists every purchasable theme identifier
var KnownThemes = []string{
	DefaultTheme,
	"night",
	"summer",
	"winter",
	"spring",
	"autumn",
}

// StreakThresholds are the reward intervals: a post-increment streak that is
// an exact multiple of an interval grants the corresponding resource. Every
// matching interval fires independently, so streak 30 grants both the
// 15-interval water and the 30-interval plant.
var StreakThresholds = []StreakThreshold{
	{Interval: 15, Kind: ResourceWater},
	{Interval: 30, Kind: ResourcePlant},
	{Interval: 50, Kind: ResourceTree},
}

// CoinsPerCorrect is credited on every correct review
const CoinsPerCorrect = 1
