package shop

import "github.com/osse101/StudyGarden_Go/internal/domain"

// ThemePrice is the flat coin cost of unlocking any non-default theme
const ThemePrice = 2000

// Prices is the server-side catalog of coin costs per purchasable resource.
// Coins themselves are never for sale.
var Prices = map[domain.ResourceKind]int{
	domain.ResourceWater:    20,
	domain.ResourcePlant:    50,
	domain.ResourceTree:     100,
	domain.ResourceSunlight: 200,
	domain.ResourceSeed:     1000,
	domain.ResourcePath:     20,
}
