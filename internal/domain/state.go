package domain

// CurrentSchemaVersion is the version tag written into every saved document.
// v1: inventory + garden + streak
// v2: theme catalog added
// v3: path overlay and seed resource added
const CurrentSchemaVersion = 3

// Streak tracks the consecutive-correct counter and a monotonically
// non-decreasing lifetime count used only for analytics.
type Streak struct {
	Current         int `json:"current"`
	LifetimeCorrect int `json:"lifetime_correct"`
}

// Themes is the catalog of owned theme identifiers and the active one.
// Owned always contains DefaultTheme; Active is always a member of Owned.
type Themes struct {
	Owned  []string `json:"owned"`
	Active string   `json:"active"`
}

// NewThemes returns the default-only catalog.
func NewThemes() Themes {
	return Themes{
		Owned:  []string{DefaultTheme},
		Active: DefaultTheme,
	}
}

// Owns reports whether the theme id is in the owned set.
func (t Themes) Owns(id string) bool {
	for _, o := range t.Owned {
		if o == id {
			return true
		}
	}
	return false
}

// State is the persisted aggregate.
type State struct {
	SchemaVersion int       `json:"schema_version"`
	Inventory     Inventory `json:"inventory"`
	Garden        *Garden   `json:"garden"`
	Streak        Streak    `json:"streak"`
	Themes        Themes    `json:"themes"`
}

// NewState returns the hard-coded default starting state: 1 plant, 3 waters,
// 0 coins, empty garden, default theme only.
func NewState() *State {
	inv := NewInventory()
	inv[ResourceWater] = 3
	inv[ResourcePlant] = 1
	return &State{
		SchemaVersion: CurrentSchemaVersion,
		Inventory:     inv,
		Garden:        NewGarden(),
		Themes:        NewThemes(),
	}
}
