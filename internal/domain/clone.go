package domain

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	cp := *it
	if it.BloomUntil != nil {
		until := *it.BloomUntil
		cp.BloomUntil = &until
	}
	return &cp
}

// Clone returns a deep copy of the garden.
func (g *Garden) Clone() *Garden {
	cp := &Garden{
		Width:  g.Width,
		Height: g.Height,
		Items:  make([]*Item, 0, len(g.Items)),
		Paths:  make([]Tile, len(g.Paths)),
	}
	for _, it := range g.Items {
		cp.Items = append(cp.Items, it.Clone())
	}
	copy(cp.Paths, g.Paths)
	return cp
}

// Clone returns a deep copy of the theme catalog.
func (t Themes) Clone() Themes {
	owned := make([]string, len(t.Owned))
	copy(owned, t.Owned)
	return Themes{Owned: owned, Active: t.Active}
}

// Clone returns a deep copy of the aggregate. Mutating operations work on a
// clone and swap it in only on success, so a failed command never leaves
// partial effects behind.
func (s *State) Clone() *State {
	return &State{
		SchemaVersion: s.SchemaVersion,
		Inventory:     s.Inventory.Clone(),
		Garden:        s.Garden.Clone(),
		Streak:        s.Streak,
		Themes:        s.Themes.Clone(),
	}
}
