package domain

// ResourceKind identifies an inventory resource
type ResourceKind string

// Valid reports whether the kind is one of the known resource kinds.
func (k ResourceKind) Valid() bool {
	for _, known := range ResourceKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Inventory maps resource kind to a non-negative count. This is the structure
// stored in the persisted document's "inventory" field.
type Inventory map[ResourceKind]int

// NewInventory returns an inventory with every known kind at zero.
func NewInventory() Inventory {
	inv := make(Inventory, len(ResourceKinds))
	for _, k := range ResourceKinds {
		inv[k] = 0
	}
	return inv
}

// Normalize ensures every known kind has an entry and drops unknown keys.
// Used after loading persisted documents from older schema versions.
func (inv Inventory) Normalize() Inventory {
	out := NewInventory()
	for _, k := range ResourceKinds {
		if n, ok := inv[k]; ok && n > 0 {
			out[k] = n
		}
	}
	return out
}

// Clone returns a shallow copy safe to hand to readers.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
