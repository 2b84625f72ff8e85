package state

import (
	"fmt"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

// migration transforms a raw document from version n to n+1 in place.
type migration func(doc map[string]interface{}) error

// migrations is keyed by source version: migrations[1] transforms a v1
// document to v2, and so on.
var migrations = map[int]migration{
	1: migrateV1ToV2,
	2: migrateV2ToV3,
}

// migrateV1ToV2 introduces the theme catalog. v1 saves predate themes, so
// only the default theme is owned and active.
func migrateV1ToV2(doc map[string]interface{}) error {
	if _, ok := doc["themes"]; !ok {
		doc["themes"] = map[string]interface{}{
			"owned":  []interface{}{domain.DefaultTheme},
			"active": domain.DefaultTheme,
		}
	}
	return nil
}

// migrateV2ToV3 introduces the decorative path overlay and the seed resource.
// Older inventories simply gain the new kinds at zero.
func migrateV2ToV3(doc map[string]interface{}) error {
	garden, ok := doc["garden"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("%w: garden is not an object", domain.ErrCorruptState)
	}
	if _, ok := garden["paths"]; !ok {
		garden["paths"] = []interface{}{}
	}

	inv, ok := doc["inventory"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("%w: inventory is not an object", domain.ErrCorruptState)
	}
	for _, kind := range []string{string(domain.ResourceSeed), string(domain.ResourcePath)} {
		if _, ok := inv[kind]; !ok {
			inv[kind] = float64(0)
		}
	}
	return nil
}

// migrate walks the ordered chain from the document's version up to the
// current schema version. Unknown or future versions are corrupt.
func migrate(doc map[string]interface{}, from int) (int, error) {
	if from < 1 || from > domain.CurrentSchemaVersion {
		return 0, fmt.Errorf("%w: unsupported schema version %d", domain.ErrCorruptState, from)
	}

	steps := 0
	for v := from; v < domain.CurrentSchemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return steps, fmt.Errorf("%w: no migration from version %d", domain.ErrCorruptState, v)
		}
		if err := step(doc); err != nil {
			return steps, err
		}
		steps++
	}
	doc["schema_version"] = float64(domain.CurrentSchemaVersion)
	return steps, nil
}
