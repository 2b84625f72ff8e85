package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// displayOverrides holds kinds whose label is not a simple title-cased form
var displayOverrides = map[domain.ResourceKind]string{
	domain.ResourceSunlight: "Sunlight",
	domain.ResourceCoin:     "Coin",
}

// DisplayName returns the human-friendly label for an inventory kind, used in
// snapshots and reward messages.
func DisplayName(kind domain.ResourceKind) string {
	if label, ok := displayOverrides[kind]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(string(kind), "_", " "))
}

// Labels returns the full kind → label mapping for a snapshot.
func Labels() map[domain.ResourceKind]string {
	labels := make(map[domain.ResourceKind]string, len(domain.ResourceKinds))
	for _, k := range domain.ResourceKinds {
		labels[k] = DisplayName(k)
	}
	return labels
}

// ThemeDisplayName returns the human-friendly label for a theme id.
func ThemeDisplayName(theme string) string {
	return titleCaser.String(strings.ReplaceAll(theme, "_", " "))
}
