package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		kind domain.ResourceKind
		want string
	}{
		{domain.ResourceWater, "Water"},
		{domain.ResourcePlant, "Plant"},
		{domain.ResourceTree, "Tree"},
		{domain.ResourceSunlight, "Sunlight"},
		{domain.ResourceCoin, "Coin"},
		{domain.ResourceSeed, "Seed"},
		{domain.ResourcePath, "Path"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.kind))
	}
}

func TestLabelsCoversAllKinds(t *testing.T) {
	labels := Labels()
	assert.Len(t, labels, len(domain.ResourceKinds))
}

func TestThemeDisplayName(t *testing.T) {
	assert.Equal(t, "Night", ThemeDisplayName("night"))
	assert.Equal(t, "Dark Blue", ThemeDisplayName("dark_blue"))
}
