package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	// Rarity ladder is ordered highest first, with a catch-all last rung.
	require.NotEmpty(t, c.Rarities)
	for i := 1; i < len(c.Rarities); i++ {
		assert.Greater(t, c.Rarities[i-1].Tier, c.Rarities[i].Tier)
	}
	assert.Equal(t, RarityCommon, c.Rarities[len(c.Rarities)-1].ID)

	// Ids are unique within each table the engine looks things up in.
	seen := map[string]bool{}
	for _, h := range c.Heroes {
		assert.False(t, seen[h.ID], "duplicate hero id %q", h.ID)
		seen[h.ID] = true
	}
	seen = map[string]bool{}
	for _, g := range c.GachaRoster {
		assert.False(t, seen[g.ID], "duplicate gacha hero id %q", g.ID)
		seen[g.ID] = true
	}

	// Every stage resolves to a world; high stages fall back to the last.
	for _, stage := range []int{1, 25, 500, 100000} {
		assert.NotNil(t, c.WorldForStage(stage), "stage %d has no world", stage)
	}

	// Gacha rates cover the non-common rarities.
	for _, id := range []string{RarityLegendary, RarityEpic, RarityRare, RarityUncommon} {
		assert.Contains(t, c.GachaRates, id)
	}
}

func TestLoadPartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
heroes:
  - id: warlord
    name: Warlord
    base_damage: 3
    base_cost: 25
    cost_growth: 1.1
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	require.Len(t, c.Heroes, 1)
	assert.Equal(t, "warlord", c.Heroes[0].ID)
	// Untouched tables keep the built-in content.
	assert.Equal(t, Default().Monsters, c.Monsters)
	assert.Equal(t, Default().Rarities, c.Rarities)
}

func TestLoadRejectsDanglingReferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
worlds:
  - id: void
    name: The Void
    min_stage: 1
    monsters: ["No Such Beast"]
`), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown monster")
}
