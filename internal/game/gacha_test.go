package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapdungeon/internal/catalog"
)

func TestSummonSingleSpendsGems(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 150

	res, err := e.SummonSingle()
	require.NoError(t, err)
	assert.Equal(t, int64(50), e.State().Gems)
	assert.NotEmpty(t, res.HeroID)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, int64(1), e.State().Stats[StatSummons])

	_, err = e.SummonSingle()
	require.ErrorIs(t, err, ErrNotEnoughGems)
}

func TestSummonMultiDiscountsOnePull(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 900

	out, err := e.SummonMulti()
	require.NoError(t, err)
	assert.Len(t, out, 10)
	assert.Zero(t, e.State().Gems)
	assert.Equal(t, int64(10), e.State().Stats[StatSummons])
}

func TestDuplicateSummonLevelsHero(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 1 << 40

	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		res, err := e.SummonSingle()
		require.NoError(t, err)
		seen[res.HeroID]++
		assert.Equal(t, seen[res.HeroID], res.Level)
		assert.Equal(t, seen[res.HeroID] > 1, res.Duplicate)
	}
}

func TestHardPityForcesLegendary(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 1 << 40
	e.State().GachaPity = e.cfg.GachaHardPity - 1

	res, err := e.SummonSingle()
	require.NoError(t, err)
	assert.Equal(t, catalog.RarityLegendary, res.Rarity)
	assert.Zero(t, e.State().GachaPity)
}

func TestNaturalLegendaryKeepsPityCounter(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 1 << 40

	// Force every roll legendary without touching the hard ceiling.
	e.catalog.GachaRates[catalog.RarityLegendary] = 100
	e.State().GachaPity = 5

	res, err := e.SummonSingle()
	require.NoError(t, err)
	assert.Equal(t, catalog.RarityLegendary, res.Rarity)
	assert.Equal(t, 6, e.State().GachaPity)
}

func TestPityResetsOnlyAtHardCeiling(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 1 << 40

	resets := 0
	for i := 0; i < 300; i++ {
		before := e.State().GachaPity
		_, err := e.SummonSingle()
		require.NoError(t, err)
		if e.State().GachaPity == 0 {
			// The counter only returns to zero off the ceiling.
			assert.Equal(t, e.cfg.GachaHardPity-1, before)
			resets++
		} else {
			assert.Equal(t, before+1, e.State().GachaPity)
		}
	}
	assert.Equal(t, 300/e.cfg.GachaHardPity, resets)
}

func TestSoftPityFloorsEveryTenthPull(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 1 << 40

	for i := 0; i < 300; i++ {
		res, err := e.SummonSingle()
		require.NoError(t, err)
		pity := e.State().GachaPity
		if pity != 0 && pity%e.cfg.GachaSoftPity == 0 {
			r := e.catalog.RarityByID(res.Rarity)
			require.NotNil(t, r)
			assert.GreaterOrEqual(t, r.Tier, 3, "soft pity pull must be at least rare")
		}
	}
}

func TestToggleBattleHeroRosterCap(t *testing.T) {
	e, _ := newTestEngine(t)

	require.ErrorIs(t, e.ToggleBattleHero("militia"), ErrNotFound)

	ids := []string{"militia", "torchbearer", "slinger", "monk", "pikeman", "alchemist", "valkyrie"}
	for _, id := range ids {
		e.State().SummonedHeroes[id] = 1
	}
	for _, id := range ids[:6] {
		require.NoError(t, e.ToggleBattleHero(id))
	}
	require.ErrorIs(t, e.ToggleBattleHero("valkyrie"), ErrRosterFull)

	// Benching frees a slot.
	require.NoError(t, e.ToggleBattleHero("militia"))
	require.NoError(t, e.ToggleBattleHero("valkyrie"))
}

func TestBenchedHeroesContributeNoDPS(t *testing.T) {
	e, _ := newTestEngine(t)

	e.State().SummonedHeroes["militia"] = 2
	assert.Zero(t, e.TotalDPS())

	require.NoError(t, e.ToggleBattleHero("militia"))
	assert.Equal(t, 20.0, e.TotalDPS()) // 10 base DPS * level 2
}
