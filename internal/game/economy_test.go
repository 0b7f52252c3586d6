package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeHeroCostCurve(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gold = 100

	cost, err := e.HeroCost("squire")
	require.NoError(t, err)
	assert.Equal(t, int64(10), cost)

	require.NoError(t, e.UpgradeHero("squire"))
	assert.Equal(t, int64(90), e.State().Gold)
	assert.Equal(t, 1, e.State().HeroLevels["squire"])

	cost, err = e.HeroCost("squire")
	require.NoError(t, err)
	assert.Equal(t, int64(10), cost) // floor(10 * 1.07)

	require.NoError(t, e.UpgradeHero("squire"))
	cost, err = e.HeroCost("squire")
	require.NoError(t, err)
	assert.Equal(t, int64(11), cost) // floor(10 * 1.07^2)
}

func TestUpgradeHeroInsufficientGold(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gold = 5

	require.ErrorIs(t, e.UpgradeHero("squire"), ErrNotEnoughGold)
	assert.Equal(t, int64(5), e.State().Gold)
	assert.Zero(t, e.State().HeroLevels["squire"])
}

func TestUpgradeUnknownHero(t *testing.T) {
	e, _ := newTestEngine(t)
	require.ErrorIs(t, e.UpgradeHero("nobody"), ErrNotFound)
}

func TestUpgradeArtifactSpendsSouls(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Souls = 100

	require.NoError(t, e.UpgradeArtifact("whetstone"))
	assert.Equal(t, int64(95), e.State().Souls)
	assert.Equal(t, 1, e.State().ArtifactLevels["whetstone"])

	// One artifact level feeds straight into tap damage.
	assert.Equal(t, 1.0, e.TapDamage()) // floor(1 * 1.10)
	e.State().ArtifactLevels["whetstone"] = 10
	assert.Equal(t, 2.0, e.TapDamage()) // floor(1 * 2.0)
}

func TestUpgradeArtifactMaxLevel(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Souls = 1 << 60
	e.State().ArtifactLevels["hourglass"] = 15

	require.ErrorIs(t, e.UpgradeArtifact("hourglass"), ErrMaxLevel)
}

func TestDailyBonusOncePerDay(t *testing.T) {
	e, clock := newTestEngine(t)

	gold, gems, err := e.ClaimDailyBonus()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), gold)
	assert.Equal(t, int64(30), gems)

	_, _, err = e.ClaimDailyBonus()
	require.ErrorIs(t, err, ErrAlreadyClaimed)

	clock.Advance(24 * time.Hour)
	_, _, err = e.ClaimDailyBonus()
	require.NoError(t, err)
}

func TestDailyBonusIncludesWeeklyPassStipend(t *testing.T) {
	e, clock := newTestEngine(t)
	e.State().Gems = 100

	require.NoError(t, e.PurchaseWeeklyPass("w_gem"))
	assert.Zero(t, e.State().Gems)

	_, gems, err := e.ClaimDailyBonus()
	require.NoError(t, err)
	assert.Equal(t, int64(60), gems) // 30 base + 30 pass

	// Past the pass window the stipend stops.
	clock.Advance(8 * 24 * time.Hour)
	_, gems, err = e.ClaimDailyBonus()
	require.NoError(t, err)
	assert.Equal(t, int64(30), gems)
}

func TestOpenChestsDrainsStock(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().ChestStock = 5

	gold, _, _, err := e.OpenChests()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, gold, int64(5*50))
	assert.Zero(t, e.State().ChestStock)

	_, _, _, err = e.OpenChests()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPurchaseSpecialPackLimit(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Gems = 1000

	require.NoError(t, e.PurchaseSpecialPack("s_starter"))
	assert.Equal(t, int64(950), e.State().Gems)
	assert.Equal(t, int64(10000), e.State().Gold)
	assert.Len(t, e.State().Inventory, 1)

	require.ErrorIs(t, e.PurchaseSpecialPack("s_starter"), ErrLimitReached)
}

func TestPurchaseGemPack(t *testing.T) {
	e, _ := newTestEngine(t)

	total, err := e.PurchaseGemPack("g_medium")
	require.NoError(t, err)
	assert.Equal(t, int64(600), total)
	assert.Equal(t, int64(600), e.State().Gems)
}
