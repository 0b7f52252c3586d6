package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTowerAttemptsPerDay(t *testing.T) {
	e, clock := newTestEngine(t)

	for i := 0; i < e.cfg.TowerDailyAttempts; i++ {
		require.NoError(t, e.StartTowerChallenge())
		require.NoError(t, e.AbandonTower())
	}
	require.ErrorIs(t, e.StartTowerChallenge(), ErrNoAttempts)
	assert.Equal(t, int64(3), e.State().Stats[StatTowerAttempts])

	clock.Advance(24 * time.Hour)
	require.NoError(t, e.StartTowerChallenge())
}

func TestTowerExtraAttempts(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().Tower.AttemptsUsed = e.cfg.TowerDailyAttempts
	e.State().Tower.AttemptsDate = e.today()

	require.ErrorIs(t, e.StartTowerChallenge(), ErrNoAttempts)

	require.ErrorIs(t, e.BuyExtraAttempt(), ErrNotEnoughGems)
	e.State().Gems = 50
	require.NoError(t, e.BuyExtraAttempt())
	require.NoError(t, e.StartTowerChallenge())
	assert.Zero(t, e.State().Tower.ExtraAttempts)
}

func TestTowerSingleAttemptAtATime(t *testing.T) {
	e, _ := newTestEngine(t)

	require.ErrorIs(t, e.TapTowerBoss(), ErrTowerIdle)
	require.ErrorIs(t, e.AbandonTower(), ErrTowerIdle)

	require.NoError(t, e.StartTowerChallenge())
	require.ErrorIs(t, e.StartTowerChallenge(), ErrTowerBusy)

	info := e.Tower()
	assert.True(t, info.InProgress)
	assert.Equal(t, e.cfg.TowerBossBaseHP, info.BossMaxHP)
	assert.Equal(t, e.cfg.TowerTimeLimitSec, info.TimeLeft)
}

func TestTowerDefeatAdvancesFloorAndPaysMedals(t *testing.T) {
	e, _ := newTestEngine(t)

	require.NoError(t, e.StartTowerChallenge())
	e.State().Tower.BossHP = 1
	require.NoError(t, e.TapTowerBoss())

	s := e.State()
	assert.False(t, s.Tower.InProgress)
	assert.Equal(t, 2, s.Tower.CurrentFloor)
	assert.Equal(t, 1, s.Tower.MaxFloor)
	assert.Equal(t, int64(10), s.TowerMedals)

	// The next floor's boss is tougher.
	assert.InDelta(t, e.cfg.TowerBossBaseHP*e.cfg.TowerBossHPGrowth, e.towerBossHP(2), 1e-9)
}

func TestTowerMedalPayoutStepsUp(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, int64(10), e.towerMedals(1))
	assert.Equal(t, int64(10), e.towerMedals(5))
	assert.Equal(t, int64(20), e.towerMedals(6))
	assert.Equal(t, int64(30), e.towerMedals(11))
}

func TestTowerTimeoutFailsWithoutFloorLoss(t *testing.T) {
	e, _ := newTestEngine(t)

	failed := 0
	e.Events().Subscribe(func(ev Event) {
		if ev.Type == EventTowerFailed {
			failed++
		}
	})

	require.NoError(t, e.StartTowerChallenge())
	e.Tick(e.cfg.TowerTimeLimitSec + 1)

	assert.Equal(t, 1, failed)
	assert.False(t, e.State().Tower.InProgress)
	assert.Equal(t, 1, e.State().Tower.CurrentFloor)
	assert.Zero(t, e.State().TowerMedals)
}

func TestTowerDPSKillBeatsTimeout(t *testing.T) {
	e, _ := newTestEngine(t)
	e.State().CompanionLevels["fairy"] = 10_000_000

	require.NoError(t, e.StartTowerChallenge())
	e.Tick(e.cfg.TowerTimeLimitSec + 1)

	assert.Equal(t, 2, e.State().Tower.CurrentFloor)
}

func TestTowerIsolatedFromMainProgression(t *testing.T) {
	e, _ := newTestEngine(t)

	stage := e.State().CurrentStage
	mainHP := e.CurrentMonster().CurrentHP

	require.NoError(t, e.StartTowerChallenge())
	require.NoError(t, e.TapTowerBoss())

	assert.Equal(t, stage, e.State().CurrentStage)
	assert.Equal(t, mainHP, e.CurrentMonster().CurrentHP)
}

func TestTowerShopPurchaseLimits(t *testing.T) {
	e, _ := newTestEngine(t)

	require.ErrorIs(t, e.PurchaseTowerShopItem("t_tap"), ErrNotEnoughMedals)

	e.State().TowerMedals = 1000
	for i := 0; i < 10; i++ {
		require.NoError(t, e.PurchaseTowerShopItem("t_tap"))
	}
	require.ErrorIs(t, e.PurchaseTowerShopItem("t_tap"), ErrLimitReached)
	assert.Equal(t, int64(500), e.State().TowerMedals)

	// Ten stacks of +10% tap damage double the base tap.
	assert.Equal(t, 2.0, e.TapDamage())
}
