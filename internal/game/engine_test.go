package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapdungeon/internal/catalog"
	"tapdungeon/internal/config"
)

var testStart = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(testStart)
	e := New(config.Default(), catalog.Default(), WithClock(clock), WithSeed(42))
	return e, clock
}

func TestNewEngineSpawnsFirstMonster(t *testing.T) {
	e, _ := newTestEngine(t)

	m := e.CurrentMonster()
	require.NotNil(t, m)
	assert.Equal(t, MonsterAlive, m.Phase)
	assert.False(t, m.IsBoss)
	assert.Equal(t, 1, e.State().CurrentStage)
	assert.Positive(t, m.MaxHP)
	assert.Equal(t, m.MaxHP, m.CurrentHP)
}

func TestTapDamageBaseline(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, 1.0, e.TapDamage())

	e.State().Gold = 1000
	require.NoError(t, e.UpgradeHero("squire"))
	assert.Equal(t, 2.0, e.TapDamage())
}

func TestMonsterHPScaling(t *testing.T) {
	e, _ := newTestEngine(t)

	hp1 := e.BaseMonsterHP(1)
	assert.Equal(t, 10.0, hp1)
	assert.InDelta(t, hp1*1.155, e.BaseMonsterHP(2), 1e-9)

	// Stage 11 switches to the second bracket anchor.
	assert.InDelta(t, 12.0*pow(1.155, 10), e.BaseMonsterHP(11), 1e-6)
}

func pow(base float64, n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= base
	}
	return v
}

func TestKillRunsSideEffectsExactlyOnce(t *testing.T) {
	e, _ := newTestEngine(t)

	killed := 0
	e.Events().Subscribe(func(ev Event) {
		if ev.Type == EventMonsterKilled {
			killed++
		}
	})

	m := e.CurrentMonster()
	e.applyDamage(m.MaxHP*100, false)

	assert.Equal(t, 1, killed)
	assert.Equal(t, int64(1), e.State().Stats[StatKills])
	assert.Positive(t, e.State().Gold)
	assert.Equal(t, e.State().Gold, e.State().TotalGoldEarned)

	// A fresh monster is already up.
	require.NotNil(t, e.CurrentMonster())
	assert.Equal(t, MonsterAlive, e.CurrentMonster().Phase)
}

func TestStageAdvancesAfterKillQuota(t *testing.T) {
	e, _ := newTestEngine(t)

	for i := 0; i < e.cfg.MonstersPerStage; i++ {
		require.Equal(t, 1, e.State().CurrentStage)
		e.applyDamage(e.CurrentMonster().MaxHP, false)
	}
	assert.Equal(t, 2, e.State().CurrentStage)
	assert.Equal(t, 0, e.State().MonstersKilled)
	assert.Equal(t, 2, e.State().MaxStageReached)
}

func TestBossStageCadence(t *testing.T) {
	e, _ := newTestEngine(t)

	e.State().CurrentStage = 5
	e.SpawnMonster()
	require.True(t, e.CurrentMonster().IsBoss)
	assert.Equal(t, "Slime King", e.CurrentMonster().Name)
	assert.Equal(t, e.cfg.BossTimeLimitSec, e.BossTimeLeft())

	e.State().CurrentStage = 4
	e.SpawnMonster()
	assert.False(t, e.CurrentMonster().IsBoss)
}

func TestBossKillAdvancesWithoutQuota(t *testing.T) {
	e, _ := newTestEngine(t)

	e.State().CurrentStage = 5
	e.SpawnMonster()
	e.applyDamage(e.CurrentMonster().MaxHP, false)

	assert.Equal(t, 6, e.State().CurrentStage)
	assert.Equal(t, int64(1), e.State().Stats[StatBossKills])
}

func TestBossTimeoutRollsBackOneStage(t *testing.T) {
	e, _ := newTestEngine(t)

	timeouts := 0
	e.Events().Subscribe(func(ev Event) {
		if ev.Type == EventBossTimeout {
			timeouts++
		}
	})

	e.State().CurrentStage = 20
	e.State().MaxStageReached = 20
	e.SpawnMonster()
	require.True(t, e.CurrentMonster().IsBoss)

	e.Tick(e.cfg.BossTimeLimitSec + 1)

	assert.Equal(t, 1, timeouts)
	assert.Equal(t, 19, e.State().CurrentStage)
	assert.Equal(t, 20, e.State().MaxStageReached, "high-water mark survives the setback")
	assert.False(t, e.CurrentMonster().IsBoss)
}

func TestBossTimeoutNeverDropsBelowStageOne(t *testing.T) {
	e, _ := newTestEngine(t)

	e.State().CurrentStage = 1
	e.monster = &Monster{Name: "Slime King", IsBoss: true, MaxHP: 100, CurrentHP: 100, RareMult: 1, Trait: catalog.Trait{GoldMult: 1, DropMult: 1}, Phase: MonsterAlive}
	e.bossTimeLeft = 1

	e.Tick(2)
	assert.Equal(t, 1, e.State().CurrentStage)
}

func TestKillWinsOverTimeoutInSameTick(t *testing.T) {
	e, _ := newTestEngine(t)

	// Enough passive DPS to one-shot the boss inside the tick.
	e.State().CompanionLevels["fairy"] = 10_000_000

	e.State().CurrentStage = 5
	e.SpawnMonster()
	require.True(t, e.CurrentMonster().IsBoss)

	e.Tick(e.cfg.BossTimeLimitSec + 5)

	assert.Equal(t, 6, e.State().CurrentStage)
	assert.Equal(t, int64(1), e.State().Stats[StatBossKills])
}

func TestCriticalChanceCap(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, 5.0, e.CriticalChance())

	// Pile on far more crit chance than the cap allows.
	for i := 0; i < 200; i++ {
		e.state.TowerShopPurchases["t_crit"]++
	}
	assert.Equal(t, 100.0, e.CriticalChance())
	assert.Greater(t, e.CriticalDamage(), 100.0)
}

func TestActiveSkillBuffsTapDamage(t *testing.T) {
	e, clock := newTestEngine(t)

	require.NoError(t, e.UseSkill("war_cry"))
	assert.Equal(t, 2.0, e.TapDamage(), "tap +100% doubles the base tap")

	require.ErrorIs(t, e.UseSkill("war_cry"), ErrOnCooldown)

	// Buff expires, cooldown keeps running.
	clock.Advance(31 * time.Second)
	assert.Equal(t, 1.0, e.TapDamage())
	require.ErrorIs(t, e.UseSkill("war_cry"), ErrOnCooldown)

	clock.Advance(90 * time.Second)
	require.NoError(t, e.UseSkill("war_cry"))
}

func TestNukeSkillDealsInstantDamage(t *testing.T) {
	e, _ := newTestEngine(t)

	m := e.CurrentMonster()
	before := m.CurrentHP
	require.NoError(t, e.UseSkill("meteor"))

	// Meteor hits for 50 taps; the stage-1 monster cannot survive it.
	assert.True(t, m.CurrentHP < before)
	assert.Equal(t, int64(1), e.State().Stats[StatKills])
	assert.Equal(t, int64(1), e.State().Stats[StatSkillsUsed])
}

func TestSkillTreeGating(t *testing.T) {
	e, _ := newTestEngine(t)

	e.State().SkillPointsEarned = 20

	require.ErrorIs(t, e.UpgradeSkillTree("precision"), ErrNotUnlocked)
	for i := 0; i < 5; i++ {
		require.NoError(t, e.UpgradeSkillTree("might"))
	}
	require.NoError(t, e.UpgradeSkillTree("precision"))
	assert.Equal(t, 7, e.State().SkillPointsSpent)
	assert.Equal(t, 13, e.AvailableSkillPoints())
}

func TestPruneEffectsDropsExpiredBuffs(t *testing.T) {
	e, clock := newTestEngine(t)

	require.NoError(t, e.UseSkill("war_cry"))
	require.Len(t, e.State().ActiveEffects, 1)

	clock.Advance(time.Hour)
	e.Tick(0.1)
	assert.Empty(t, e.State().ActiveEffects)
}
