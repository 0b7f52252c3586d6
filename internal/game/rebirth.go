package game

import (
	"math"
	"time"

	"tapdungeon/internal/catalog"
)

// RebirthResult reports what a rebirth paid out.
type RebirthResult struct {
	Souls       int64 `json:"souls"`
	SkillPoints int   `json:"skill_points"`
	Stage       int   `json:"stage"`
}

// PendingSouls is the soul payout a rebirth would grant right now,
// keyed to the current run's stage so a fresh run starts from zero.
// Each stage past the eligibility floor contributes its own floored
// term; the percent bonus applies once, to the finished sum.
func (e *Engine) PendingSouls() int64 {
	stage := e.state.CurrentStage
	if stage < e.cfg.MinRebirthStage {
		return 0
	}
	var total int64
	for i := 0; i <= stage-e.cfg.MinRebirthStage; i++ {
		total += floor64(e.cfg.SoulsPerStage * math.Pow(e.cfg.SoulsScaling, float64(i)))
	}
	return floor64(float64(total) * (1 + e.bonus(catalog.KindSoulPct)/100))
}

// PendingSkillPoints is how many skill points a rebirth would add: one
// per configured stage span, minus what previous rebirths already paid.
func (e *Engine) PendingSkillPoints() int {
	earned := e.state.MaxStageReached / e.cfg.SkillPointStages
	if earned <= e.state.SkillPointsEarned {
		return 0
	}
	return earned - e.state.SkillPointsEarned
}

// CanRebirth reports rebirth eligibility: the current run must have
// climbed back to the floor, the lifetime high-water mark alone does
// not qualify.
func (e *Engine) CanRebirth() bool {
	return e.state.CurrentStage >= e.cfg.MinRebirthStage
}

// Rebirth converts run progress into souls and skill points and starts
// a fresh run. Gold, stage, kill quota, hero and companion levels,
// chest stock, timed buffs and cooldowns reset. Everything bought with
// meta currencies survives: souls, gems, stones, medals, artifacts,
// equipment, the skill tree, summoned heroes, tower progress, shop
// purchases, collections and lifetime stats. The stage high-water mark
// also survives, so repeated rebirths at the same peak do not pay twice
// for the same stages via skill points.
func (e *Engine) Rebirth() (RebirthResult, error) {
	if !e.CanRebirth() {
		return RebirthResult{}, ErrNotEligible
	}

	souls := e.PendingSouls()
	points := e.PendingSkillPoints()

	e.state.Souls += souls
	e.state.SkillPointsEarned += points

	e.state.Gold = 0
	e.state.CurrentStage = 1
	e.state.MonstersKilled = 0
	e.state.HeroLevels = map[string]int{}
	e.state.CompanionLevels = map[string]int{}
	e.state.ChestStock = 0
	e.state.ActiveEffects = []ActiveEffect{}
	e.state.SkillCooldowns = map[string]time.Time{}
	e.state.Lucky.Active = false

	e.bump(StatRebirths, 1)

	e.monster = nil
	e.bossTimeLeft = 0
	e.SpawnMonster()

	return RebirthResult{Souls: souls, SkillPoints: points, Stage: 1}, nil
}
