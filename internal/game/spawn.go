package game

import (
	"math"

	"tapdungeon/internal/catalog"
)

// BaseMonsterHP is the exponential HP curve. The anchor entry comes
// from the stage bracket; growth compounds per stage.
func (e *Engine) BaseMonsterHP(stage int) float64 {
	if stage < 1 {
		stage = 1
	}
	bracket := (stage - 1) / e.cfg.StageBracketSize
	if bracket >= len(e.catalog.Monsters) {
		bracket = len(e.catalog.Monsters) - 1
	}
	base := e.catalog.Monsters[bracket].BaseHP
	return base * math.Pow(e.cfg.MonsterHPScaling, float64(stage-1))
}

// bossTimeLimit is the countdown granted for a boss fight, extended by
// gear, artifacts and skill-tree bonuses.
func (e *Engine) bossTimeLimit() float64 {
	return e.cfg.BossTimeLimitSec + e.bonus(catalog.KindBossTime)
}

func (e *Engine) isBossStage(stage int) bool {
	return stage%e.cfg.BossEveryStages == 0
}

// SpawnMonster materializes the next encounter for the current stage.
// Exactly one live monster exists at a time.
func (e *Engine) SpawnMonster() {
	stage := e.state.CurrentStage

	if e.isBossStage(stage) {
		idx := (stage/e.cfg.BossEveryStages - 1) % len(e.catalog.Bosses)
		if idx < 0 {
			idx = 0
		}
		b := e.catalog.Bosses[idx]
		hp := e.BaseMonsterHP(stage) * b.HPMult
		e.monster = &Monster{
			Name:      b.Name,
			Icon:      b.Icon,
			Color:     b.Color,
			MaxHP:     hp,
			CurrentHP: hp,
			IsBoss:    true,
			RareMult:  1,
			Trait:     catalog.Trait{GoldMult: 1, DropMult: 1},
			Phase:     MonsterAlive,
		}
		e.bossTimeLeft = e.bossTimeLimit()
		e.state.DiscoveredBosses[b.Name] = true
		e.emitSpawn()
		return
	}

	// Chest stock is an extra roll, not a replacement spawn.
	if e.chance(e.cfg.ChestSpawnPct) {
		e.state.ChestStock++
		e.emit(EventChestCollected, map[string]any{"stock": e.state.ChestStock})
	}

	def := e.pickMonster(stage)
	rare := e.chance(e.cfg.RareSpawnPct)
	rareMult := 1.0
	color := def.Color
	if rare {
		rareMult = e.uniform(e.cfg.RareRewardMin, e.cfg.RareRewardMax)
		color = "#e8c34a"
	}
	hp := e.BaseMonsterHP(stage)
	e.monster = &Monster{
		Name:      def.Name,
		Icon:      def.Icon,
		Color:     color,
		MaxHP:     hp,
		CurrentHP: hp,
		IsRare:    rare,
		RareMult:  rareMult,
		Trait:     def.Trait,
		Phase:     MonsterAlive,
	}
	e.bossTimeLeft = 0
	e.state.DiscoveredMonsters[def.Name] = true
	e.emitSpawn()
}

// pickMonster draws from the current world's roster, falling back to a
// stage-bracket slice of the full catalog when the roster does not
// resolve.
func (e *Engine) pickMonster(stage int) *catalog.Monster {
	var pool []*catalog.Monster
	if w := e.catalog.WorldForStage(stage); w != nil {
		for _, name := range w.Monsters {
			if m := e.catalog.MonsterByName(name); m != nil {
				pool = append(pool, m)
			}
		}
	}
	if len(pool) == 0 {
		bracket := (stage - 1) / e.cfg.StageBracketSize
		hi := bracket + 1
		if hi > len(e.catalog.Monsters) {
			hi = len(e.catalog.Monsters)
		}
		lo := hi - 4
		if lo < 0 {
			lo = 0
		}
		for i := lo; i < hi; i++ {
			pool = append(pool, &e.catalog.Monsters[i])
		}
	}
	return pool[e.rng.Intn(len(pool))]
}

func (e *Engine) emitSpawn() {
	m := e.monster
	e.emit(EventMonsterSpawned, map[string]any{
		"name":    m.Name,
		"icon":    m.Icon,
		"color":   m.Color,
		"max_hp":  m.MaxHP,
		"is_boss": m.IsBoss,
		"is_rare": m.IsRare,
		"stage":   e.state.CurrentStage,
	})
}

// killMonster retires the current monster and runs its side effects.
// Idempotent: the phase guard makes any reentrant call a no-op. Each
// side-effect phase is isolated so a fault in one cannot leave the
// monster un-retired or starve the others.
func (e *Engine) killMonster() {
	m := e.monster
	if m == nil || m.Phase != MonsterAlive {
		return
	}
	m.Phase = MonsterRetired

	safely(func() {
		e.bump(StatKills, 1)
		if m.IsBoss {
			e.bump(StatBossKills, 1)
		}
	})

	var gold int64
	safely(func() {
		reward := m.MaxHP * e.cfg.GoldPerHPRatio
		if m.IsBoss {
			reward *= e.cfg.BossGoldMultiplier
		}
		reward *= e.goldMultiplier() * m.Trait.GoldMult * m.RareMult
		gold = floor64(reward)
		e.creditGold(gold)
	})

	var drop *Equipment
	safely(func() {
		drop = e.rollDrop(m)
	})

	safely(func() {
		payload := map[string]any{
			"name":    m.Name,
			"is_boss": m.IsBoss,
			"gold":    gold,
			"stage":   e.state.CurrentStage,
		}
		if drop != nil {
			payload["drop"] = *drop
		}
		e.emit(EventMonsterKilled, payload)
	})

	e.monster = nil
	e.bossTimeLeft = 0

	if m.IsBoss {
		e.advanceStage()
		return
	}
	e.state.MonstersKilled++
	if e.state.MonstersKilled >= e.cfg.MonstersPerStage {
		e.advanceStage()
		return
	}
	e.SpawnMonster()
}

func (e *Engine) advanceStage() {
	e.state.CurrentStage++
	e.state.MonstersKilled = 0
	if e.state.CurrentStage > e.state.MaxStageReached {
		e.state.MaxStageReached = e.state.CurrentStage
		e.checkAchievements()
	}
	e.SpawnMonster()
}

// onBossTimeout is the principal failure path: the stage rolls back by
// one (never below 1) but the high-water mark is untouched, so world
// and skill unlocks survive the setback.
func (e *Engine) onBossTimeout() {
	m := e.monster
	if m == nil || !m.IsBoss || m.Phase != MonsterAlive {
		return
	}
	m.Phase = MonsterRetired
	e.monster = nil
	e.bossTimeLeft = 0

	if e.state.CurrentStage > 1 {
		e.state.CurrentStage--
	}
	e.state.MonstersKilled = 0
	e.emit(EventBossTimeout, map[string]any{
		"name":  m.Name,
		"stage": e.state.CurrentStage,
	})
	e.SpawnMonster()
}

func (e *Engine) creditGold(n int64) {
	if n <= 0 {
		return
	}
	e.state.Gold += n
	e.state.TotalGoldEarned += n
	e.checkAchievements()
}
