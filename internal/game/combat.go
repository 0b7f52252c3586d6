package game

import (
	"math"

	"tapdungeon/internal/catalog"
)

// bonus sums every percent (or point) source for one bonus kind:
// artifacts, skill-tree nodes, active timed effects, tower shop buffs
// and equipped gear.
func (e *Engine) bonus(kind string) float64 {
	total := 0.0
	for id, level := range e.state.ArtifactLevels {
		if level <= 0 {
			continue
		}
		if a := e.catalog.ArtifactByID(id); a != nil && a.Effect.Kind == kind {
			total += a.Effect.Value * float64(level)
		}
	}
	for id, level := range e.state.SkillTreeLevels {
		if level <= 0 {
			continue
		}
		if n := e.catalog.TreeNode(id); n != nil && n.Effect.Kind == kind {
			total += n.Effect.Value * float64(level)
		}
	}
	now := e.now()
	for _, eff := range e.state.ActiveEffects {
		if eff.Kind == kind && now.Before(eff.Expires) {
			total += eff.Value
		}
	}
	for id, count := range e.state.TowerShopPurchases {
		if count <= 0 {
			continue
		}
		if item := e.catalog.TowerShopItemByID(id); item != nil && item.Effect.Kind == kind {
			total += item.Effect.Value * float64(count)
		}
	}
	for _, item := range e.state.Equipped {
		if item.Stat == kind {
			total += item.Value
		}
	}
	return total
}

// TapDamage is the damage of one manual tap, before any critical roll.
func (e *Engine) TapDamage() float64 {
	base := 1.0
	for id, level := range e.state.HeroLevels {
		if level <= 0 {
			continue
		}
		if h := e.catalog.HeroByID(id); h != nil {
			base += h.BaseDamage * float64(level)
		}
	}
	if w, ok := e.state.Equipped[catalog.SlotWeapon]; ok && w.Stat == catalog.KindTapFlat {
		base += w.Value
	}
	mult := 1 + e.bonus(catalog.KindTapPct)/100
	return math.Floor(base * mult)
}

// TotalDPS is the passive damage per second: companions plus the
// fielded battle roster. Owned-but-benched gacha heroes contribute
// nothing.
func (e *Engine) TotalDPS() float64 {
	base := 0.0
	for id, level := range e.state.CompanionLevels {
		if level <= 0 {
			continue
		}
		if c := e.catalog.CompanionByID(id); c != nil {
			base += c.BaseDPS * float64(level)
		}
	}
	for _, id := range e.state.BattleRoster {
		level := e.state.SummonedHeroes[id]
		if level <= 0 {
			continue
		}
		if g := e.catalog.GachaHeroByID(id); g != nil {
			base += g.BaseDPS * float64(level)
		}
	}
	mult := 1 + e.bonus(catalog.KindDPSPct)/100
	return base * mult
}

// CriticalChance is the percent chance of a critical tap, capped at 100.
func (e *Engine) CriticalChance() float64 {
	c := e.cfg.BaseCritChancePct + e.bonus(catalog.KindCritChance)
	return math.Min(c, 100)
}

// CriticalDamage is the critical damage percent (200 = double), uncapped.
func (e *Engine) CriticalDamage() float64 {
	return e.cfg.BaseCritDamagePct + e.bonus(catalog.KindCritDamage)
}

func (e *Engine) rollCritical() (bool, float64) {
	if e.chance(e.CriticalChance()) {
		return true, e.CriticalDamage() / 100
	}
	return false, 1
}

// goldMultiplier stacks the gold bonus percent with lucky time.
func (e *Engine) goldMultiplier() float64 {
	mult := 1 + e.bonus(catalog.KindGoldPct)/100
	if e.luckyActive() {
		mult *= e.cfg.LuckyGoldMult
	}
	return mult
}

// Tap applies one manual hit to the current monster.
func (e *Engine) Tap() {
	e.bump(StatTaps, 1)
	if e.monster == nil {
		return
	}
	dmg := e.TapDamage()
	crit, mult := e.rollCritical()
	dmg *= mult
	e.applyDamage(dmg, crit)
}

// applyDamage reduces the live monster's HP and triggers kill
// resolution exactly once when HP crosses zero. Reentrant calls after
// the monster is retired are no-ops.
func (e *Engine) applyDamage(amount float64, critical bool) {
	m := e.monster
	if m == nil || m.Phase != MonsterAlive || amount <= 0 {
		return
	}
	m.CurrentHP -= amount
	e.emit(EventDamageDealt, map[string]any{
		"amount":   amount,
		"critical": critical,
		"hp":       math.Max(m.CurrentHP, 0),
		"max_hp":   m.MaxHP,
	})
	if m.CurrentHP <= 0 {
		e.killMonster()
	}
}
