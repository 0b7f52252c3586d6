package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tapdungeon/internal/catalog"
)

// SkillCooldownLeft reports the seconds until a skill is usable again.
func (e *Engine) SkillCooldownLeft(id string) float64 {
	until, ok := e.state.SkillCooldowns[id]
	if !ok {
		return 0
	}
	left := until.Sub(e.now()).Seconds()
	if left < 0 {
		return 0
	}
	return left
}

// UseSkill fires an active skill. Instant skills (duration zero)
// resolve immediately; timed ones register a buff that bonus() picks
// up until it expires.
func (e *Engine) UseSkill(id string) error {
	s := e.catalog.SkillByID(id)
	if s == nil {
		return fmt.Errorf("skill %q: %w", id, ErrNotFound)
	}
	now := e.now()
	if until, ok := e.state.SkillCooldowns[id]; ok && now.Before(until) {
		return ErrOnCooldown
	}
	e.state.SkillCooldowns[id] = now.Add(time.Duration(s.CooldownSec * float64(time.Second)))

	if s.DurationSec <= 0 {
		if s.Effect.Kind == catalog.KindNuke {
			e.applyDamage(e.TapDamage()*s.Effect.Value, false)
		}
	} else {
		e.state.ActiveEffects = append(e.state.ActiveEffects, ActiveEffect{
			ID:      uuid.NewString(),
			Kind:    s.Effect.Kind,
			Value:   s.Effect.Value,
			Expires: now.Add(time.Duration(s.DurationSec * float64(time.Second))),
		})
	}
	e.bump(StatSkillsUsed, 1)
	return nil
}

// AvailableSkillPoints is the unspent skill point balance.
func (e *Engine) AvailableSkillPoints() int {
	return e.state.SkillPointsEarned - e.state.SkillPointsSpent
}

// UpgradeSkillTree spends skill points to raise a passive node one
// level. Prerequisite nodes gate by level, not just presence.
func (e *Engine) UpgradeSkillTree(id string) error {
	n := e.catalog.TreeNode(id)
	if n == nil {
		return fmt.Errorf("tree node %q: %w", id, ErrNotFound)
	}
	if e.state.SkillTreeLevels[id] >= n.MaxLevel {
		return ErrMaxLevel
	}
	if n.Requires != "" {
		need := n.RequiresLevel
		if need <= 0 {
			need = 1
		}
		if e.state.SkillTreeLevels[n.Requires] < need {
			return ErrNotUnlocked
		}
	}
	if e.AvailableSkillPoints() < n.CostPerLevel {
		return ErrNotEnoughPoints
	}
	e.state.SkillPointsSpent += n.CostPerLevel
	e.state.SkillTreeLevels[id]++
	return nil
}
