package game

import (
	"fmt"
	"math"
)

// TowerInfo is the query view of the tower sub-game.
type TowerInfo struct {
	CurrentFloor  int     `json:"current_floor"`
	MaxFloor      int     `json:"max_floor"`
	AttemptsLeft  int     `json:"attempts_left"`
	ExtraAttempts int     `json:"extra_attempts"`
	InProgress    bool    `json:"in_progress"`
	BossHP        float64 `json:"boss_hp"`
	BossMaxHP     float64 `json:"boss_max_hp"`
	TimeLeft      float64 `json:"time_left"`
	NextMedals    int64   `json:"next_medals"`
}

// towerBossHP is the per-floor boss HP curve.
func (e *Engine) towerBossHP(floor int) float64 {
	if floor < 1 {
		floor = 1
	}
	return e.cfg.TowerBossBaseHP * math.Pow(e.cfg.TowerBossHPGrowth, float64(floor-1))
}

// towerMedals is the payout for clearing a floor; it steps up every
// few floors.
func (e *Engine) towerMedals(floor int) int64 {
	step := e.cfg.TowerMedalPerFloors
	if step <= 0 {
		step = 1
	}
	return e.cfg.TowerMedalBase * int64(1+(floor-1)/step)
}

// ensureTowerAttempts resets the daily attempt counter on the first
// touch of a new day. Purchased extra attempts carry over.
func (e *Engine) ensureTowerAttempts() {
	today := e.today()
	if e.state.Tower.AttemptsDate != today {
		e.state.Tower.AttemptsDate = today
		e.state.Tower.AttemptsUsed = 0
	}
}

func (e *Engine) towerAttemptsLeft() int {
	e.ensureTowerAttempts()
	left := e.cfg.TowerDailyAttempts - e.state.Tower.AttemptsUsed
	if left < 0 {
		left = 0
	}
	return left
}

// StartTowerChallenge consumes an attempt and spawns the boss for the
// current floor. Daily attempts are spent before purchased ones.
func (e *Engine) StartTowerChallenge() error {
	t := &e.state.Tower
	if t.InProgress {
		return ErrTowerBusy
	}
	e.ensureTowerAttempts()
	switch {
	case t.AttemptsUsed < e.cfg.TowerDailyAttempts:
		t.AttemptsUsed++
	case t.ExtraAttempts > 0:
		t.ExtraAttempts--
	default:
		return ErrNoAttempts
	}

	hp := e.towerBossHP(t.CurrentFloor)
	t.InProgress = true
	t.BossMaxHP = hp
	t.BossHP = hp
	t.TimeLeft = e.cfg.TowerTimeLimitSec
	e.bump(StatTowerAttempts, 1)
	return nil
}

// TapTowerBoss lands one manual hit on the tower boss. Tower combat
// reuses the main-game damage numbers but touches none of the main
// encounter state.
func (e *Engine) TapTowerBoss() error {
	t := &e.state.Tower
	if !t.InProgress {
		return ErrTowerIdle
	}
	dmg := e.TapDamage()
	if crit, mult := e.rollCritical(); crit {
		dmg *= mult
	}
	t.BossHP -= dmg
	if t.BossHP <= 0 {
		e.towerDefeat()
	}
	return nil
}

// tickTower drains the attempt timer and applies passive DPS while an
// attempt runs. Like the main loop, a kill in the same slice as the
// timeout wins.
func (e *Engine) tickTower(delta float64) {
	t := &e.state.Tower
	if !t.InProgress {
		return
	}
	if dps := e.TotalDPS(); dps > 0 {
		t.BossHP -= dps * delta
		if t.BossHP <= 0 {
			e.towerDefeat()
			return
		}
	}
	t.TimeLeft -= delta
	if t.TimeLeft <= 0 {
		e.towerFail()
	}
}

func (e *Engine) towerDefeat() {
	t := &e.state.Tower
	floor := t.CurrentFloor
	medals := e.towerMedals(floor)

	t.InProgress = false
	t.BossHP = 0
	t.TimeLeft = 0
	t.CurrentFloor++
	if t.CurrentFloor-1 > t.MaxFloor {
		t.MaxFloor = t.CurrentFloor - 1
		e.checkAchievements()
	}
	e.state.TowerMedals += medals
	e.emit(EventTowerDefeated, map[string]any{
		"floor":  floor,
		"medals": medals,
	})
}

func (e *Engine) towerFail() {
	t := &e.state.Tower
	t.InProgress = false
	t.BossHP = 0
	t.TimeLeft = 0
	e.emit(EventTowerFailed, map[string]any{"floor": t.CurrentFloor})
}

// AbandonTower forfeits the running attempt. The attempt stays spent.
func (e *Engine) AbandonTower() error {
	if !e.state.Tower.InProgress {
		return ErrTowerIdle
	}
	e.towerFail()
	return nil
}

// BuyExtraAttempt trades gems for one more tower attempt today.
func (e *Engine) BuyExtraAttempt() error {
	if e.state.Gems < e.cfg.ExtraAttemptGems {
		return ErrNotEnoughGems
	}
	e.state.Gems -= e.cfg.ExtraAttemptGems
	e.state.Tower.ExtraAttempts++
	return nil
}

// PurchaseTowerShopItem buys a permanent buff with tower medals.
func (e *Engine) PurchaseTowerShopItem(id string) error {
	item := e.catalog.TowerShopItemByID(id)
	if item == nil {
		return fmt.Errorf("tower shop item %q: %w", id, ErrNotFound)
	}
	if item.Limit > 0 && e.state.TowerShopPurchases[id] >= item.Limit {
		return ErrLimitReached
	}
	if e.state.TowerMedals < item.Cost {
		return ErrNotEnoughMedals
	}
	e.state.TowerMedals -= item.Cost
	e.state.TowerShopPurchases[id]++
	return nil
}

// Tower returns the current tower view.
func (e *Engine) Tower() TowerInfo {
	t := e.state.Tower
	return TowerInfo{
		CurrentFloor:  t.CurrentFloor,
		MaxFloor:      t.MaxFloor,
		AttemptsLeft:  e.towerAttemptsLeft(),
		ExtraAttempts: t.ExtraAttempts,
		InProgress:    t.InProgress,
		BossHP:        math.Max(t.BossHP, 0),
		BossMaxHP:     t.BossMaxHP,
		TimeLeft:      math.Max(t.TimeLeft, 0),
		NextMedals:    e.towerMedals(t.CurrentFloor),
	}
}
