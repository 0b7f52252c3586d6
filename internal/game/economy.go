package game

import (
	"fmt"
	"time"
)

// HeroCost is the gold price of the next hero level.
func (e *Engine) HeroCost(id string) (int64, error) {
	h := e.catalog.HeroByID(id)
	if h == nil {
		return 0, fmt.Errorf("hero %q: %w", id, ErrNotFound)
	}
	return geomCost(h.BaseCost, h.CostGrowth, e.state.HeroLevels[id]), nil
}

// UpgradeHero buys one hero level. Atomic: on any error nothing moved.
func (e *Engine) UpgradeHero(id string) error {
	cost, err := e.HeroCost(id)
	if err != nil {
		return err
	}
	if e.state.Gold < cost {
		return ErrNotEnoughGold
	}
	e.state.Gold -= cost
	e.state.HeroLevels[id]++
	e.bump(StatUpgrades, 1)
	return nil
}

func (e *Engine) CompanionCost(id string) (int64, error) {
	c := e.catalog.CompanionByID(id)
	if c == nil {
		return 0, fmt.Errorf("companion %q: %w", id, ErrNotFound)
	}
	return geomCost(c.BaseCost, c.CostGrowth, e.state.CompanionLevels[id]), nil
}

func (e *Engine) UpgradeCompanion(id string) error {
	cost, err := e.CompanionCost(id)
	if err != nil {
		return err
	}
	if e.state.Gold < cost {
		return ErrNotEnoughGold
	}
	e.state.Gold -= cost
	e.state.CompanionLevels[id]++
	e.bump(StatUpgrades, 1)
	return nil
}

// ArtifactCost is the soul price of the next artifact level.
func (e *Engine) ArtifactCost(id string) (int64, error) {
	a := e.catalog.ArtifactByID(id)
	if a == nil {
		return 0, fmt.Errorf("artifact %q: %w", id, ErrNotFound)
	}
	return geomCost(a.BaseCost, a.CostGrowth, e.state.ArtifactLevels[id]), nil
}

func (e *Engine) UpgradeArtifact(id string) error {
	a := e.catalog.ArtifactByID(id)
	if a == nil {
		return fmt.Errorf("artifact %q: %w", id, ErrNotFound)
	}
	level := e.state.ArtifactLevels[id]
	if a.MaxLevel > 0 && level >= a.MaxLevel {
		return ErrMaxLevel
	}
	cost := geomCost(a.BaseCost, a.CostGrowth, level)
	if e.state.Souls < cost {
		return ErrNotEnoughSouls
	}
	e.state.Souls -= cost
	e.state.ArtifactLevels[id]++
	e.bump(StatUpgrades, 1)
	return nil
}

// ClaimDailyBonus grants the once-per-day login reward, plus the
// weekly pass stipend while a pass is active.
func (e *Engine) ClaimDailyBonus() (gold, gems int64, err error) {
	today := e.today()
	if e.state.LastDailyBonus == today {
		return 0, 0, ErrAlreadyClaimed
	}
	e.state.LastDailyBonus = today
	gold = e.cfg.DailyBonusGold
	gems = e.cfg.DailyBonusGems
	now := e.now()
	for id, expires := range e.state.WeeklyPassExpires {
		if now.Before(expires) {
			if p := e.catalog.WeeklyPassByID(id); p != nil {
				gems += p.DailyGem
			}
		}
	}
	e.creditGold(gold)
	e.state.Gems += gems
	return gold, gems, nil
}

// OpenChests opens the whole treasure chest stock as one batch.
func (e *Engine) OpenChests() (gold, gems int64, lucky int, err error) {
	n := e.state.ChestStock
	if n <= 0 {
		return 0, 0, 0, ErrNotFound
	}
	e.state.ChestStock = 0
	for i := 0; i < n; i++ {
		span := e.cfg.ChestGoldMax - e.cfg.ChestGoldMin
		g := e.cfg.ChestGoldMin
		if span > 0 {
			g += e.rng.Int63n(span + 1)
		}
		gold += floor64(float64(g) * e.goldMultiplier())
		if e.chance(e.cfg.ChestGemPct) {
			gems++
		}
		if e.chance(e.cfg.ChestLuckyPct) {
			lucky++
		}
	}
	e.creditGold(gold)
	e.state.Gems += gems
	e.state.Lucky.Stock += lucky
	e.emit(EventChestsOpened, map[string]any{
		"count": n,
		"gold":  gold,
		"gems":  gems,
		"lucky": lucky,
	})
	if lucky > 0 {
		e.emit(EventLuckyStock, map[string]any{"stock": e.state.Lucky.Stock})
	}
	return gold, gems, lucky, nil
}

// PurchaseGemPack credits a gem bundle. Payment is simulated; the
// command only fails for unknown packs.
func (e *Engine) PurchaseGemPack(id string) (int64, error) {
	p := e.catalog.GemPackByID(id)
	if p == nil {
		return 0, fmt.Errorf("gem pack %q: %w", id, ErrNotFound)
	}
	total := p.Gems + p.Bonus
	e.state.Gems += total
	return total, nil
}

// PurchaseSpecialPack buys a limited bundle with gems.
func (e *Engine) PurchaseSpecialPack(id string) error {
	p := e.catalog.SpecialPackByID(id)
	if p == nil {
		return fmt.Errorf("special pack %q: %w", id, ErrNotFound)
	}
	if p.Limit > 0 && e.state.SpecialPackPurchases[id] >= p.Limit {
		return ErrLimitReached
	}
	if e.state.Gems < p.CostGems {
		return ErrNotEnoughGems
	}
	e.state.Gems -= p.CostGems
	e.state.SpecialPackPurchases[id]++
	e.creditGold(p.Gold)
	e.state.Souls += p.Souls
	if p.Equipment != "" {
		e.grantEquipment(p.Equipment, false)
	}
	return nil
}

// PurchaseWeeklyPass starts (or restarts) a pass window from now.
func (e *Engine) PurchaseWeeklyPass(id string) error {
	p := e.catalog.WeeklyPassByID(id)
	if p == nil {
		return fmt.Errorf("weekly pass %q: %w", id, ErrNotFound)
	}
	if now := e.now(); now.Before(e.state.WeeklyPassExpires[id]) {
		return ErrAlreadyClaimed
	}
	if e.state.Gems < p.CostGems {
		return ErrNotEnoughGems
	}
	e.state.Gems -= p.CostGems
	e.state.WeeklyPassExpires[id] = e.now().Add(time.Duration(e.cfg.WeeklyPassDays) * 24 * time.Hour)
	return nil
}
