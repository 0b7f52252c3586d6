package game

import (
	"fmt"

	"tapdungeon/internal/catalog"
)

// SummonResult reports one gacha pull.
type SummonResult struct {
	HeroID    string `json:"hero_id"`
	Name      string `json:"name"`
	Rarity    string `json:"rarity"`
	Level     int    `json:"level"`
	Duplicate bool   `json:"duplicate"`
	Pity      int    `json:"pity"`
}

// determineRarity rolls the summon rarity with both pity rails. The
// counter increments every pull; when it reaches the hard ceiling the
// pull is forced legendary and the counter resets. Only the hard
// ceiling resets it: a naturally rolled legendary and the soft-pity
// floor both leave the counter running. Soft pity fires on every Nth
// pull and raises the floor to rare.
func (e *Engine) determineRarity() string {
	e.state.GachaPity++
	if e.state.GachaPity >= e.cfg.GachaHardPity {
		e.state.GachaPity = 0
		return catalog.RarityLegendary
	}

	roll := e.rng.Float64() * 100
	cum := 0.0
	rarity := catalog.RarityCommon
	for _, id := range []string{catalog.RarityLegendary, catalog.RarityEpic, catalog.RarityRare, catalog.RarityUncommon} {
		cum += e.catalog.GachaRates[id]
		if roll < cum {
			rarity = id
			break
		}
	}

	if e.cfg.GachaSoftPity > 0 && e.state.GachaPity%e.cfg.GachaSoftPity == 0 {
		if r := e.catalog.RarityByID(rarity); r != nil && r.Tier < 3 {
			rarity = catalog.RarityRare
		}
	}
	return rarity
}

// pickGachaHero draws uniformly from the heroes of a rarity, walking
// down the ladder when a rarity pool is empty.
func (e *Engine) pickGachaHero(rarity string) *catalog.GachaHero {
	order := []string{rarity, catalog.RarityEpic, catalog.RarityRare, catalog.RarityUncommon, catalog.RarityCommon}
	for _, id := range order {
		var pool []*catalog.GachaHero
		for i := range e.catalog.GachaRoster {
			if e.catalog.GachaRoster[i].Rarity == id {
				pool = append(pool, &e.catalog.GachaRoster[i])
			}
		}
		if len(pool) > 0 {
			return pool[e.rng.Intn(len(pool))]
		}
	}
	return nil
}

// summonOne runs a single already-paid pull.
func (e *Engine) summonOne() SummonResult {
	rarity := e.determineRarity()
	h := e.pickGachaHero(rarity)
	res := SummonResult{Rarity: rarity, Pity: e.state.GachaPity}
	if h == nil {
		return res
	}
	res.HeroID = h.ID
	res.Name = h.Name
	res.Rarity = h.Rarity
	if _, owned := e.state.SummonedHeroes[h.ID]; owned {
		// Duplicates level the hero up instead of stacking copies.
		e.state.SummonedHeroes[h.ID]++
		res.Duplicate = true
	} else {
		e.state.SummonedHeroes[h.ID] = 1
	}
	res.Level = e.state.SummonedHeroes[h.ID]
	e.bump(StatSummons, 1)
	return res
}

// SummonSingle spends gems for one pull.
func (e *Engine) SummonSingle() (SummonResult, error) {
	if e.state.Gems < e.cfg.SummonGemCost {
		return SummonResult{}, ErrNotEnoughGems
	}
	e.state.Gems -= e.cfg.SummonGemCost
	return e.summonOne(), nil
}

// SummonMulti spends gems for a full batch of pulls. The batch price
// gives one pull free.
func (e *Engine) SummonMulti() ([]SummonResult, error) {
	qty := e.cfg.MultiSummonQty
	cost := e.cfg.SummonGemCost * int64(qty-1)
	if e.state.Gems < cost {
		return nil, ErrNotEnoughGems
	}
	e.state.Gems -= cost
	out := make([]SummonResult, 0, qty)
	for i := 0; i < qty; i++ {
		out = append(out, e.summonOne())
	}
	return out, nil
}

// ToggleBattleHero fields or benches a summoned hero. The roster is
// capped; benched heroes keep their levels but contribute no DPS.
func (e *Engine) ToggleBattleHero(id string) error {
	if _, owned := e.state.SummonedHeroes[id]; !owned {
		return fmt.Errorf("hero %q: %w", id, ErrNotFound)
	}
	for i, rid := range e.state.BattleRoster {
		if rid == id {
			e.state.BattleRoster = append(e.state.BattleRoster[:i], e.state.BattleRoster[i+1:]...)
			return nil
		}
	}
	if len(e.state.BattleRoster) >= e.cfg.RosterLimit {
		return ErrRosterFull
	}
	e.state.BattleRoster = append(e.state.BattleRoster, id)
	return nil
}
