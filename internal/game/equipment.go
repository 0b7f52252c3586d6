package game

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"tapdungeon/internal/catalog"
)

// rollRarity walks the rarity ladder highest-first with cumulative
// thresholds; boss kills add each rung's boss bonus. The lowest rung
// is the catch-all.
func (e *Engine) rollRarity(boss bool) *catalog.Rarity {
	roll := e.rng.Float64() * 100
	cum := 0.0
	for i := range e.catalog.Rarities {
		r := &e.catalog.Rarities[i]
		if i == len(e.catalog.Rarities)-1 {
			return r
		}
		pct := r.DropPct
		if boss {
			pct += r.BossBonusPct
		}
		cum += pct
		if roll < cum {
			return r
		}
	}
	return &e.catalog.Rarities[len(e.catalog.Rarities)-1]
}

// enhanceMult is the value multiplier at a given enhancement level.
func (e *Engine) enhanceMult(level int) float64 {
	return 1 + e.cfg.EnhanceStepPct/100*float64(level)
}

// generateEquipment rolls one item from a template at a rarity, with
// bounded value randomness.
func (e *Engine) generateEquipment(t *catalog.EquipmentTemplate, r *catalog.Rarity) Equipment {
	return Equipment{
		ID:     uuid.NewString(),
		Name:   t.Name,
		Slot:   t.Slot,
		Stat:   t.Stat,
		Value:  math.Floor(t.BaseValue * r.ValueMult * e.uniform(0.8, 1.2)),
		Rarity: r.ID,
	}
}

// hasEquipmentNamed checks the uniqueness domain: inventory plus
// equipped slots.
func (e *Engine) hasEquipmentNamed(name string) bool {
	for _, it := range e.state.Inventory {
		if it.Name == name {
			return true
		}
	}
	for _, it := range e.state.Equipped {
		if it.Name == name {
			return true
		}
	}
	return false
}

// acquireEquipment inserts an item, or converts a duplicate name into
// a stone. The stone tier follows the incoming roll's rarity, not the
// already-owned item's.
func (e *Engine) acquireEquipment(item Equipment) (added bool) {
	if e.hasEquipmentNamed(item.Name) {
		e.state.Stones[item.Rarity]++
		e.emit(EventStoneGained, map[string]any{
			"rarity": item.Rarity,
			"count":  e.state.Stones[item.Rarity],
		})
		return false
	}
	e.state.Inventory = append(e.state.Inventory, item)
	e.state.ObtainedEquipment[item.Name] = true
	e.checkAchievements()
	e.emit(EventLootDropped, map[string]any{"item": item})
	return true
}

// rollDrop resolves the equipment drop for a kill. Returns the item
// when one was added to the inventory.
func (e *Engine) rollDrop(m *Monster) *Equipment {
	chance := e.cfg.DropChancePct
	if m.IsBoss {
		chance = e.cfg.BossDropChancePct
	}
	chance += e.bonus(catalog.KindDropPct)
	chance *= m.Trait.DropMult
	if m.IsRare {
		chance *= m.RareMult
	}
	if e.luckyActive() {
		chance *= e.cfg.LuckyDropMult
	}
	if !e.chance(chance) {
		return nil
	}
	t := &e.catalog.Equipment[e.rng.Intn(len(e.catalog.Equipment))]
	item := e.generateEquipment(t, e.rollRarity(m.IsBoss))
	if e.acquireEquipment(item) {
		return &item
	}
	return nil
}

// grantEquipment gives one item of a guaranteed rarity (shop packs and
// stone exchange payouts).
func (e *Engine) grantEquipment(rarityID string, boss bool) {
	r := e.catalog.RarityByID(rarityID)
	if r == nil {
		r = e.rollRarity(boss)
	}
	t := &e.catalog.Equipment[e.rng.Intn(len(e.catalog.Equipment))]
	e.acquireEquipment(e.generateEquipment(t, r))
}

func (e *Engine) inventoryIndex(id string) int {
	for i := range e.state.Inventory {
		if e.state.Inventory[i].ID == id {
			return i
		}
	}
	return -1
}

// removeFromInventory removes by exact id. Name matching would be
// wrong even though names are unique right now: ids stay unique for a
// whole session.
func (e *Engine) removeFromInventory(id string) (Equipment, bool) {
	i := e.inventoryIndex(id)
	if i < 0 {
		return Equipment{}, false
	}
	item := e.state.Inventory[i]
	e.state.Inventory = append(e.state.Inventory[:i], e.state.Inventory[i+1:]...)
	return item, true
}

// EquipItem moves an inventory item into its slot; whatever was there
// goes back to the inventory, never discarded.
func (e *Engine) EquipItem(id string) error {
	i := e.inventoryIndex(id)
	if i < 0 {
		return fmt.Errorf("equipment %q: %w", id, ErrNotFound)
	}
	item := e.state.Inventory[i]
	e.state.Inventory = append(e.state.Inventory[:i], e.state.Inventory[i+1:]...)
	if prev, ok := e.state.Equipped[item.Slot]; ok {
		e.state.Inventory = append(e.state.Inventory, prev)
	}
	e.state.Equipped[item.Slot] = item
	return nil
}

// UnequipItem empties a slot back into the inventory.
func (e *Engine) UnequipItem(slot string) error {
	item, ok := e.state.Equipped[slot]
	if !ok {
		return fmt.Errorf("slot %q: %w", slot, ErrNotFound)
	}
	delete(e.state.Equipped, slot)
	e.state.Inventory = append(e.state.Inventory, item)
	return nil
}

// SellPrice is the gold paid for selling an item.
func (e *Engine) SellPrice(item Equipment) int64 {
	r := e.catalog.RarityByID(item.Rarity)
	tier := 1.0
	if r != nil {
		tier = float64(r.Tier)
	}
	return floor64(item.Value * tier * 10)
}

// SellItem removes an inventory item (by id) for gold. Equipped items
// must be unequipped first. The obtained-equipment ledger keeps its
// entry: collection history is append-only.
func (e *Engine) SellItem(id string) (int64, error) {
	item, ok := e.removeFromInventory(id)
	if !ok {
		return 0, fmt.Errorf("equipment %q: %w", id, ErrNotFound)
	}
	price := e.SellPrice(item)
	e.creditGold(price)
	return price, nil
}

// EnhanceEquipment spends common stones to raise an item one
// enhancement level. The value is recomputed by dividing out the old
// multiplier before applying the new one, so repeated enhancements do
// not compound rounding drift.
func (e *Engine) EnhanceEquipment(id string) error {
	var item *Equipment
	if i := e.inventoryIndex(id); i >= 0 {
		item = &e.state.Inventory[i]
	} else {
		for slot := range e.state.Equipped {
			if e.state.Equipped[slot].ID == id {
				eq := e.state.Equipped[slot]
				item = &eq
				defer func() {
					if item != nil {
						e.state.Equipped[slot] = *item
					}
				}()
				break
			}
		}
	}
	if item == nil {
		return fmt.Errorf("equipment %q: %w", id, ErrNotFound)
	}
	if item.EnhanceLevel >= e.cfg.EnhanceMaxLevel {
		return ErrMaxLevel
	}
	r := e.catalog.RarityByID(item.Rarity)
	if r == nil {
		return fmt.Errorf("rarity %q: %w", item.Rarity, ErrNotFound)
	}
	if e.state.Stones[catalog.RarityCommon] < r.EnhanceCost {
		return ErrNotEnoughStones
	}
	e.state.Stones[catalog.RarityCommon] -= r.EnhanceCost

	base := item.Value / e.enhanceMult(item.EnhanceLevel)
	item.EnhanceLevel++
	item.Value = math.Floor(base * e.enhanceMult(item.EnhanceLevel))
	return nil
}

// ensureExchangeReset rolls the weekly exchange window: counters clear
// once the configured number of days has passed since the last reset,
// not on calendar weeks.
func (e *Engine) ensureExchangeReset() {
	now := e.now()
	if e.state.ExchangeResetAt.IsZero() {
		e.state.ExchangeResetAt = now
		return
	}
	window := time.Duration(e.cfg.ExchangeResetDays) * 24 * time.Hour
	if now.Sub(e.state.ExchangeResetAt) >= window {
		e.state.ExchangeCounts = map[string]int{}
		e.state.ExchangeResetAt = now
	}
}

// ExecuteStoneExchange runs a weekly-limited stone barter.
func (e *Engine) ExecuteStoneExchange(id string) error {
	offer := e.catalog.ExchangeByID(id)
	if offer == nil {
		return fmt.Errorf("exchange %q: %w", id, ErrNotFound)
	}
	e.ensureExchangeReset()
	if offer.WeeklyLimit > 0 && e.state.ExchangeCounts[id] >= offer.WeeklyLimit {
		return ErrLimitReached
	}
	for rarity, n := range offer.Give {
		if e.state.Stones[rarity] < n {
			return ErrNotEnoughStones
		}
	}
	for rarity, n := range offer.Give {
		e.state.Stones[rarity] -= n
	}
	e.state.ExchangeCounts[id]++

	e.creditGold(offer.Reward.Gold)
	e.state.Gems += offer.Reward.Gems
	e.state.TowerMedals += offer.Reward.Medals
	for rarity, n := range offer.Reward.Stones {
		e.state.Stones[rarity] += n
		e.emit(EventStoneGained, map[string]any{
			"rarity": rarity,
			"count":  e.state.Stones[rarity],
		})
	}
	if offer.Reward.Equipment != "" {
		e.grantEquipment(offer.Reward.Equipment, false)
	}
	return nil
}
