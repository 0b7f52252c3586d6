package game

import (
	"encoding/json"
	"fmt"
)

// Snapshot serializes the full aggregate for the save file.
func (e *Engine) Snapshot() ([]byte, error) {
	e.state.SavedAt = e.now()
	return json.MarshalIndent(e.state, "", "  ")
}

// Restore replaces the aggregate with a saved one. The save is merged
// over a fresh default state, so fields added after the save was
// written keep their defaults instead of zeroing out. A new encounter
// is spawned; the live monster is never persisted.
func (e *Engine) Restore(raw []byte) error {
	var saved map[string]any
	if err := json.Unmarshal(raw, &saved); err != nil {
		return fmt.Errorf("parse save: %w", err)
	}

	base, err := json.Marshal(NewGameState())
	if err != nil {
		return err
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}
	mergeSave(merged, saved)

	buf, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	state := NewGameState()
	if err := json.Unmarshal(buf, state); err != nil {
		return fmt.Errorf("restore save: %w", err)
	}
	if state.CurrentStage < 1 {
		state.CurrentStage = 1
	}
	if state.MaxStageReached < state.CurrentStage {
		state.MaxStageReached = state.CurrentStage
	}
	if state.Tower.CurrentFloor < 1 {
		state.Tower.CurrentFloor = 1
	}

	e.state = state
	e.monster = nil
	e.bossTimeLeft = 0
	e.SpawnMonster()
	return nil
}

// mergeSave overlays src onto dst recursively. Scalars and arrays in
// the save win; objects merge key by key so defaults survive under
// keys the save never wrote.
func mergeSave(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				mergeSave(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
}

// OfflineReward is the gold owed for time away: passive DPS converted
// to gold at the standard ratio, clamped to the offline cap and scaled
// down by the offline efficiency.
func (e *Engine) OfflineReward(elapsedSec float64) int64 {
	if elapsedSec <= 0 {
		return 0
	}
	if elapsedSec > e.cfg.OfflineMaxSec {
		elapsedSec = e.cfg.OfflineMaxSec
	}
	dps := e.TotalDPS()
	if dps <= 0 {
		return 0
	}
	reward := dps * elapsedSec * e.cfg.GoldPerHPRatio * e.goldMultiplier()
	return floor64(reward * e.cfg.OfflineEfficiencyPct / 100)
}

// ApplyOfflineReward credits the offline payout.
func (e *Engine) ApplyOfflineReward(elapsedSec float64) int64 {
	gold := e.OfflineReward(elapsedSec)
	e.creditGold(gold)
	return gold
}
