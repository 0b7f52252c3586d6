package game

import "time"

// Tick advances the simulation by delta seconds. Ordering inside one
// tick is load-bearing: DPS damage lands before effects are pruned,
// and the kill-on-zero-HP check runs (inside applyDamage) before the
// timeout-on-zero-time checks, so a kill and a timeout racing in the
// same slice resolve as a kill.
func (e *Engine) Tick(delta float64) {
	if delta <= 0 {
		return
	}

	if dps := e.TotalDPS(); dps > 0 {
		e.applyDamage(dps*delta, false)
	}

	e.pruneEffects()
	e.tickLucky()

	if e.monster != nil && e.monster.IsBoss && e.monster.Phase == MonsterAlive {
		e.bossTimeLeft -= delta
		if e.bossTimeLeft <= 0 {
			e.onBossTimeout()
		}
	}

	e.tickTower(delta)
}

// pruneEffects drops expired timed buffs.
func (e *Engine) pruneEffects() {
	now := e.now()
	kept := e.state.ActiveEffects[:0]
	for _, eff := range e.state.ActiveEffects {
		if now.Before(eff.Expires) {
			kept = append(kept, eff)
		}
	}
	e.state.ActiveEffects = kept
}

func (e *Engine) luckyActive() bool {
	return e.state.Lucky.Active && e.now().Before(e.state.Lucky.EndsAt)
}

func (e *Engine) tickLucky() {
	if e.state.Lucky.Active && !e.now().Before(e.state.Lucky.EndsAt) {
		e.state.Lucky.Active = false
		e.emit(EventLuckyEnded, nil)
	}
}

// ActivateLuckyTime consumes one lucky stock and starts the timed
// gold/drop doubling. Already-active lucky time is extended from now.
func (e *Engine) ActivateLuckyTime() error {
	if e.state.Lucky.Stock <= 0 {
		return ErrNotFound
	}
	e.state.Lucky.Stock--
	e.state.Lucky.Active = true
	e.state.Lucky.EndsAt = e.now().Add(time.Duration(e.cfg.LuckyDurationSec * float64(time.Second)))
	e.emit(EventLuckyStarted, map[string]any{"ends_at": e.state.Lucky.EndsAt})
	e.emit(EventLuckyStock, map[string]any{"stock": e.state.Lucky.Stock})
	return nil
}
