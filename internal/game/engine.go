package game

import (
	"math"
	"math/rand"
	"time"

	"tapdungeon/internal/catalog"
	"tapdungeon/internal/config"
)

// Engine owns the aggregate game state and is the only thing that
// mutates it. All methods are synchronous and run to completion; the
// engine is driven by one goroutine (commands plus the periodic tick)
// and does no locking of its own.
type Engine struct {
	cfg     config.Balance
	catalog *catalog.Catalog
	state   *GameState
	clock   Clock
	rng     *rand.Rand
	events  Emitter

	monster      *Monster
	bossTimeLeft float64
}

type Option func(*Engine)

// WithClock injects a clock (FakeClock in tests).
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSeed fixes the RNG for deterministic rolls.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithState adopts an existing state instead of a fresh one.
func WithState(s *GameState) Option {
	return func(e *Engine) { e.state = s }
}

func New(cfg config.Balance, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		catalog: cat,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = RealClock{}
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.state == nil {
		e.state = NewGameState()
	}
	e.SpawnMonster()
	return e
}

// State exposes the aggregate for queries and snapshots. Callers must
// not mutate it.
func (e *Engine) State() *GameState { return e.state }

// Events returns the emitter the presentation layer subscribes to.
func (e *Engine) Events() *Emitter { return &e.events }

// CurrentMonster returns the live encounter, nil only transiently
// inside kill resolution.
func (e *Engine) CurrentMonster() *Monster { return e.monster }

// BossTimeLeft reports the running boss countdown in seconds.
func (e *Engine) BossTimeLeft() float64 { return e.bossTimeLeft }

func (e *Engine) now() time.Time { return e.clock.Now() }

func (e *Engine) today() string {
	return e.now().Format("2006-01-02")
}

// chance rolls a percent chance in [0,100].
func (e *Engine) chance(pct float64) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return e.rng.Float64()*100 < pct
}

// uniform draws from [lo, hi).
func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func (e *Engine) emit(t EventType, payload map[string]any) {
	e.events.emit(Event{Type: t, At: e.now(), Payload: payload})
}

// bump increments a lifetime counter and mirrors it into the daily
// mission progress, then re-checks achievements keyed on it.
func (e *Engine) bump(stat string, n int64) {
	if n <= 0 {
		return
	}
	e.state.Stats[stat] += n
	e.bumpMissions(stat, n)
	e.checkAchievements()
}

// safely isolates one kill-side-effect phase: a fault in a reward or
// drop computation must not leave the monster un-retired or block the
// remaining phases.
func safely(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func floor64(v float64) int64 {
	if v <= 0 {
		return 0
	}
	return int64(math.Floor(v))
}

// geomCost is the shared upgrade cost curve: base * growth^level.
func geomCost(base int64, growth float64, level int) int64 {
	return floor64(float64(base) * math.Pow(growth, float64(level)))
}
