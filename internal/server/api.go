package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"tapdungeon/internal/catalog"
	"tapdungeon/internal/config"
	"tapdungeon/internal/game"
	"tapdungeon/internal/persist"
)

// App owns the engine and serializes all access to it. The engine
// itself is single-threaded; every handler and the tick loop go
// through the same mutex.
type App struct {
	mu sync.Mutex

	Engine  *game.Engine
	Store   *persist.Store
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *slog.Logger
	Hub     *Hub

	BootNow time.Time
}

// Lock grants exclusive engine access to the tick loop and autosaver.
func (app *App) Lock()   { app.mu.Lock() }
func (app *App) Unlock() { app.mu.Unlock() }

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

// errorStatus maps engine sentinels onto HTTP statuses. Anything the
// engine refuses cleanly is a client error, not a 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrOnCooldown),
		errors.Is(err, game.ErrAlreadyClaimed),
		errors.Is(err, game.ErrLimitReached),
		errors.Is(err, game.ErrTowerBusy),
		errors.Is(err, game.ErrTowerIdle),
		errors.Is(err, game.ErrRosterFull),
		errors.Is(err, game.ErrMaxLevel):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(errorStatus(err))
	_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
}

type idRequest struct {
	ID string `json:"id"`
}

func decodeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body idRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return "", false
	}
	if body.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return "", false
	}
	return body.ID, true
}

// stateView is the full client-facing snapshot: raw aggregate plus the
// derived numbers the engine computes on demand.
type stateView struct {
	State          *game.GameState `json:"state"`
	Monster        *game.Monster   `json:"monster"`
	BossTimeLeft   float64         `json:"boss_time_left"`
	TapDamage      float64         `json:"tap_damage"`
	TotalDPS       float64         `json:"total_dps"`
	CritChancePct  float64         `json:"crit_chance_pct"`
	CritDamagePct  float64         `json:"crit_damage_pct"`
	PendingSouls   int64           `json:"pending_souls"`
	PendingPoints  int             `json:"pending_skill_points"`
	CanRebirth     bool            `json:"can_rebirth"`
	SkillPoints    int             `json:"skill_points"`
	Tower          game.TowerInfo  `json:"tower"`
	World          *catalog.World  `json:"world"`
	ServerTime     time.Time       `json:"server_time"`
	UptimeSeconds  float64         `json:"uptime_seconds"`
}

func (app *App) buildStateView() stateView {
	e := app.Engine
	s := e.State()
	return stateView{
		State:         s,
		Monster:       e.CurrentMonster(),
		BossTimeLeft:  e.BossTimeLeft(),
		TapDamage:     e.TapDamage(),
		TotalDPS:      e.TotalDPS(),
		CritChancePct: e.CriticalChance(),
		CritDamagePct: e.CriticalDamage(),
		PendingSouls:  e.PendingSouls(),
		PendingPoints: e.PendingSkillPoints(),
		CanRebirth:    e.CanRebirth(),
		SkillPoints:   e.AvailableSkillPoints(),
		Tower:         e.Tower(),
		World:         app.Catalog.WorldForStage(s.CurrentStage),
		ServerTime:    time.Now().UTC(),
		UptimeSeconds: time.Since(app.BootNow).Seconds(),
	}
}

// SaveNow snapshots the engine to disk. Callers must hold the lock.
func (app *App) SaveNow() error {
	raw, err := app.Engine.Snapshot()
	if err != nil {
		return err
	}
	return app.Store.Save(raw)
}

// command wraps a mutating engine call: lock, run, then answer with
// the fresh state view so the client never needs a second round trip.
func (app *App) command(w http.ResponseWriter, fn func() (any, error)) {
	app.mu.Lock()
	extra, err := fn()
	var view stateView
	if err == nil {
		view = app.buildStateView()
	}
	app.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	if extra != nil {
		writeJSON(w, map[string]any{"result": extra, "view": view})
		return
	}
	writeJSON(w, view)
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	e := app.Engine

	Handle(mux, rr, "GET /api/state", "Full game state and derived stats", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		view := app.buildStateView()
		app.mu.Unlock()
		writeJSON(w, view)
	})

	Handle(mux, rr, "GET /api/catalog", "Static content catalog", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Catalog)
	})

	Handle(mux, rr, "POST /api/tap", "Attack the current monster", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) {
			e.Tap()
			return nil, nil
		})
	})

	// Upgrades
	Handle(mux, rr, "POST /api/heroes/upgrade", "Buy one hero level", `{"id":"squire"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.UpgradeHero(id) })
	})

	Handle(mux, rr, "POST /api/companions/upgrade", "Buy one companion level", `{"id":"fairy"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.UpgradeCompanion(id) })
	})

	Handle(mux, rr, "POST /api/artifacts/upgrade", "Buy one artifact level with souls", `{"id":"whetstone"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.UpgradeArtifact(id) })
	})

	// Skills
	Handle(mux, rr, "POST /api/skills/use", "Fire an active skill", `{"id":"war_cry"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.UseSkill(id) })
	})

	Handle(mux, rr, "POST /api/tree/upgrade", "Spend skill points on a passive node", `{"id":"might"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.UpgradeSkillTree(id) })
	})

	// Equipment
	Handle(mux, rr, "POST /api/equipment/equip", "Equip an inventory item", `{"id":"<item-id>"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.EquipItem(id) })
	})

	Handle(mux, rr, "POST /api/equipment/unequip", "Empty an equipment slot", `{"id":"weapon"}`, func(w http.ResponseWriter, r *http.Request) {
		slot, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.UnequipItem(slot) })
	})

	Handle(mux, rr, "POST /api/equipment/sell", "Sell an inventory item", `{"id":"<item-id>"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return e.SellItem(id) })
	})

	Handle(mux, rr, "POST /api/equipment/enhance", "Enhance an item with stones", `{"id":"<item-id>"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.EnhanceEquipment(id) })
	})

	Handle(mux, rr, "POST /api/exchange", "Run a stone exchange offer", `{"id":"x_gold"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.ExecuteStoneExchange(id) })
	})

	// Gacha
	Handle(mux, rr, "POST /api/gacha/summon", "Single gem summon", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) { return e.SummonSingle() })
	})

	Handle(mux, rr, "POST /api/gacha/summon-multi", "Batch gem summon", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) { return e.SummonMulti() })
	})

	Handle(mux, rr, "POST /api/gacha/roster", "Field or bench a summoned hero", `{"id":"valkyrie"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.ToggleBattleHero(id) })
	})

	// Rebirth
	Handle(mux, rr, "GET /api/rebirth/preview", "Pending rebirth payout", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		out := map[string]any{
			"can_rebirth":  e.CanRebirth(),
			"souls":        e.PendingSouls(),
			"skill_points": e.PendingSkillPoints(),
		}
		app.mu.Unlock()
		writeJSON(w, out)
	})

	Handle(mux, rr, "POST /api/rebirth", "Reset the run for souls and skill points", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) {
			// Keep a copy of the pre-rebirth save in case of regret.
			if err := app.Store.Rotate(5); err != nil {
				app.Logger.Warn("rotate save before rebirth", "error", err)
			}
			res, err := e.Rebirth()
			if err != nil {
				return nil, err
			}
			if err := app.SaveNow(); err != nil {
				app.Logger.Warn("save after rebirth", "error", err)
			}
			return res, nil
		})
	})

	// Tower
	Handle(mux, rr, "GET /api/tower", "Tower status", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		info := e.Tower()
		app.mu.Unlock()
		writeJSON(w, info)
	})

	Handle(mux, rr, "POST /api/tower/start", "Start a tower attempt", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) { return nil, e.StartTowerChallenge() })
	})

	Handle(mux, rr, "POST /api/tower/tap", "Attack the tower boss", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) { return nil, e.TapTowerBoss() })
	})

	Handle(mux, rr, "POST /api/tower/abandon", "Forfeit the running attempt", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) { return nil, e.AbandonTower() })
	})

	Handle(mux, rr, "POST /api/tower/extra-attempt", "Buy an extra attempt with gems", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) { return nil, e.BuyExtraAttempt() })
	})

	Handle(mux, rr, "POST /api/tower/shop", "Buy a medal shop buff", `{"id":"t_tap"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.PurchaseTowerShopItem(id) })
	})

	// Missions and achievements
	Handle(mux, rr, "GET /api/missions", "Today's mission board", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		out := e.DailyMissions()
		app.mu.Unlock()
		writeJSON(w, out)
	})

	Handle(mux, rr, "POST /api/missions/claim", "Claim a completed mission", `{"id":"m_taps"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.ClaimDailyMissionReward(id) })
	})

	Handle(mux, rr, "GET /api/achievements", "Achievement progress", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		out := e.Achievements()
		app.mu.Unlock()
		writeJSON(w, out)
	})

	Handle(mux, rr, "POST /api/achievements/claim", "Claim an unlocked achievement", `{"id":"first_blood"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return e.ClaimAchievement(id) })
	})

	// Daily loop
	Handle(mux, rr, "POST /api/daily-bonus", "Claim the daily login bonus", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) {
			gold, gems, err := e.ClaimDailyBonus()
			if err != nil {
				return nil, err
			}
			return map[string]int64{"gold": gold, "gems": gems}, nil
		})
	})

	Handle(mux, rr, "POST /api/chests/open", "Open the whole chest stock", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) {
			gold, gems, lucky, err := e.OpenChests()
			if err != nil {
				return nil, err
			}
			return map[string]any{"gold": gold, "gems": gems, "lucky": lucky}, nil
		})
	})

	Handle(mux, rr, "POST /api/lucky/activate", "Spend a lucky time charge", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.command(w, func() (any, error) { return nil, e.ActivateLuckyTime() })
	})

	// Shop
	Handle(mux, rr, "POST /api/shop/gems", "Buy a gem pack", `{"id":"g_small"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return e.PurchaseGemPack(id) })
	})

	Handle(mux, rr, "POST /api/shop/packs", "Buy a special pack", `{"id":"s_starter"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.PurchaseSpecialPack(id) })
	})

	Handle(mux, rr, "POST /api/shop/pass", "Buy a weekly pass", `{"id":"w_gem"}`, func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		app.command(w, func() (any, error) { return nil, e.PurchaseWeeklyPass(id) })
	})

	// Persistence
	Handle(mux, rr, "POST /api/save", "Force a save to disk", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		err := app.SaveNow()
		app.mu.Unlock()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]string{"status": "saved"})
	})

	// Events
	Handle(mux, rr, "GET /api/events", "Server-sent event stream", "", app.handleEvents)
}
