package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tapdungeon/internal/catalog"
	"tapdungeon/internal/config"
	"tapdungeon/internal/game"
	"tapdungeon/internal/httpmw"
	"tapdungeon/internal/persist"
	"tapdungeon/internal/server"
)

type Options struct {
	Config *config.Config
	Port   string
	Logger *slog.Logger
}

// Server assembles the engine, persistence and HTTP surface. Run
// drives the tick and autosave loops until the context is cancelled.
type Server struct {
	App     *server.App
	Handler http.Handler

	cfg    *config.Config
	logger *slog.Logger
}

func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	cfg := opts.Config

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	store, err := persist.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	var engineOpts []game.Option
	if cfg.Seed != 0 {
		engineOpts = append(engineOpts, game.WithSeed(cfg.Seed))
	}
	engine := game.New(cfg.Balance, cat, engineOpts...)

	// Resume the previous run, then pay out the time spent away.
	if raw, ok, err := store.Load(); err != nil {
		return nil, err
	} else if ok {
		if err := engine.Restore(raw); err != nil {
			opts.Logger.Warn("save file unreadable, starting fresh", "path", store.Path(), "error", err)
		} else if savedAt := engine.State().SavedAt; !savedAt.IsZero() {
			away := time.Since(savedAt).Seconds()
			if gold := engine.ApplyOfflineReward(away); gold > 0 {
				opts.Logger.Info("offline reward granted", "away_sec", int64(away), "gold", gold)
			}
		}
	}

	hub := server.NewHub()
	engine.Events().Subscribe(hub.Publish)

	app := &server.App{
		Engine:  engine,
		Store:   store,
		Config:  cfg,
		Catalog: cat,
		Logger:  opts.Logger,
		Hub:     hub,
		BootNow: time.Now(),
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)
	server.RegisterAdminUI(mux, rr, opts.Port)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "tapdungeon",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		app.Lock()
		alive := app.Engine.CurrentMonster() != nil
		app.Unlock()
		if !alive {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "engine has no encounter",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "tapdungeon",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	)

	return &Server{
		App:     app,
		Handler: handler,
		cfg:     cfg,
		logger:  opts.Logger,
	}, nil
}

// Run ticks the engine and autosaves until ctx is done, then writes a
// final save.
func (s *Server) Run(ctx context.Context) error {
	tickInterval := time.Duration(s.cfg.TickIntervalMS) * time.Millisecond
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	autosave := time.NewTicker(time.Duration(s.cfg.AutosaveSec) * time.Second)
	defer autosave.Stop()

	for {
		select {
		case <-ctx.Done():
			s.App.Lock()
			err := s.App.SaveNow()
			s.App.Unlock()
			if err != nil {
				s.logger.Error("final save failed", "error", err)
				return err
			}
			s.logger.Info("final save written")
			return nil
		case <-ticker.C:
			s.App.Lock()
			s.App.Engine.Tick(tickInterval.Seconds())
			s.App.Unlock()
		case <-autosave.C:
			s.App.Lock()
			err := s.App.SaveNow()
			s.App.Unlock()
			if err != nil {
				s.logger.Error("autosave failed", "error", err)
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
