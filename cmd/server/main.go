package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tapdungeon/internal/config"
	"tapdungeon/internal/serverapp"
)

func main() {
	var (
		port       = flag.String("port", "8080", "listen port")
		configPath = flag.String("config", "tapdungeon.yaml", "config file path")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	config.FromEnv(cfg)

	app, err := serverapp.New(serverapp.Options{
		Config: cfg,
		Port:   *port,
		Logger: logger,
	})
	if err != nil {
		logger.Error("server setup", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           app.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "data_dir", cfg.DataDir)
		errCh <- srv.ListenAndServe()
	}()

	loopDone := make(chan error, 1)
	go func() { loopDone <- app.Run(ctx) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}

	// Wait for the engine loop to write its final save.
	if err := <-loopDone; err != nil {
		os.Exit(1)
	}
}
