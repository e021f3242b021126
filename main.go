package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/msomdec/pitchside/internal/auth"
	"github.com/msomdec/pitchside/internal/config"
	"github.com/msomdec/pitchside/internal/handler"
	"github.com/msomdec/pitchside/internal/metrics"
	"github.com/msomdec/pitchside/internal/repository/sqlite"
	"github.com/msomdec/pitchside/internal/service"
	"github.com/msomdec/pitchside/web"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewJWT([]byte(cfg.JWTSecret), cfg.TokenTTL, nil)

	router := handler.NewRouter(&handler.RouterDeps{
		Auth:              service.NewAuthService(db.Users(), hasher, tokens),
		Players:           service.NewPlayerService(db.Players()),
		Teams:             service.NewTeamService(db.Teams()),
		Matches:           service.NewMatchService(db.Matches()),
		Verifier:          tokens,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RequestRecorder:   collector,
		MetricsHandler:    metrics.Handler(registry),
		Static:            web.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
