package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wanderkit/trip-planner-api/internal/adapters/httpapi"
	memidempotency "github.com/wanderkit/trip-planner-api/internal/adapters/memory/idempotency"
	memplanrepo "github.com/wanderkit/trip-planner-api/internal/adapters/memory/planrepo"
	"github.com/wanderkit/trip-planner-api/internal/planner"
	platformclock "github.com/wanderkit/trip-planner-api/internal/platform/clock"
	"github.com/wanderkit/trip-planner-api/internal/platform/config"
)

func main() {
	// Local dev convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	clk := platformclock.NewSystemClock()
	planRepo := memplanrepo.NewRepo()
	idemStore := memidempotency.NewStore()

	planSvc := planner.NewService(planRepo, clk)
	api := httpapi.NewServer(planSvc, idemStore)

	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
