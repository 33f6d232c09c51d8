package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stashvest/internal/broker"
	"stashvest/internal/config"
	"stashvest/internal/database"
	"stashvest/internal/repositories"
	"stashvest/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	backend, err := broker.New(&cfg.Broker, logger)
	if err != nil {
		log.Fatalf("failed to create execution backend: %v", err)
	}

	accountRepo := repositories.NewBudgetAccountRepository(db)
	poolRepo := repositories.NewDepositAccountRepository(db)
	positionRepo := repositories.NewPositionRepository(db)
	settlementRepo := repositories.NewSettlementRepository(db)

	metrics := services.NewTradeMetrics()
	trading := services.NewTradingService(
		positionRepo, accountRepo, poolRepo, settlementRepo,
		backend, metrics, cfg.Trading, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(r.Context()) != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	httpSrv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics endpoint listening", "addr", cfg.MetricsAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	logger.Info("valuation sync started",
		"backend", backend.Name(),
		"interval", cfg.Trading.SyncInterval.String())

	ticker := time.NewTicker(cfg.Trading.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", "error", err)
			}
			logger.Info("shutdown complete")
			return
		case <-ticker.C:
			owners, err := positionRepo.GetOwnersWithOpenPositions()
			if err != nil {
				logger.Error("owner sweep failed", "error", err)
				continue
			}
			for _, owner := range owners {
				if _, err := trading.SyncPositions(ctx, owner); err != nil {
					logger.Error("valuation sync failed", "owner_id", owner, "error", err)
				}
			}
		}
	}
}
