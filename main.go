package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rate-tracker/config"
	httpLayer "rate-tracker/http"
	"rate-tracker/repository"
	"rate-tracker/service"
)

func main() {
	cfg, err := config.Load()
	noErr(err)

	logger, err := cfg.NewLogger()
	noErr(err)
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	var loanRepo repository.LoanRepository
	if cfg.DatabaseURL != "" {
		pg, err := repository.NewPostgresLoanRepository(ctx, cfg.DatabaseURL)
		noErr(err)
		defer pg.Close()
		loanRepo = pg
	} else {
		logger.Info("DATABASE_URL not set, serving the demo pipeline")
		loanRepo = repository.NewLoanRepositoryMemory(repository.DemoPipeline()...)
	}

	var rateStore repository.RateStore
	if cfg.RedisAddr != "" {
		rs := repository.NewRedisRateStore(cfg.RedisAddr)
		defer rs.Close()
		rateStore = rs
	} else {
		rateStore = repository.NewMemoryRateStore()
	}

	rateService := service.NewRateService(rateStore, logger.Named("RateService"))
	pipelineService := service.NewPipelineService(loanRepo, rateService, logger.Named("PipelineService"))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitRefill)
	defer rateLimiter.Stop()

	httpLogger := logger.Named("HTTP")
	router := httpLayer.NewRouter(
		httpLayer.NewPipelineHandler(pipelineService, httpLogger),
		httpLayer.NewRatesHandler(rateService, httpLogger),
		rateLimiter,
		httpLogger,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("rate tracker listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func noErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize something important: "+err.Error())
		os.Exit(1)
	}
}
