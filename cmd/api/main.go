package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/wealthwise/internal/config"
	"github.com/Dan9191/wealthwise/internal/engine"
	"github.com/Dan9191/wealthwise/internal/handler"
	"github.com/Dan9191/wealthwise/internal/integrations/alphavantage"
	"github.com/Dan9191/wealthwise/internal/quotes"
	"github.com/Dan9191/wealthwise/internal/repository"
	"github.com/Dan9191/wealthwise/internal/scheduler"
	"github.com/Dan9191/wealthwise/internal/service"
	"github.com/Dan9191/wealthwise/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	ctx := context.Background()

	// Last known quotes
	var store repository.QuoteStore = repository.NewMemoryQuoteStore()
	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		repo := repository.NewRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatalf("Failed to prepare database schema: %v", err)
		}
		store = repo
		logger.Info("Using PostgreSQL quote store")
	}

	// Quote cache
	var cache repository.QuoteCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatalf("Failed to ping redis: %v", err)
		}
		cache = repository.NewRedisQuoteCache(rdb, cfg.QuoteCacheTTL)
		logger.Infof("Using redis quote cache at %s", cfg.RedisAddr)
	} else {
		memCache, err := repository.NewMemoryQuoteCache(cfg.QuoteCacheTTL)
		if err != nil {
			logger.Fatalf("Failed to create quote cache: %v", err)
		}
		defer memCache.Close()
		cache = memCache
	}

	// Initialize layers
	avClient := alphavantage.NewClient(cfg, logger)
	provider := quotes.NewProvider(avClient, cache, store, logger)
	eng := engine.New(cfg.Policy(), nil)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(eng, provider, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Background quote refresh
	sched := scheduler.New(logger)
	if cfg.AlphaVantageKey != "" {
		var tickers []string
		for _, inst := range engine.DefaultUniverse() {
			tickers = append(tickers, inst.Ticker)
		}
		refresh := scheduler.NewQuoteRefreshJob(provider, tickers, logger)
		if err := sched.AddJob(cfg.QuoteRefreshSpec, refresh); err != nil {
			logger.Fatalf("Failed to schedule quote refresh: %v", err)
		}
		sched.Start()
		// warm the quote cache before the first tick
		go func() {
			if err := sched.RunNow(refresh); err != nil {
				logger.Warnf("Initial quote refresh failed: %v", err)
			}
		}()
		defer sched.Stop()
	} else {
		logger.Warn("ALPHA_VANTAGE_KEY not set, live quotes disabled")
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, cfg, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
}
