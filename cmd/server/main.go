package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appprofit "github.com/profitlens/backend/internal/application/profit"
	"github.com/profitlens/backend/internal/infrastructure/cache"
	"github.com/profitlens/backend/internal/infrastructure/config"
	"github.com/profitlens/backend/internal/infrastructure/logger"
	"github.com/profitlens/backend/internal/infrastructure/persistence"
	"github.com/profitlens/backend/internal/infrastructure/shopify"
	"github.com/profitlens/backend/internal/interfaces/http/handler"
	"github.com/profitlens/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ProfitLens Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Redis is preferred for the report cache; fall back to the in-process
	// cache when it is unreachable so a cache outage never blocks reports.
	var reportCache appprofit.ReportCache
	redisCache, err := cache.NewRedisReportCache(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory report cache", zap.Error(err))
		memCache := cache.NewInMemoryReportCache()
		defer func() {
			_ = memCache.Close()
		}()
		reportCache = memCache
	} else {
		defer func() {
			_ = redisCache.Close()
		}()
		reportCache = redisCache
	}

	shopifyAdapter, err := shopify.NewAdapter(&shopify.Config{
		APIVersion:     cfg.Shopify.APIVersion,
		TimeoutSeconds: int(cfg.Shopify.RequestTimeout.Seconds()),
	})
	if err != nil {
		log.Fatal("Failed to initialize Shopify adapter", zap.Error(err))
	}

	reportRepo := persistence.NewGormProfitReportRepository(db.DB)
	costRepo := persistence.NewGormProductCostRepository(db.DB)
	adSpendRepo := persistence.NewGormAdSpendRepository(db.DB)
	fixedCostRepo := persistence.NewGormFixedCostRepository(db.DB)

	calculator := appprofit.NewProfitCalculatorService(
		shopifyAdapter,
		costRepo,
		adSpendRepo,
		fixedCostRepo,
		reportRepo,
		reportCache,
		cfg.Report.CacheTTL,
		log,
	)
	ranges := appprofit.NewRangeReportService(reportRepo, log)

	profitHandler := handler.NewProfitHandler(calculator, ranges, log)
	engine := router.New(cfg, log, profitHandler)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
