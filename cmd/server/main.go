package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jengzang/accident-dashboard-go/internal/api"
	"github.com/jengzang/accident-dashboard-go/internal/config"
	"github.com/jengzang/accident-dashboard-go/internal/database"
	"github.com/jengzang/accident-dashboard-go/internal/dataset"
	"github.com/jengzang/accident-dashboard-go/internal/logging"
	"github.com/jengzang/accident-dashboard-go/internal/middleware"
	"github.com/jengzang/accident-dashboard-go/internal/observability"
	"github.com/jengzang/accident-dashboard-go/internal/repository"
	"github.com/jengzang/accident-dashboard-go/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync() //nolint:errcheck

	gin.SetMode(cfg.GinMode)

	// 加载数据集
	ds, err := loadDataset(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}
	if ds.Defects() > 0 {
		logger.Warn("district names without a subregion", zap.Int("count", ds.Defects()))
	}
	logger.Info("dataset loaded",
		zap.Int("records", ds.Len()),
		zap.Int("regions", len(ds.Regions())),
	)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		defer limiter.Stop()
	}

	// 初始化路由
	router := api.SetupRouter(api.Deps{
		Dashboard: service.NewDashboardService(ds, collector, logger, cfg.TopN),
		Metrics:   collector,
		Limiter:   limiter,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 启动服务器
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// loadDataset reads the SQLite snapshot when DATASET_DB_PATH is set and the
// CSV file otherwise.
func loadDataset(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dataset.Dataset, error) {
	if cfg.DatasetDBPath == "" {
		logger.Info("loading dataset from csv", zap.String("path", cfg.DatasetPath))
		return dataset.Load(ctx, dataset.NewCSVSource(cfg.DatasetPath, cfg.DatasetEncoding))
	}

	logger.Info("loading dataset from snapshot", zap.String("path", cfg.DatasetDBPath))
	db, err := database.Open(database.Config{Path: cfg.DatasetDBPath}, logger)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := database.NewMigrationManager(db, logger).RunMigrations(); err != nil {
		return nil, err
	}
	return dataset.Load(ctx, repository.NewAccidentRepository(db))
}
