package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Liuma02/trade-journal-reports/internal/config"
	cronrunner "github.com/Liuma02/trade-journal-reports/internal/cron"
	"github.com/Liuma02/trade-journal-reports/internal/db"
	"github.com/Liuma02/trade-journal-reports/internal/handler"
	"github.com/Liuma02/trade-journal-reports/internal/logger"
	"github.com/Liuma02/trade-journal-reports/internal/repository"
	gormrepository "github.com/Liuma02/trade-journal-reports/internal/repository/gorm"
	"github.com/Liuma02/trade-journal-reports/internal/service"
	"github.com/Liuma02/trade-journal-reports/internal/store"
)

func main() {
	cfgPath := os.Getenv("TJ_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("TJ_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// An empty DSN runs the server purely in memory.
	var repo repository.Repository
	var dbConn *db.DB
	if cfg.DB.DSN != "" {
		dbConn, err = db.Open(cfg.DB)
		if err != nil {
			logger.Fatal("db open failed", zap.Error(err))
		}
		defer db.Close(dbConn)

		if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
			logger.Warn("failed to set timezone", zap.Error(err))
		}
		if err := gormrepository.AutoMigrate(dbConn.Gorm); err != nil {
			logger.Fatal("auto-migrate failed", zap.Error(err))
		}
		repo = gormrepository.New(dbConn.Gorm)
	} else {
		logger.Info("no db configured, running in memory")
	}

	sessions := service.NewSessions(repo, logger, store.Options{Strict: cfg.Store.Strict})
	if repo != nil {
		if err := sessions.Get(service.DefaultSession).Refresh(context.Background()); err != nil {
			logger.Warn("initial session load failed", zap.Error(err))
		}
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{}
	if dbConn != nil {
		healthHandler.DB = dbConn.Gorm
	}
	healthHandler.Register(engine)
	(&handler.TradesHandler{Sessions: sessions}).Register(engine)
	(&handler.ImportHandler{Sessions: sessions, MaxBodyBytes: cfg.Import.MaxBodyBytes}).Register(engine)
	(&handler.JournalHandler{Sessions: sessions}).Register(engine)
	(&handler.AnalyticsHandler{Sessions: sessions}).Register(engine)
	(&handler.ReportsHandler{Sessions: sessions}).Register(engine)
	(&handler.TagsHandler{Sessions: sessions}).Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled && cfg.Stats.Enabled {
		statsSvc := &service.StatsSnapshotService{Sessions: sessions, Logger: logger}
		_, err := cronRunner.Add("stats_snapshot", cfg.Cron.StatsSnapshot, func(ctx context.Context) {
			if err := statsSvc.RunOnce(ctx); err != nil {
				logger.Warn("stats snapshot failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register stats snapshot failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-Session-ID")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
