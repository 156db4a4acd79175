package main

import (
	"context"
	"errors"
	"gin-bomtracker/infra"
	"gin-bomtracker/repositories"
	"gin-bomtracker/routes"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTokenRepository(ctx context.Context, cfg *infra.Config, db *gorm.DB) (repositories.ITokenRepository, func(), error) {
	if !cfg.Redis.Enabled() {
		return repositories.NewTokenRepository(db), func() {}, nil
	}

	rdb, err := infra.SetupRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewRedisTokenRepository(rdb), func() { _ = rdb.Close() }, nil
}

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := infra.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Auth.SecretKeyGenerated {
		zap.L().Warn("SECRET_KEY not set; using a random key, tokens will not survive a restart")
	}

	db, err := infra.SetupDB(cfg.Database, cfg.Env)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			zap.L().Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	tokenRepository, closeTokens, err := newTokenRepository(context.Background(), cfg, db)
	if err != nil {
		zap.L().Fatal("Failed to set up token store", zap.Error(err))
	}
	defer closeTokens()

	r := routes.SetupRouter(db, tokenRepository, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.L().Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zap.L().Info("Server exited")
}
