package main

import (
	"gin-bomtracker/infra"
	"log"

	"go.uber.org/zap"
)

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

	db, err := infra.SetupDB(cfg.Database, cfg.Env)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := infra.Migrate(db); err != nil {
		zap.L().Fatal("Failed to migrate database", zap.Error(err))
	}
	zap.L().Info("Migration completed", zap.Bool("postgres", cfg.Database.UsePostgres()))
}
