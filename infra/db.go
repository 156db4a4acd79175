package infra

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewGormLogger routes gorm's slow-query and error output through zap.
// Lookups that find nothing are expected and stay quiet.
func NewGormLogger(l *zap.Logger) logger.Interface {
	stdLog, err := zap.NewStdLogAt(l, zapcore.WarnLevel)
	if err != nil {
		stdLog = zap.NewStdLog(l)
	}
	return logger.New(stdLog, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// surfaces unique violations as gorm.ErrDuplicatedKey on both drivers
		TranslateError: true,
		Logger:         NewGormLogger(zap.L()),
	}
}

// SetupDB connects to PostgreSQL when DB_NAME is set and to SQLite otherwise.
func SetupDB(cfg DatabaseConfig, env string) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		// sslmode=require in prod, disable elsewhere
		sslmode := "disable"
		if env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("connect to postgres (host=%s dbname=%s): %w", cfg.Host, cfg.Name, err)
		}
		zap.L().Info("Setup postgres database", zap.String("host", cfg.Host), zap.String("dbname", cfg.Name))
		return db, nil
	}

	db, err := NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	zap.L().Info("Setup sqlite database", zap.String("path", cfg.SQLitePath))
	return db, nil
}

// NewSQLiteDB opens a SQLite database with foreign keys enforced.
// ":memory:" gives a private in-memory database, used by tests.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one connection: in-memory databases are per-connection and sqlite
	// serialises writers anyway
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	return db, nil
}
