package infra

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string
	Env                string
	Version            string
	AutoMigrate        bool
	CORSAllowedOrigins []string
	Database           DatabaseConfig
	Auth               AuthConfig
	Redis              RedisConfig
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

// UsePostgres is true when DB_NAME is set; otherwise sqlite is used.
func (c DatabaseConfig) UsePostgres() bool {
	return c.Name != ""
}

type AuthConfig struct {
	SecretKey string
	TokenTTL  time.Duration
	// SecretKeyGenerated marks a random per-process key; tokens die with the process.
	SecretKeyGenerated bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// LoadConfig reads .env (or the comma separated files in ENV_FILE) and then
// the process environment.
func LoadConfig() (*Config, error) {
	LoadEnvFiles(splitList(os.Getenv("ENV_FILE"))...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("SQLITE_PATH", "bomtracker.db")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 1440)
	v.SetDefault("REDIS_DB", 0)

	cfg := &Config{
		Port:               v.GetString("PORT"),
		Env:                v.GetString("ENV"),
		Version:            v.GetString("APP_VERSION"),
		AutoMigrate:        v.GetBool("AUTO_MIGRATE"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Database: DatabaseConfig{
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		Auth: AuthConfig{
			SecretKey: v.GetString("SECRET_KEY"),
			TokenTTL:  time.Duration(v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if cfg.Auth.SecretKey == "" {
		key, err := randomKey()
		if err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		cfg.Auth.SecretKey = key
		cfg.Auth.SecretKeyGenerated = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if c.Database.UsePostgres() && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required when DB_NAME is set")
	}
	if !c.Database.UsePostgres() && c.Database.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required when DB_NAME is not set")
	}
	if c.IsProd() && c.Auth.SecretKeyGenerated {
		return fmt.Errorf("SECRET_KEY is required in prod")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
