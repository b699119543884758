// Package db opens the gorm connection backing the regional lookup tables.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverPostgres is selected when DB_HOST is set.
	DriverPostgres = "postgres"
	// DriverSQLite is the local fallback.
	DriverSQLite = "sqlite"

	defaultSQLitePath = "data/moajim.db"
	connectTimeout    = 60 * time.Second
	retryInterval     = 3 * time.Second
)

// Config holds database connection settings.
type Config struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	SQLitePath    string
	RunMigrations bool
}

// Driver reports which gorm driver the config resolves to.
func (c Config) Driver() string {
	if c.Host != "" {
		return DriverPostgres
	}
	return DriverSQLite
}

// LoadConfigFromEnv reads the DB_* variables, SQLITE_PATH and RUN_MIGRATIONS.
func LoadConfigFromEnv() Config {
	return Config{
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		SSLMode:       os.Getenv("DB_SSLMODE"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

// BuildDSN returns the driver-specific DSN for cfg.
func BuildDSN(cfg Config) string {
	if cfg.Driver() == DriverSQLite {
		if cfg.SQLitePath == "" {
			return defaultSQLitePath
		}
		return cfg.SQLitePath
	}
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Seoul",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, port, sslmode)
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor returns the Opener matching the configured driver.
func OpenerFor(cfg Config) Opener {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if cfg.Driver() == DriverSQLite {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), gcfg)
	}
}

// ConnectWithRetry keeps calling open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", interval)
		time.Sleep(interval)
	}
}

// OpenDB connects using cfg and migrates models. SQLite databases are always
// migrated since they are created on first use.
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)
	if cfg.Driver() == DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := ConnectWithRetry(dsn, connectTimeout, retryInterval, OpenerFor(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations || cfg.Driver() == DriverSQLite {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	slog.Info("database ready", "driver", cfg.Driver())
	return db, nil
}
