// Package postgres connects the trip engine to PostgreSQL. The database holds
// the durable copy of the audit log and activity feed (see eventrepo); trips
// and fleet records stay in the in-memory entity store.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tripflow/internal/adapters/out/postgres/eventrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Settings are the connection parameters read from the environment.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a libpq keyword/value connection string.
func (s Settings) DSN() string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Name, sslMode)
}

// Open connects, pings and migrates the event tables.
//
// Example:
//
//	db, err := postgres.Open(ctx, postgres.Settings{Host: "localhost", Port: "5432", ...}, logger)
//	if err != nil {
//	    return err
//	}
//	events := eventrepo.NewGormEventRepository(db)
func Open(ctx context.Context, settings Settings, logger *slog.Logger) (*gorm.DB, error) {
	return OpenDSN(ctx, settings.DSN(), logger)
}

// OpenDSN is Open for a ready-made connection string.
func OpenDSN(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err = eventrepo.Migrate(db.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("migrate event tables: %w", err)
	}

	logger.InfoContext(ctx, "postgres event log ready", "component", "postgres")
	return db, nil
}
