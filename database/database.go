// Package database owns the connection to PostgreSQL and schema setup.
package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/leefeettrends/admin-api/config"
)

// Open connects to PostgreSQL and applies the pool limits from
// configuration. The returned handle is the process-wide pool; callers
// inject it into repositories rather than reaching for a global.
func Open(cfg config.PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
