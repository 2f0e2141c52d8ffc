package database

import (
	"fmt"
	"psychotest/internal/config"
	"psychotest/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver (pure Go), registers "oracle"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver, registers "sqlite"
)

func init() {
	// sqlx only knows the bind style of a few driver names out of the box.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// NewSQLXDB connects with the given driver and pings the database.
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		// One writer at a time; foreign keys are off by default.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	logger.Get().Info("Connected to database", zap.String("driver", driver))
	return db, nil
}

// Dialect returns the migration set used for driver. Both Oracle drivers
// share one schema.
func Dialect(driver string) string {
	if driver == config.DriverSQLite {
		return config.DriverSQLite
	}
	return config.DriverOracle
}
