package database

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"assettrack/internal/database/migration"
	"assettrack/internal/logger"
)

func RunMigrations(db *sql.DB, dbURL string, migrationsDir string) error {
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	log := logger.NewLogger()
	defer log.Sync()

	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	migrationsURL := "file://" + absPath

	return migration.Migrate(dbURL, migrationsURL, true, log)
}
