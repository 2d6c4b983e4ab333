package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx" // pgx migration driver
	_ "github.com/golang-migrate/migrate/v4/source/file"  // file:// migration source

	"github.com/antarid/antar/internal/pkg/models"
)

// RunMigrations applies pending schema migrations from sourceURL
// (e.g. "file://migrations"). Already-applied migrations are skipped.
func RunMigrations(config models.DatabaseConfig, sourceURL string) error {
	dsn := fmt.Sprintf(
		"pgx://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
