package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateUp применяет встроенные миграции на отдельном соединении пула
func migrateUp(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire conn: %v", ErrMigrate, err)
	}

	dbDriver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: db driver: %v", ErrMigrate, err)
	}

	srcDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = dbDriver.Close()
		return fmt.Errorf("%w: source driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		_ = srcDriver.Close()
		_ = dbDriver.Close()
		return fmt.Errorf("%w: create migrator: %v", ErrMigrate, err)
	}
	// закрывает только conn, пул остаётся открытым
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: up: %v", ErrMigrate, err)
	}
	return nil
}
