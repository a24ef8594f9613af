package migrate

import (
	"embed"
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

// MigrateDB applies the embedded migrations.
func MigrateDB(dbURI string) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, DriverURL(dbURI))
	if err != nil {
		return err
	}
	defer m.Close()
	return up(m)
}

// MigrateFromSource applies the migrations found at sourceURL (e.g. file:///migrations).
func MigrateFromSource(sourceURL, dbURI string) error {
	m, err := migrate.New(sourceURL, DriverURL(dbURI))
	if err != nil {
		return err
	}
	defer m.Close()
	return up(m)
}

// DriverURL rewrites a postgres connection url to the scheme of the pgx/v5 migrate driver.
func DriverURL(dbURI string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dbURI, prefix) {
			return "pgx5://" + strings.TrimPrefix(dbURI, prefix)
		}
	}
	return dbURI
}

func up(m *migrate.Migrate) error {
	err := m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
