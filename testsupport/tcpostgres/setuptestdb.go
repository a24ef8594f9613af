//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mpapenbr/gc-segments/pkg/db/migrate"
	database "github.com/mpapenbr/gc-segments/pkg/db/postgres"
)

// SetupTestDB creates a pg connection pool for the test database running
// in a (reused) container.
func SetupTestDB() *pgxpool.Pool {
	ctx := context.Background()
	port, err := nat.NewPort("tcp", "5432")
	if err != nil {
		stdlog.Fatal(err)
	}
	container, err := SetupPostgres(ctx,
		WithPort(port.Port()),
		WithInitialDatabase("postgres", "password", "postgres"),
		WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
		WithName("gc-segments-test"),
	)
	if err != nil {
		stdlog.Fatal(err)
	}
	containerPort, _ := container.MappedPort(ctx, port)
	host, _ := container.Host(ctx)
	dbURL := fmt.Sprintf("postgresql://postgres:password@%s:%s/postgres",
		host, containerPort.Port())
	return setup(ctx, dbURL)
}

// SetupExternalTestDB uses the database referenced by TESTDB_URL.
func SetupExternalTestDB() *pgxpool.Pool {
	return setup(context.Background(), os.Getenv("TESTDB_URL"))
}

func setup(ctx context.Context, dbURL string) *pgxpool.Pool {
	if err := migrate.MigrateDB(dbURL); err != nil {
		stdlog.Fatal(err)
	}
	pool, err := database.InitWithURL(ctx, dbURL)
	if err != nil {
		stdlog.Fatal(err)
	}
	return pool
}

func ClearIntervalTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from interval")
}

func ClearTelemetryTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from telemetry")
}

func ClearActivityTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from activity")
}

func ClearSeasonTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from season")
}

func ClearAllTables(pool *pgxpool.Pool) {
	ClearIntervalTable(pool)
	ClearTelemetryTable(pool)
	ClearActivityTable(pool)
	ClearSeasonTable(pool)
}
