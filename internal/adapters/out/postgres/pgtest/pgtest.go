// Package pgtest starts a disposable PostgreSQL for integration suites.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "workshop/internal/adapters/out/postgres"
	"workshop/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Tables is the TRUNCATE list that resets every table between tests.
const Tables = "service_order_status_history, service_order_parts, service_order_services, " +
	"service_orders, parts, services, vehicles, customers"

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects with duplicate-key translation
// enabled and applies the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres_adapter.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Reset empties every table and restarts the order number sequence.
func (d *Database) Reset(ctx context.Context) error {
	db := d.DB.WithContext(ctx)
	if err := db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error; err != nil {
		return err
	}
	return db.Exec("ALTER SEQUENCE service_order_number_seq RESTART WITH 1").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	return d.Container.Terminate(ctx)
}

// NopTracker satisfies the repositories' aggregate tracker.
type NopTracker struct{}

func (NopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
