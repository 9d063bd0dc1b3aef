package postgres

import (
	"context"
	"fmt"

	"workshop/internal/adapters/out/postgres/catalogrepo"
	"workshop/internal/adapters/out/postgres/customerrepo"
	"workshop/internal/adapters/out/postgres/partrepo"
	"workshop/internal/adapters/out/postgres/serviceorderrepo"
	"workshop/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the adapter, parents first.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&vehiclerepo.VehicleDTO{},
		&catalogrepo.ServiceDTO{},
		&partrepo.PartDTO{},
		&serviceorderrepo.ServiceOrderDTO{},
		&serviceorderrepo.ServiceItemDTO{},
		&serviceorderrepo.PartItemDTO{},
		&serviceorderrepo.StatusHistoryDTO{},
	}
}

// Migrate creates or alters the schema and the order number sequence.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + serviceorderrepo.NumberSequence).Error; err != nil {
		return fmt.Errorf("create order number sequence: %w", err)
	}

	return nil
}
