package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
)

type VehicleRepository interface {
	Add(ctx context.Context, v *vehicle.Vehicle) error
	Update(ctx context.Context, v *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
	FindByLicensePlate(ctx context.Context, plate kernel.LicensePlate) (*vehicle.Vehicle, error)
}
