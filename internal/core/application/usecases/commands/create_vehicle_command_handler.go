package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"
)

type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the vehicle for an existing customer. License plates are
// unique across the shop.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (vehicle.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return vehicle.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return vehicle.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers := uow.CustomerRepository()
	vehicles := uow.VehicleRepository()

	if _, err := customers.Get(ctx, cmd.CustomerID()); err != nil {
		return vehicle.Snapshot{}, err
	}

	_, err := vehicles.FindByLicensePlate(ctx, cmd.LicensePlate())
	if err == nil {
		return vehicle.Snapshot{}, errs.NewObjectAlreadyExistsError("license plate", cmd.LicensePlate().Value())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return vehicle.Snapshot{}, err
	}

	v, err := vehicle.NewVehicle(
		cmd.CustomerID(),
		cmd.LicensePlate(),
		cmd.Brand(),
		cmd.Model(),
		cmd.Year(),
		cmd.Color(),
		cmd.ChassisNumber(),
	)
	if err != nil {
		return vehicle.Snapshot{}, err
	}

	if err = vehicles.Add(ctx, v); err != nil {
		return vehicle.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return vehicle.Snapshot{}, err
	}

	return v.Snapshot(), nil
}
