package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	licensePlate  kernel.LicensePlate
	brand         string
	model         string
	year          int
	color         string
	chassisNumber string

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(
	customerID kernel.UUID,
	licensePlate, brand, model string,
	year int,
	color, chassisNumber string,
) (CreateVehicleCommand, error) {
	plate, plateErr := kernel.NewLicensePlate(licensePlate)
	if err := errors.Join(customerID.Validate(), plateErr); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		customerID:    customerID,
		licensePlate:  plate,
		brand:         brand,
		model:         model,
		year:          year,
		color:         color,
		chassisNumber: chassisNumber,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) CustomerID() kernel.UUID           { return c.customerID }
func (c CreateVehicleCommand) LicensePlate() kernel.LicensePlate { return c.licensePlate }
func (c CreateVehicleCommand) Brand() string                     { return c.brand }
func (c CreateVehicleCommand) Model() string                     { return c.model }
func (c CreateVehicleCommand) Year() int                         { return c.year }
func (c CreateVehicleCommand) Color() string                     { return c.color }
func (c CreateVehicleCommand) ChassisNumber() string             { return c.chassisNumber }
