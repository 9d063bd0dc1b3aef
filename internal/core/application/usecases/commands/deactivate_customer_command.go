package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrDeactivateCustomerCommandIsNotConstructed = errors.New(
	"DeactivateCustomerCommand must be created via NewDeactivateCustomerCommand constructor",
)

// DeactivateCustomerCommand is the soft delete of a customer.
type DeactivateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateCustomerCommand(customerID kernel.UUID) (DeactivateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DeactivateCustomerCommand{}, err
	}

	return DeactivateCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateCustomerCommandIsNotConstructed)
}

func (c DeactivateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}
