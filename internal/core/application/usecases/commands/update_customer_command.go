package commands

import (
	"errors"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field must be provided")
)

// UpdateCustomerCommand replaces the provided customer fields. Nil arguments
// keep the stored value.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	changes    customer.Changes

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name, email, phone *string,
	address *customer.Address,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}
	if name == nil && email == nil && phone == nil && address == nil {
		return UpdateCustomerCommand{}, ErrNothingToUpdate
	}

	changes := customer.Changes{Name: name, Phone: phone, Address: address}
	if email != nil {
		parsed, err := kernel.NewEmail(*email)
		if err != nil {
			return UpdateCustomerCommand{}, err
		}
		changes.Email = &parsed
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID   { return c.customerID }
func (c UpdateCustomerCommand) Changes() customer.Changes { return c.changes }
