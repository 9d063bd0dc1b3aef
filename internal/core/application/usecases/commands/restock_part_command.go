package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrRestockPartCommandIsNotConstructed = errors.New(
	"RestockPartCommand must be created via NewRestockPartCommand constructor",
)

type RestockPartCommand struct { //nolint:recvcheck //using for validation
	partID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewRestockPartCommand(partID kernel.UUID, quantity int) (RestockPartCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be positive"))
	}
	if err := errors.Join(partID.Validate(), quantityErr); err != nil {
		return RestockPartCommand{}, err
	}

	return RestockPartCommand{
		partID:   partID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RestockPartCommand) Validate() error {
	return c.guard.Validate(ErrRestockPartCommandIsNotConstructed)
}

func (c RestockPartCommand) PartID() kernel.UUID { return c.partID }
func (c RestockPartCommand) Quantity() int       { return c.quantity }
