package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"
)

var ErrUpdateServiceOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateServiceOrderStatusCommand must be created via NewUpdateServiceOrderStatusCommand constructor",
)

type UpdateServiceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	status    serviceorder.Status
	changedBy string
	reason    string

	guard guard.ConstructorGuard
}

// NewUpdateServiceOrderStatusCommand parses status. The reason is optional.
func NewUpdateServiceOrderStatusCommand(
	orderID kernel.UUID,
	status, changedBy, reason string,
) (UpdateServiceOrderStatusCommand, error) {
	parsed, statusErr := serviceorder.ParseStatus(status)
	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return UpdateServiceOrderStatusCommand{}, err
	}

	return UpdateServiceOrderStatusCommand{
		orderID:   orderID,
		status:    parsed,
		changedBy: changedBy,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateServiceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceOrderStatusCommandIsNotConstructed)
}

func (c UpdateServiceOrderStatusCommand) OrderID() kernel.UUID        { return c.orderID }
func (c UpdateServiceOrderStatusCommand) Status() serviceorder.Status { return c.status }
func (c UpdateServiceOrderStatusCommand) ChangedBy() string           { return c.changedBy }
func (c UpdateServiceOrderStatusCommand) Reason() string              { return c.reason }
