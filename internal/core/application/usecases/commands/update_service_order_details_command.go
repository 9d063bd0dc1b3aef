package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"
)

var ErrUpdateServiceOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateServiceOrderDetailsCommand must be created via NewUpdateServiceOrderDetailsCommand constructor",
)

// ServiceOrderDetails lists the non-status fields of an order that can be
// changed. Nil fields are kept. Observation is appended to the existing log.
type ServiceOrderDetails struct {
	Diagnosis           *string
	Observation         *string
	Priority            *string
	EstimatedCompletion *time.Time
	AssignedTo          *string
}

type UpdateServiceOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	details  ServiceOrderDetails
	priority *serviceorder.Priority

	guard guard.ConstructorGuard
}

func NewUpdateServiceOrderDetailsCommand(
	orderID kernel.UUID,
	details ServiceOrderDetails,
) (UpdateServiceOrderDetailsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateServiceOrderDetailsCommand{}, err
	}
	if details == (ServiceOrderDetails{}) {
		return UpdateServiceOrderDetailsCommand{}, ErrNothingToUpdate
	}

	cmd := UpdateServiceOrderDetailsCommand{
		orderID: orderID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}
	if details.Priority != nil {
		p, err := serviceorder.ParsePriority(*details.Priority)
		if err != nil {
			return UpdateServiceOrderDetailsCommand{}, err
		}
		cmd.priority = &p
	}

	return cmd, nil
}

func (c UpdateServiceOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceOrderDetailsCommandIsNotConstructed)
}

func (c UpdateServiceOrderDetailsCommand) OrderID() kernel.UUID             { return c.orderID }
func (c UpdateServiceOrderDetailsCommand) Details() ServiceOrderDetails     { return c.details }
func (c UpdateServiceOrderDetailsCommand) Priority() *serviceorder.Priority { return c.priority }
