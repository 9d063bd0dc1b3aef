package commands

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
	"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor",
)

// OrderLine references a catalog service or part by id.
type OrderLine struct {
	CatalogID kernel.UUID
	Quantity  int
}

// CreateServiceOrderCommand opens a service order for a customer's vehicle.
// Lines are resolved and priced by the handler in the order given.
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	vehicleID           kernel.UUID
	description         string
	priority            serviceorder.Priority
	createdBy           string
	services            []OrderLine
	parts               []OrderLine
	estimatedCompletion *time.Time

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand parses priority, where an empty value means
// NORMAL, and checks every line reference.
func NewCreateServiceOrderCommand(
	customerID, vehicleID kernel.UUID,
	description, priority, createdBy string,
	services, parts []OrderLine,
	estimatedCompletion *time.Time,
) (CreateServiceOrderCommand, error) {
	parsedPriority, priorityErr := serviceorder.ParsePriority(priority)

	if err := errors.Join(
		customerID.Validate(),
		vehicleID.Validate(),
		priorityErr,
		validateOrderLines("services", services),
		validateOrderLines("parts", parts),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return CreateServiceOrderCommand{
		customerID:          customerID,
		vehicleID:           vehicleID,
		description:         description,
		priority:            parsedPriority,
		createdBy:           createdBy,
		services:            slices.Clone(services),
		parts:               slices.Clone(parts),
		estimatedCompletion: estimatedCompletion,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

func (c CreateServiceOrderCommand) CustomerID() kernel.UUID         { return c.customerID }
func (c CreateServiceOrderCommand) VehicleID() kernel.UUID          { return c.vehicleID }
func (c CreateServiceOrderCommand) Description() string             { return c.description }
func (c CreateServiceOrderCommand) Priority() serviceorder.Priority { return c.priority }
func (c CreateServiceOrderCommand) CreatedBy() string               { return c.createdBy }
func (c CreateServiceOrderCommand) Services() []OrderLine           { return slices.Clone(c.services) }
func (c CreateServiceOrderCommand) Parts() []OrderLine              { return slices.Clone(c.parts) }
func (c CreateServiceOrderCommand) EstimatedCompletion() *time.Time { return c.estimatedCompletion }

func validateOrderLines(field string, lines []OrderLine) error {
	var lineErrs []error
	for i, line := range lines {
		if err := line.CatalogID.Validate(); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("%s[%d]: %w", field, i, err))
		}
		if line.Quantity <= 0 {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("%s[%d].quantity", field, i),
				errors.New("must be positive"),
			))
		}
	}
	return errors.Join(lineErrs...)
}
