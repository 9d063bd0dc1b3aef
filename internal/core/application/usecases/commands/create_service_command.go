package commands

import (
	"errors"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateServiceCommandIsNotConstructed = errors.New(
	"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
)

// CreateServiceCommand adds a labor item to the catalog.
type CreateServiceCommand struct { //nolint:recvcheck //using for validation
	name              string
	description       string
	estimatedDuration int
	price             kernel.Money
	category          catalog.Category

	guard guard.ConstructorGuard
}

func NewCreateServiceCommand(
	name, description string,
	estimatedDuration int,
	price decimal.Decimal,
	category string,
) (CreateServiceCommand, error) {
	money, moneyErr := kernel.NewMoney(price)
	parsed, categoryErr := catalog.ParseCategory(category)
	if err := errors.Join(moneyErr, categoryErr); err != nil {
		return CreateServiceCommand{}, err
	}

	return CreateServiceCommand{
		name:              name,
		description:       description,
		estimatedDuration: estimatedDuration,
		price:             money,
		category:          parsed,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

func (c CreateServiceCommand) Name() string               { return c.name }
func (c CreateServiceCommand) Description() string        { return c.description }
func (c CreateServiceCommand) EstimatedDuration() int     { return c.estimatedDuration }
func (c CreateServiceCommand) Price() kernel.Money        { return c.price }
func (c CreateServiceCommand) Category() catalog.Category { return c.category }
