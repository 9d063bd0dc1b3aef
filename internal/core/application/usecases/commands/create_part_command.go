package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePartCommandIsNotConstructed = errors.New(
	"CreatePartCommand must be created via NewCreatePartCommand constructor",
)

// CreatePartCommand adds an inventory item. A nil stock starts at zero and a
// nil minimum uses part.DefaultMinStockLevel.
type CreatePartCommand struct { //nolint:recvcheck //using for validation
	name          string
	partNumber    string
	details       part.Details
	price         kernel.Money
	stockQuantity int
	minStockLevel int

	guard guard.ConstructorGuard
}

func NewCreatePartCommand(
	name, partNumber string,
	details part.Details,
	price decimal.Decimal,
	stockQuantity, minStockLevel *int,
) (CreatePartCommand, error) {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return CreatePartCommand{}, err
	}

	cmd := CreatePartCommand{
		name:          name,
		partNumber:    partNumber,
		details:       details,
		price:         money,
		minStockLevel: part.DefaultMinStockLevel,
		guard:         guard.NewConstructorGuard(),
	}
	if stockQuantity != nil {
		cmd.stockQuantity = *stockQuantity
	}
	if minStockLevel != nil {
		cmd.minStockLevel = *minStockLevel
	}

	return cmd, nil
}

func (c CreatePartCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartCommandIsNotConstructed)
}

func (c CreatePartCommand) Name() string          { return c.name }
func (c CreatePartCommand) PartNumber() string    { return c.partNumber }
func (c CreatePartCommand) Details() part.Details { return c.details }
func (c CreatePartCommand) Price() kernel.Money   { return c.price }
func (c CreatePartCommand) StockQuantity() int    { return c.stockQuantity }
func (c CreatePartCommand) MinStockLevel() int    { return c.minStockLevel }
