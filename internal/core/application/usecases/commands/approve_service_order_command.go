package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrApproveServiceOrderCommandIsNotConstructed = errors.New(
	"ApproveServiceOrderCommand must be created via NewApproveServiceOrderCommand constructor",
)

// ApproveServiceOrderCommand records customer approval. A nil amount
// approves the order total.
type ApproveServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	approvedBy string
	amount     *kernel.Money

	guard guard.ConstructorGuard
}

func NewApproveServiceOrderCommand(
	orderID kernel.UUID,
	approvedBy string,
	amount *decimal.Decimal,
) (ApproveServiceOrderCommand, error) {
	var (
		money    *kernel.Money
		moneyErr error
	)
	if amount != nil {
		var m kernel.Money
		m, moneyErr = kernel.NewMoney(*amount)
		money = &m
	}
	if err := errors.Join(orderID.Validate(), moneyErr); err != nil {
		return ApproveServiceOrderCommand{}, err
	}

	return ApproveServiceOrderCommand{
		orderID:    orderID,
		approvedBy: approvedBy,
		amount:     money,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveServiceOrderCommandIsNotConstructed)
}

func (c ApproveServiceOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c ApproveServiceOrderCommand) ApprovedBy() string    { return c.approvedBy }
func (c ApproveServiceOrderCommand) Amount() *kernel.Money { return c.amount }
