package commands

import (
	"context"

	"workshop/internal/core/domain/model/serviceorder"
)

type ApproveServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

func NewApproveServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) ApproveServiceOrderCommandHandler {
	return ApproveServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with serviceorder.ErrIllegalApproval unless the order is
// awaiting approval.
func (h ApproveServiceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveServiceOrderCommand,
) (serviceorder.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return serviceorder.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return serviceorder.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.ServiceOrderRepository()

	order, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return serviceorder.Snapshot{}, err
	}

	if err = order.Approve(cmd.ApprovedBy(), cmd.Amount()); err != nil {
		return serviceorder.Snapshot{}, err
	}

	if err = orders.Update(ctx, order); err != nil {
		return serviceorder.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return serviceorder.Snapshot{}, err
	}

	return order.Snapshot(), nil
}
