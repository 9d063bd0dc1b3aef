package commands

import (
	"context"

	"workshop/internal/core/domain/model/serviceorder"
)

type UpdateServiceOrderStatusCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

func NewUpdateServiceOrderStatusCommandHandler(
	uowFactory ServiceOrderUoWFactory,
) UpdateServiceOrderStatusCommandHandler {
	return UpdateServiceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies one transition. Cancelling gives the stock reserved by the
// order's part lines back to inventory in the same transaction.
func (h UpdateServiceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateServiceOrderStatusCommand,
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

	if err = order.UpdateStatus(cmd.Status(), cmd.ChangedBy(), cmd.Reason()); err != nil {
		return serviceorder.Snapshot{}, err
	}

	if err = orders.Update(ctx, order); err != nil {
		return serviceorder.Snapshot{}, err
	}

	if order.IsCancelled() {
		parts := uow.PartRepository()
		for _, item := range order.PartItems() {
			if err = parts.ReleaseStock(ctx, item.CatalogID(), item.Quantity()); err != nil {
				return serviceorder.Snapshot{}, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return serviceorder.Snapshot{}, err
	}

	return order.Snapshot(), nil
}
