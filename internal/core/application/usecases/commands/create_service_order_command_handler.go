package commands

import (
	"context"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/services"
)

type CreateServiceOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateServiceOrderCommandHandler(uowFactory UoWFactory) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves customer, vehicle, each service and each part in that
// order and stops at the first failure. The order, its number, its line
// items, its first history entry and the stock reservations are committed
// together.
func (h CreateServiceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateServiceOrderCommand,
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

	customers := uow.CustomerRepository()
	vehicles := uow.VehicleRepository()
	catalog := uow.ServiceRepository()
	parts := uow.PartRepository()
	orders := uow.ServiceOrderRepository()

	c, err := customers.Get(ctx, cmd.CustomerID())
	if err != nil {
		return serviceorder.Snapshot{}, err
	}

	v, err := vehicles.Get(ctx, cmd.VehicleID())
	if err != nil {
		return serviceorder.Snapshot{}, err
	}

	assembler, err := services.NewOrderAssembler(c, v)
	if err != nil {
		return serviceorder.Snapshot{}, err
	}

	for _, line := range cmd.Services() {
		s, getErr := catalog.Get(ctx, line.CatalogID)
		if getErr != nil {
			return serviceorder.Snapshot{}, getErr
		}
		if err = assembler.AddService(s, line.Quantity); err != nil {
			return serviceorder.Snapshot{}, err
		}
	}

	for _, line := range cmd.Parts() {
		p, getErr := parts.Get(ctx, line.CatalogID)
		if getErr != nil {
			return serviceorder.Snapshot{}, getErr
		}
		if err = assembler.AddPart(p, line.Quantity); err != nil {
			return serviceorder.Snapshot{}, err
		}
	}

	order, err := assembler.Build(cmd.Description(), cmd.Priority(), cmd.CreatedBy())
	if err != nil {
		return serviceorder.Snapshot{}, err
	}

	if at := cmd.EstimatedCompletion(); at != nil {
		if err = order.SetEstimatedCompletion(*at); err != nil {
			return serviceorder.Snapshot{}, err
		}
	}

	if err = orders.Add(ctx, order); err != nil {
		return serviceorder.Snapshot{}, err
	}

	for _, r := range assembler.Reservations() {
		if err = parts.ReserveStock(ctx, r.PartID, r.Quantity); err != nil {
			return serviceorder.Snapshot{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return serviceorder.Snapshot{}, err
	}

	return order.Snapshot(), nil
}
