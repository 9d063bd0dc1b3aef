package commands

import (
	"context"

	"workshop/internal/core/domain/model/serviceorder"
)

type UpdateServiceOrderDetailsCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

func NewUpdateServiceOrderDetailsCommandHandler(
	uowFactory ServiceOrderUoWFactory,
) UpdateServiceOrderDetailsCommandHandler {
	return UpdateServiceOrderDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateServiceOrderDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateServiceOrderDetailsCommand,
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

	if err = applyDetails(order, cmd); err != nil {
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

func applyDetails(order *serviceorder.ServiceOrder, cmd UpdateServiceOrderDetailsCommand) error {
	d := cmd.Details()

	if d.Diagnosis != nil {
		if err := order.UpdateDiagnosis(*d.Diagnosis); err != nil {
			return err
		}
	}
	if d.Observation != nil {
		if err := order.AddObservation(*d.Observation); err != nil {
			return err
		}
	}
	if p := cmd.Priority(); p != nil {
		if err := order.ChangePriority(*p); err != nil {
			return err
		}
	}
	if d.EstimatedCompletion != nil {
		if err := order.SetEstimatedCompletion(*d.EstimatedCompletion); err != nil {
			return err
		}
	}
	if d.AssignedTo != nil {
		if err := order.AssignTo(*d.AssignedTo); err != nil {
			return err
		}
	}
	return nil
}
