package commands

import (
	"context"
)

type DeactivateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewDeactivateCustomerCommandHandler(uowFactory CustomerUoWFactory) DeactivateCustomerCommandHandler {
	return DeactivateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the customer inactive. Vehicles and orders are kept.
func (h DeactivateCustomerCommandHandler) Handle(ctx context.Context, cmd DeactivateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	c.Deactivate()

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
