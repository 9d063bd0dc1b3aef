package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/pkg/errs"
)

type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the changes. A new email already used by another customer
// yields errs.ErrObjectAlreadyExists.
func (h UpdateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCustomerCommand,
) (customer.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return customer.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return customer.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return customer.Snapshot{}, err
	}

	changes := cmd.Changes()
	if changes.Email != nil && !changes.Email.IsEqual(c.Email()) {
		owner, findErr := repo.FindByEmail(ctx, *changes.Email)
		if findErr == nil && !owner.ID().IsEqual(c.ID()) {
			return customer.Snapshot{}, errs.NewObjectAlreadyExistsError("email", changes.Email.Value())
		}
		if findErr != nil && !errors.Is(findErr, errs.ErrObjectNotFound) {
			return customer.Snapshot{}, findErr
		}
	}

	if err = c.UpdateInfo(changes); err != nil {
		return customer.Snapshot{}, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return customer.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return customer.Snapshot{}, err
	}

	return c.Snapshot(), nil
}
