package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/pkg/errs"
)

// CreateCustomerCommandHandler stores a new customer after checking that
// neither the document nor the email is already taken.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectAlreadyExists for a duplicate document, then
// for a duplicate email, in that order.
func (h CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
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

	_, err := repo.FindByDocument(ctx, cmd.Document())
	if err == nil {
		return customer.Snapshot{}, errs.NewObjectAlreadyExistsError("document", cmd.Document().Value())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return customer.Snapshot{}, err
	}

	_, err = repo.FindByEmail(ctx, cmd.Email())
	if err == nil {
		return customer.Snapshot{}, errs.NewObjectAlreadyExistsError("email", cmd.Email().Value())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return customer.Snapshot{}, err
	}

	c, err := customer.NewCustomer(cmd.Name(), cmd.Document(), cmd.Email(), cmd.Phone(), cmd.Address())
	if err != nil {
		return customer.Snapshot{}, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return customer.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return customer.Snapshot{}, err
	}

	return c.Snapshot(), nil
}
