package queries

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() kernel.UUID { return q.customerID }

type GetCustomerQueryHandler struct {
	customers CustomerReader
}

func NewGetCustomerQueryHandler(customers CustomerReader) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

// Handle also returns deactivated customers; Active tells them apart.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (customer.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return customer.Snapshot{}, err
	}

	c, err := h.customers.Get(ctx, query.CustomerID())
	if err != nil {
		return customer.Snapshot{}, err
	}
	return c.Snapshot(), nil
}
