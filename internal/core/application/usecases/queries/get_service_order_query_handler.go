package queries

import (
	"context"

	"workshop/internal/core/domain/model/serviceorder"
)

type GetServiceOrderQueryHandler struct {
	orders ServiceOrderReader
}

func NewGetServiceOrderQueryHandler(orders ServiceOrderReader) GetServiceOrderQueryHandler {
	return GetServiceOrderQueryHandler{orders: orders}
}

// Handle returns the order snapshot, history in chronological order.
func (h GetServiceOrderQueryHandler) Handle(
	ctx context.Context,
	query GetServiceOrderQuery,
) (serviceorder.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return serviceorder.Snapshot{}, err
	}

	var (
		o   *serviceorder.ServiceOrder
		err error
	)
	if query.ByNumber() {
		o, err = h.orders.GetByNumber(ctx, query.Number())
	} else {
		o, err = h.orders.Get(ctx, query.ID())
	}
	if err != nil {
		return serviceorder.Snapshot{}, err
	}

	return o.Snapshot(), nil
}
