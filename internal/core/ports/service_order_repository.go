package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// ServiceOrderRepository persists the ServiceOrder aggregate with its line
// items and status history.
type ServiceOrderRepository interface {
	// Add assigns the next sequential order number, then stores the order,
	// its line items and every history entry it carries.
	Add(ctx context.Context, order *serviceorder.ServiceOrder) error

	// Update stores every field of the order and appends history entries that
	// are not stored yet. It fails with errs.ErrVersionIsInvalid when the order
	// was changed by someone else since it was read.
	Update(ctx context.Context, order *serviceorder.ServiceOrder) error

	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)
	GetByNumber(ctx context.Context, number string) (*serviceorder.ServiceOrder, error)
}
