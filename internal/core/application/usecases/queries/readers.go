// Package queries holds the read side of the workshop: guarded query objects
// and handlers that either load one aggregate through a reader or run raw SQL
// against the read tables.
package queries

import (
	"context"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// ServiceOrderReader loads a single order with its items and history.
type ServiceOrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)
	GetByNumber(ctx context.Context, number string) (*serviceorder.ServiceOrder, error)
}

type CustomerReader interface {
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
