// Package ports defines the persistence contracts the application layer
// depends on. Adapters in internal/adapters/out implement them.
//
// Lookups by identity return an error wrapping errs.ErrObjectNotFound when
// nothing matches.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
)

type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// FindByDocument returns the customer holding document, or ObjectNotFound.
	FindByDocument(ctx context.Context, document kernel.Document) (*customer.Customer, error)

	// FindByEmail returns the customer using email, or ObjectNotFound.
	FindByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)
}
