package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories it returns after Begin
// share the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	VehicleRepository() VehicleRepository
	ServiceRepository() ServiceRepository
	PartRepository() PartRepository
	ServiceOrderRepository() ServiceOrderRepository
}
