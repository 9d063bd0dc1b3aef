// Package commands contains the write-side use cases. Each command is a value
// built by its constructor, which validates and parses the raw input, and is
// executed by a handler inside a unit of work.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Narrow unit-of-work views, one per group of aggregates a handler touches.
// The postgres GormUnitOfWork satisfies all of them.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	PartRepoFactory interface {
		PartRepository() ports.PartRepository
	}

	ServiceOrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// CustomerUoW is used by customer maintenance commands.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// VehicleUoW registers vehicles against existing customers.
	VehicleUoW interface {
		TxManager
		CustomerRepoFactory
		VehicleRepoFactory
	}

	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// CatalogUoW maintains catalog services and inventory.
	CatalogUoW interface {
		TxManager
		ServiceRepoFactory
		PartRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ServiceOrderUoW changes existing orders. Parts are included because
	// cancelling an order gives its reserved stock back.
	ServiceOrderUoW interface {
		TxManager
		ServiceOrderRepoFactory
		PartRepoFactory
	}

	ServiceOrderUoWFactory interface {
		Create() ServiceOrderUoW
	}

	// UoW spans every aggregate. Order creation needs all of them.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//	// ... customer, vehicle, catalog and order repositories
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		VehicleRepoFactory
		ServiceRepoFactory
		PartRepoFactory
		ServiceOrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
