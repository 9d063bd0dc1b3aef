package commands

import (
	"context"

	"workshop/internal/core/domain/model/catalog"
)

type CreateServiceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateServiceCommandHandler(uowFactory CatalogUoWFactory) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) (catalog.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return catalog.Snapshot{}, err
	}

	s, err := catalog.NewService(
		cmd.Name(),
		cmd.Description(),
		cmd.EstimatedDuration(),
		cmd.Price(),
		cmd.Category(),
	)
	if err != nil {
		return catalog.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return catalog.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ServiceRepository().Add(ctx, s); err != nil {
		return catalog.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return catalog.Snapshot{}, err
	}

	return s.Snapshot(), nil
}
