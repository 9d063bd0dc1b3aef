package commands

import (
	"context"

	"workshop/internal/core/domain/model/part"
)

type RestockPartCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRestockPartCommandHandler(uowFactory CatalogUoWFactory) RestockPartCommandHandler {
	return RestockPartCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RestockPartCommandHandler) Handle(ctx context.Context, cmd RestockPartCommand) (part.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return part.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return part.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PartRepository()

	p, err := repo.Get(ctx, cmd.PartID())
	if err != nil {
		return part.Snapshot{}, err
	}

	if err = p.AddStock(cmd.Quantity()); err != nil {
		return part.Snapshot{}, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return part.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return part.Snapshot{}, err
	}

	return p.Snapshot(), nil
}
