package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/part"
	"workshop/internal/pkg/errs"
)

type CreatePartCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreatePartCommandHandler(uowFactory CatalogUoWFactory) CreatePartCommandHandler {
	return CreatePartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the part. Part numbers are unique after upper-casing.
func (h CreatePartCommandHandler) Handle(ctx context.Context, cmd CreatePartCommand) (part.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return part.Snapshot{}, err
	}

	p, err := part.NewPart(
		cmd.Name(),
		cmd.PartNumber(),
		cmd.Details(),
		cmd.Price(),
		cmd.StockQuantity(),
		cmd.MinStockLevel(),
	)
	if err != nil {
		return part.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return part.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PartRepository()

	_, err = repo.FindByPartNumber(ctx, p.PartNumber())
	if err == nil {
		return part.Snapshot{}, errs.NewObjectAlreadyExistsError("part number", p.PartNumber())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return part.Snapshot{}, err
	}

	if err = repo.Add(ctx, p); err != nil {
		return part.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return part.Snapshot{}, err
	}

	return p.Snapshot(), nil
}
