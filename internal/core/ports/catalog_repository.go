package ports

import (
	"context"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
)

type ServiceRepository interface {
	Add(ctx context.Context, s *catalog.Service) error
	Update(ctx context.Context, s *catalog.Service) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error)
}

// PartRepository persists inventory. ReserveStock and ReleaseStock change the
// stored quantity in a single statement so concurrent orders cannot oversell.
type PartRepository interface {
	Add(ctx context.Context, p *part.Part) error
	Update(ctx context.Context, p *part.Part) error
	Get(ctx context.Context, id kernel.UUID) (*part.Part, error)
	FindByPartNumber(ctx context.Context, partNumber string) (*part.Part, error)

	// ReserveStock subtracts quantity only when enough stock remains.
	// It returns part.ErrInsufficientStock otherwise.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock gives quantity back to the part.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
