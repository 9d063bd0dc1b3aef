package partrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartRepository implements ports.PartRepository using GORM.
type GormPartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPartRepository(db *gorm.DB, tracker aggregateTracker) *GormPartRepository {
	return &GormPartRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPartRepository) Add(ctx context.Context, aggregate *part.Part) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("part number", dto.PartNumber, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPartRepository) Update(ctx context.Context, aggregate *part.Part) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("part", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPartRepository) Get(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("part", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPartRepository) FindByPartNumber(ctx context.Context, partNumber string) (*part.Part, error) {
	partNumber = strings.ToUpper(strings.TrimSpace(partNumber))

	var dto PartDTO
	if err := r.db.WithContext(ctx).First(&dto, "part_number = ?", partNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("part number", partNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveStock decrements stock with a single conditional UPDATE. When no
// row matches, the part is read again to tell a missing part from a short one.
func (r *GormPartRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := validateQuantity(id, quantity); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PartDTO{}).
		Where("id = ? AND stock_quantity >= ?", id.Google(), quantity).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w for part %s. Available: %d", part.ErrInsufficientStock, p.Name(), p.StockQuantity())
}

func (r *GormPartRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := validateQuantity(id, quantity); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PartDTO{}).
		Where("id = ?", id.Google()).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity + ?", quantity),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("part", id.String())
	}
	return nil
}

func validateQuantity(id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
