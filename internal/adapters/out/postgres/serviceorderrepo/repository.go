package serviceorderrepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceOrderRepository implements ports.ServiceOrderRepository using GORM.
//
// Updates use optimistic locking on the version column. Line item rows are
// rewritten in place and history rows are only ever inserted.
type GormServiceOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormServiceOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add takes the next value of NumberSequence, formats it as OS000042 and
// stores the order with its items and history.
func (r *GormServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var next int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", NumberSequence).Scan(&next).Error; err != nil {
		return err
	}
	if err := aggregate.AssignNumber(fmt.Sprintf("OS%06d", next)); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update fails with errs.ErrVersionIsInvalid when the stored version differs
// from the one the aggregate was loaded with.
func (r *GormServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ServiceOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"customer_id":          dto.CustomerID,
			"vehicle_id":           dto.VehicleID,
			"status":               dto.Status,
			"priority":             dto.Priority,
			"description":          dto.Description,
			"diagnosis":            dto.Diagnosis,
			"observations":         dto.Observations,
			"estimated_completion": dto.EstimatedCompletion,
			"actual_completion":    dto.ActualCompletion,
			"total_amount":         dto.TotalAmount,
			"approved_amount":      dto.ApprovedAmount,
			"approved_at":          dto.ApprovedAt,
			"approved_by":          dto.ApprovedBy,
			"created_by":           dto.CreatedBy,
			"assigned_to":          dto.AssignedTo,
			"version":              gorm.Expr("version + 1"),
			"updated_at":           dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.ID())
	}

	if len(dto.ServiceItems) > 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status"}),
		}).Create(&dto.ServiceItems).Error; err != nil {
			return err
		}
	}
	if len(dto.PartItems) > 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status"}),
		}).Create(&dto.PartItems).Error; err != nil {
			return err
		}
	}
	if len(dto.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "service order", id.String(), "id = ?", id.Google())
}

func (r *GormServiceOrderRepository) GetByNumber(
	ctx context.Context,
	number string,
) (*serviceorder.ServiceOrder, error) {
	return r.first(ctx, "order number", number, "order_number = ?", number)
}

func (r *GormServiceOrderRepository) first(
	ctx context.Context,
	param string,
	value any,
	query string,
	args ...any,
) (*serviceorder.ServiceOrder, error) {
	var dto ServiceOrderDTO
	err := r.db.WithContext(ctx).
		Preload("ServiceItems").
		Preload("PartItems").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormServiceOrderRepository) missingOrStale(ctx context.Context, id kernel.UUID) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&ServiceOrderDTO{}).Where("id = ?", id.Google()).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("service order", id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause(
		"service order",
		fmt.Errorf("order %s was modified concurrently", id),
	)
}
