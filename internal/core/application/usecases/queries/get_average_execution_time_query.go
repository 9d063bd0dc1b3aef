package queries

import (
	"context"
	"errors"

	"workshop/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetAverageExecutionTimeQueryIsNotConstructed = errors.New(
	"GetAverageExecutionTimeQuery must be created via NewGetAverageExecutionTimeQuery constructor",
)

type GetAverageExecutionTimeQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAverageExecutionTimeQuery() GetAverageExecutionTimeQuery {
	return GetAverageExecutionTimeQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAverageExecutionTimeQuery) Validate() error {
	return q.guard.Validate(ErrGetAverageExecutionTimeQueryIsNotConstructed)
}

type AverageExecutionTime struct {
	Hours       float64 `json:"averageHours"`
	OrdersCount int64   `json:"ordersCount"`
}

type GetAverageExecutionTimeQueryHandler struct {
	db *gorm.DB
}

func NewGetAverageExecutionTimeQueryHandler(db *gorm.DB) GetAverageExecutionTimeQueryHandler {
	return GetAverageExecutionTimeQueryHandler{db: db}
}

// Handle averages the hours from creation to actual completion over COMPLETED
// and DELIVERED orders. With no such orders the average is 0.
func (h GetAverageExecutionTimeQueryHandler) Handle(
	ctx context.Context,
	query GetAverageExecutionTimeQuery,
) (AverageExecutionTime, error) {
	if err := query.Validate(); err != nil {
		return AverageExecutionTime{}, err
	}

	var result AverageExecutionTime
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(AVG(EXTRACT(EPOCH FROM actual_completion - created_at)) / 3600, 0)::float8,
			COUNT(*)
		FROM service_orders
		WHERE status IN ('COMPLETED', 'DELIVERED') AND actual_completion IS NOT NULL
	`).Row().Scan(&result.Hours, &result.OrdersCount)
	if err != nil {
		return AverageExecutionTime{}, err
	}

	return result, nil
}
