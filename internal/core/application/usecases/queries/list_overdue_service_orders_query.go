package queries

import (
	"context"
	"errors"
	"time"

	"workshop/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListOverdueServiceOrdersQueryIsNotConstructed = errors.New(
	"ListOverdueServiceOrdersQuery must be created via NewListOverdueServiceOrdersQuery constructor",
)

// ListOverdueServiceOrdersQuery selects open orders whose estimated completion
// is before the reference time. COMPLETED, DELIVERED and CANCELLED orders are
// never overdue.
type ListOverdueServiceOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewListOverdueServiceOrdersQuery(asOf time.Time) ListOverdueServiceOrdersQuery {
	return ListOverdueServiceOrdersQuery{asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}
}

func (q ListOverdueServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueServiceOrdersQueryIsNotConstructed)
}

func (q ListOverdueServiceOrdersQuery) AsOf() time.Time { return q.asOf }

type OverdueServiceOrder struct {
	ID                  string    `json:"id"`
	OrderNumber         string    `json:"orderNumber"`
	Status              string    `json:"status"`
	AssignedTo          string    `json:"assignedTo,omitempty"`
	EstimatedCompletion time.Time `json:"estimatedCompletion"`
}

type ListOverdueServiceOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOverdueServiceOrdersQueryHandler(db *gorm.DB) ListOverdueServiceOrdersQueryHandler {
	return ListOverdueServiceOrdersQueryHandler{db: db}
}

// Handle returns the most overdue orders first.
func (h ListOverdueServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOverdueServiceOrdersQuery,
) ([]OverdueServiceOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			COALESCE(assigned_to, ''),
			estimated_completion
		FROM service_orders
		WHERE status NOT IN ('COMPLETED', 'DELIVERED', 'CANCELLED')
			AND estimated_completion IS NOT NULL
			AND estimated_completion < ?
		ORDER BY estimated_completion, order_number
	`, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OverdueServiceOrder, 0)
	for rows.Next() {
		var (
			o  OverdueServiceOrder
			id uuid.UUID
		)
		if err = rows.Scan(&id, &o.OrderNumber, &o.Status, &o.AssignedTo, &o.EstimatedCompletion); err != nil {
			return nil, err
		}
		o.ID = id.String()
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
