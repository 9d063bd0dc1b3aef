package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListServiceOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListServiceOrdersQueryHandler(db *gorm.DB) ListServiceOrdersQueryHandler {
	return ListServiceOrdersQueryHandler{db: db}
}

// Handle returns the requested page and the number of orders matching the
// filters across all pages.
func (h ListServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListServiceOrdersQuery,
) (ListServiceOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListServiceOrdersQueryResponse{}, err
	}

	where, args := listFilters(query)
	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM service_orders`+where, args...).Scan(&total).Error; err != nil {
		return ListServiceOrdersQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			vehicle_id,
			status,
			priority,
			description,
			total_amount,
			estimated_completion,
			created_at
		FROM service_orders`+where+`
		ORDER BY created_at DESC, order_number DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.offset())...).Rows()
	if err != nil {
		return ListServiceOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]ServiceOrderSummary, 0, query.Limit())
	for rows.Next() {
		var (
			summary                   ServiceOrderSummary
			id, customerID, vehicleID uuid.UUID
			totalAmount               decimal.Decimal
			estimatedCompletion       *time.Time
		)
		err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&customerID,
			&vehicleID,
			&summary.Status,
			&summary.Priority,
			&summary.Description,
			&totalAmount,
			&estimatedCompletion,
			&summary.CreatedAt,
		)
		if err != nil {
			return ListServiceOrdersQueryResponse{}, err
		}

		summary.ID = id.String()
		summary.CustomerID = customerID.String()
		summary.VehicleID = vehicleID.String()
		summary.TotalAmount = totalAmount.StringFixed(2)
		summary.EstimatedCompletion = estimatedCompletion
		items = append(items, summary)
	}
	if err = rows.Err(); err != nil {
		return ListServiceOrdersQueryResponse{}, err
	}

	return ListServiceOrdersQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Limit: query.Limit(),
	}, nil
}

func listFilters(query ListServiceOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}
	if customerID := query.CustomerID(); customerID != nil {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, customerID.Google())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
