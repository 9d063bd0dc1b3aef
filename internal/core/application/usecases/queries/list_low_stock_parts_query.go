package queries

import (
	"context"
	"errors"

	"workshop/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListLowStockPartsQueryIsNotConstructed = errors.New(
	"ListLowStockPartsQuery must be created via NewListLowStockPartsQuery constructor",
)

// ListLowStockPartsQuery selects active parts whose stock is at or below
// their minimum level.
type ListLowStockPartsQuery struct {
	guard guard.ConstructorGuard
}

func NewListLowStockPartsQuery() ListLowStockPartsQuery {
	return ListLowStockPartsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListLowStockPartsQuery) Validate() error {
	return q.guard.Validate(ErrListLowStockPartsQueryIsNotConstructed)
}

type LowStockPart struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PartNumber    string `json:"partNumber"`
	Unit          string `json:"unit"`
	StockQuantity int    `json:"stockQuantity"`
	MinStockLevel int    `json:"minStockLevel"`
}

type ListLowStockPartsQueryHandler struct {
	db *gorm.DB
}

func NewListLowStockPartsQueryHandler(db *gorm.DB) ListLowStockPartsQueryHandler {
	return ListLowStockPartsQueryHandler{db: db}
}

// Handle orders the parts by how far they are below their minimum, the
// emptiest first.
func (h ListLowStockPartsQueryHandler) Handle(
	ctx context.Context,
	query ListLowStockPartsQuery,
) ([]LowStockPart, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			part_number,
			unit,
			stock_quantity,
			min_stock_level
		FROM parts
		WHERE active AND stock_quantity <= min_stock_level
		ORDER BY stock_quantity - min_stock_level, part_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]LowStockPart, 0)
	for rows.Next() {
		var (
			p  LowStockPart
			id uuid.UUID
		)
		if err = rows.Scan(&id, &p.Name, &p.PartNumber, &p.Unit, &p.StockQuantity, &p.MinStockLevel); err != nil {
			return nil, err
		}
		p.ID = id.String()
		parts = append(parts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}
