package queries

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery pages through customers, newest first. A nil active
// lists active and inactive customers alike.
type ListCustomersQuery struct { //nolint:recvcheck //using for validation
	active *bool
	page   int
	limit  int

	guard guard.ConstructorGuard
}

func NewListCustomersQuery(active *bool, page, limit int) (ListCustomersQuery, error) {
	page, limit, err := resolvePaging(page, limit)
	if err != nil {
		return ListCustomersQuery{}, err
	}

	q := ListCustomersQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
	if active != nil {
		flag := *active
		q.active = &flag
	}
	return q, nil
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Active() *bool { return q.active }
func (q ListCustomersQuery) Page() int     { return q.page }
func (q ListCustomersQuery) Limit() int    { return q.limit }

type ListCustomersQueryResponse struct {
	Items []customer.Snapshot `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	where, args := "", make([]any, 0, 3)
	if active := query.Active(); active != nil {
		where = " WHERE active = ?"
		args = append(args, *active)
	}
	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM customers`+where, args...).Scan(&total).Error; err != nil {
		return ListCustomersQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			name,
			document,
			document_type,
			email,
			phone,
			COALESCE(address, ''),
			COALESCE(city, ''),
			COALESCE(state, ''),
			COALESCE(zip_code, ''),
			active,
			created_at,
			updated_at
		FROM customers`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), pageOffset(query.Page(), query.Limit()))...).Rows()
	if err != nil {
		return ListCustomersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]customer.Snapshot, 0, query.Limit())
	for rows.Next() {
		var (
			snapshot customer.Snapshot
			id       uuid.UUID
		)
		err = rows.Scan(
			&id,
			&snapshot.Name,
			&snapshot.Document,
			&snapshot.DocumentType,
			&snapshot.Email,
			&snapshot.Phone,
			&snapshot.Address,
			&snapshot.City,
			&snapshot.State,
			&snapshot.ZipCode,
			&snapshot.Active,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return ListCustomersQueryResponse{}, err
		}

		snapshot.ID = id.String()
		snapshot.DocumentFormatted = formatDocument(snapshot.Document, snapshot.DocumentType)
		items = append(items, snapshot)
	}
	if err = rows.Err(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	return ListCustomersQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Limit: query.Limit(),
	}, nil
}

// formatDocument falls back to the stored digits for rows that no longer
// parse.
func formatDocument(value, kind string) string {
	documentKind, err := kernel.ParseDocumentKind(kind)
	if err != nil {
		return value
	}
	document, err := kernel.NewDocument(value, documentKind)
	if err != nil {
		return value
	}
	return document.Formatted()
}
