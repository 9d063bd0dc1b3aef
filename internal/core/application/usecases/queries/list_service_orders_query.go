package queries

import (
	"errors"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrListServiceOrdersQueryIsNotConstructed = errors.New(
	"ListServiceOrdersQuery must be created via NewListServiceOrdersQuery constructor",
)

// ListServiceOrdersQuery pages through orders, newest first, optionally
// filtered by status and customer.
//
// A zero page or limit takes DefaultPage or DefaultLimit.
type ListServiceOrdersQuery struct { //nolint:recvcheck //using for validation
	status     *serviceorder.Status
	customerID *kernel.UUID
	page       int
	limit      int

	guard guard.ConstructorGuard
}

func NewListServiceOrdersQuery(status, customerID string, page, limit int) (ListServiceOrdersQuery, error) {
	q := ListServiceOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	var statusErr, customerErr, pagingErr error
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := serviceorder.ParseStatus(status)
		statusErr = err
		q.status = &parsed
	}
	if customerID = strings.TrimSpace(customerID); customerID != "" {
		parsed, err := kernel.UUIDFromString(customerID)
		customerErr = err
		q.customerID = &parsed
	}
	q.page, q.limit, pagingErr = resolvePaging(page, limit)
	if err := errors.Join(statusErr, customerErr, pagingErr); err != nil {
		return ListServiceOrdersQuery{}, err
	}

	return q, nil
}

// resolvePaging applies the defaults to zero values and checks the bounds
// shared by every listing.
func resolvePaging(page, limit int) (int, int, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	var pageErr, limitErr error
	if page < 1 {
		pageErr = errs.NewValueIsInvalidErrorWithCause("page", errors.New("must be at least 1"))
	}
	if limit < 1 || limit > MaxLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLimit)
	}
	return page, limit, errors.Join(pageErr, limitErr)
}

func pageOffset(page, limit int) int {
	return (page - 1) * limit
}

func (q ListServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListServiceOrdersQueryIsNotConstructed)
}

func (q ListServiceOrdersQuery) Status() *serviceorder.Status { return q.status }
func (q ListServiceOrdersQuery) CustomerID() *kernel.UUID     { return q.customerID }
func (q ListServiceOrdersQuery) Page() int                    { return q.page }
func (q ListServiceOrdersQuery) Limit() int                   { return q.limit }

func (q ListServiceOrdersQuery) offset() int {
	return pageOffset(q.page, q.limit)
}

// ServiceOrderSummary is one row of the order listing. Items and history are
// left out; GetServiceOrderQuery returns them.
type ServiceOrderSummary struct {
	ID                  string     `json:"id"`
	OrderNumber         string     `json:"orderNumber"`
	CustomerID          string     `json:"customerId"`
	VehicleID           string     `json:"vehicleId"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	Description         string     `json:"description"`
	TotalAmount         string     `json:"totalAmount"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type ListServiceOrdersQueryResponse struct {
	Items []ServiceOrderSummary `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
