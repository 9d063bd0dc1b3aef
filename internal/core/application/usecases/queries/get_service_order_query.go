package queries

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetServiceOrderQueryIsNotConstructed = errors.New(
	"GetServiceOrderQuery must be created via NewGetServiceOrderQuery constructor",
)

// GetServiceOrderQuery looks an order up by id or, when the reference is not
// a UUID, by its order number (e.g. OS000042).
type GetServiceOrderQuery struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	number string

	guard guard.ConstructorGuard
}

func NewGetServiceOrderQuery(reference string) (GetServiceOrderQuery, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return GetServiceOrderQuery{}, errs.NewValueIsRequiredError("serviceOrderId")
	}

	q := GetServiceOrderQuery{guard: guard.NewConstructorGuard()}
	if id, err := kernel.UUIDFromString(reference); err == nil {
		q.id = id
	} else {
		q.number = strings.ToUpper(reference)
	}
	return q, nil
}

func (q GetServiceOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceOrderQueryIsNotConstructed)
}

// ByNumber reports whether the query carries an order number instead of an id.
func (q GetServiceOrderQuery) ByNumber() bool { return q.number != "" }

func (q GetServiceOrderQuery) ID() kernel.UUID { return q.id }
func (q GetServiceOrderQuery) Number() string  { return q.number }
