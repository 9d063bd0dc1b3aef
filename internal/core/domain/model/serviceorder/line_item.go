package serviceorder

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ItemStatus tracks fulfillment of a single line item.
type ItemStatus int

const (
	UnknownItemStatus ItemStatus = iota
	ItemPending
	ItemInProgress
	ItemCompleted
	ItemCancelled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		UnknownItemStatus: "UNKNOWN",
		ItemPending:       "PENDING",
		ItemInProgress:    "IN_PROGRESS",
		ItemCompleted:     "COMPLETED",
		ItemCancelled:     "CANCELLED",
	}
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func ParseItemStatus(s string) (ItemStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getItemStatusStrings() {
		if status != UnknownItemStatus && str == name {
			return status, nil
		}
	}
	return UnknownItemStatus, errs.NewValueIsInvalidErrorWithCause(
		"item status",
		fmt.Errorf("%q is not a valid item status", s),
	)
}

func (s ItemStatus) isOpen() bool {
	return s == ItemPending || s == ItemInProgress
}

// LineItem is a priced quantity of a catalog service or part.
// totalPrice always equals unitPrice multiplied by quantity.
type LineItem struct {
	id         kernel.UUID
	catalogID  kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	totalPrice kernel.Money
	status     ItemStatus
}

// NewLineItem prices quantity units of catalogID at unitPrice. The item starts PENDING.
func NewLineItem(catalogID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	return RestoreLineItem(kernel.NewUUID(), catalogID, quantity, unitPrice, ItemPending)
}

func RestoreLineItem(
	id, catalogID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	status ItemStatus,
) (LineItem, error) {
	var quantityErr, statusErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if status == UnknownItemStatus {
		statusErr = errs.NewValueIsInvalidError("item status")
	}
	if err := errors.Join(
		id.Validate(),
		catalogID.Validate(),
		unitPrice.Validate(),
		quantityErr,
		statusErr,
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:         id,
		catalogID:  catalogID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: unitPrice.Times(quantity),
		status:     status,
	}, nil
}

func (i LineItem) ID() kernel.UUID          { return i.id }
func (i LineItem) CatalogID() kernel.UUID   { return i.catalogID }
func (i LineItem) Quantity() int            { return i.quantity }
func (i LineItem) UnitPrice() kernel.Money  { return i.unitPrice }
func (i LineItem) TotalPrice() kernel.Money { return i.totalPrice }
func (i LineItem) Status() ItemStatus       { return i.status }

// LineItemSnapshot is the flat view of a LineItem.
type LineItemSnapshot struct {
	ID         string `json:"id"`
	CatalogID  string `json:"catalogId"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
	TotalPrice string `json:"totalPrice"`
	Status     string `json:"status"`
}

func (i LineItem) Snapshot() LineItemSnapshot {
	return LineItemSnapshot{
		ID:         i.id.String(),
		CatalogID:  i.catalogID.String(),
		Quantity:   i.quantity,
		UnitPrice:  i.unitPrice.String(),
		TotalPrice: i.totalPrice.String(),
		Status:     i.status.String(),
	}
}
