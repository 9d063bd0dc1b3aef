package services

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/model/vehicle"
)

var (
	ErrVehicleCustomerMismatch = errors.New("vehicle does not belong to this customer")
	ErrInactiveService         = errors.New("service is not active")
	ErrInactivePart            = errors.New("part is not active")
)

// PartReservation is the stock a created order must take from one part.
type PartReservation struct {
	PartID   kernel.UUID
	Quantity int
}

// OrderAssembler accumulates priced line items for one new service order.
//
//	a, err := services.NewOrderAssembler(customer, vehicle)
//	err = a.AddService(oilChange, 1)
//	err = a.AddPart(filter, 2)
//	order, err := a.Build("Revisão dos 30 mil km", serviceorder.Normal, userID)
//
// Callers stop at the first error. A failed Add leaves earlier lines in place,
// so Build must not be called afterwards.
type OrderAssembler struct {
	customerID   kernel.UUID
	vehicleID    kernel.UUID
	services     []serviceorder.LineItem
	parts        []serviceorder.LineItem
	reservations []PartReservation
	total        kernel.Money
}

// NewOrderAssembler starts an assembly for vehicle, which must be owned by c.
func NewOrderAssembler(c *customer.Customer, v *vehicle.Vehicle) (*OrderAssembler, error) {
	if err := errors.Join(c.Validate(), v.Validate()); err != nil {
		return nil, err
	}
	if !v.BelongsTo(c.ID()) {
		return nil, fmt.Errorf("%w: vehicle %s, customer %s", ErrVehicleCustomerMismatch, v.ID(), c.ID())
	}

	return &OrderAssembler{
		customerID: c.ID(),
		vehicleID:  v.ID(),
		total:      kernel.ZeroMoney(),
	}, nil
}

// AddService prices quantity units of an active catalog service.
func (a *OrderAssembler) AddService(s *catalog.Service, quantity int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.IsActive() {
		return fmt.Errorf("%w: %s", ErrInactiveService, s.Name())
	}

	item, err := serviceorder.NewLineItem(s.ID(), quantity, s.Price())
	if err != nil {
		return err
	}

	a.services = append(a.services, item)
	a.total = a.total.Add(item.TotalPrice())
	return nil
}

// AddPart prices quantity units of an active part. Stock is checked, not
// taken; the caller reserves it when the order is persisted.
func (a *OrderAssembler) AddPart(p *part.Part, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.IsActive() {
		return fmt.Errorf("%w: %s", ErrInactivePart, p.Name())
	}
	if !p.HasStock(quantity + a.reservedFor(p.ID())) {
		return fmt.Errorf("%w for part %s. Available: %d", part.ErrInsufficientStock, p.Name(), p.StockQuantity())
	}

	item, err := serviceorder.NewLineItem(p.ID(), quantity, p.Price())
	if err != nil {
		return err
	}

	a.parts = append(a.parts, item)
	a.reservations = append(a.reservations, PartReservation{PartID: p.ID(), Quantity: quantity})
	a.total = a.total.Add(item.TotalPrice())
	return nil
}

// Total is the running sum of every line added so far.
func (a *OrderAssembler) Total() kernel.Money {
	return a.total
}

// Reservations lists the stock to take, one entry per part line in request order.
func (a *OrderAssembler) Reservations() []PartReservation {
	out := make([]PartReservation, len(a.reservations))
	copy(out, a.reservations)
	return out
}

// Build creates the RECEIVED order with the assembled lines.
func (a *OrderAssembler) Build(
	description string,
	priority serviceorder.Priority,
	createdBy string,
) (*serviceorder.ServiceOrder, error) {
	return serviceorder.NewServiceOrder(
		a.customerID,
		a.vehicleID,
		description,
		priority,
		createdBy,
		a.services,
		a.parts,
	)
}

func (a *OrderAssembler) reservedFor(partID kernel.UUID) int {
	reserved := 0
	for _, r := range a.reservations {
		if r.PartID.IsEqual(partID) {
			reserved += r.Quantity
		}
	}
	return reserved
}
