package serviceorder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const (
	minDescriptionLength = 5

	createdReason  = "Service order created"
	approvedReason = "Approved by customer"
)

var (
	ErrServiceOrderIsNotConstructed = errors.New("ServiceOrder must be created via NewServiceOrder constructor")

	// ErrInvalidTransition is returned when the requested status is not reachable
	// from the current one. The wrapped message names both statuses.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrIllegalApproval is returned when Approve is called outside AWAITING_APPROVAL.
	ErrIllegalApproval = errors.New("service order can only be approved while awaiting approval")

	ErrOrderNumberAlreadyAssigned = errors.New("order number is already assigned")
)

// ServiceOrder is the aggregate root of a repair job.
//
// Invariants:
//   - customerID, vehicleID and createdBy are set
//   - description has at least 5 characters after trimming
//   - totalAmount is the sum of all line item totals
//   - status only changes through the transition table
//   - approval fields are only written by Approve
//   - history holds one entry per status the order has entered
type ServiceOrder struct {
	id                  kernel.UUID
	number              string
	customerID          kernel.UUID
	vehicleID           kernel.UUID
	status              Status
	priority            Priority
	description         string
	diagnosis           string
	observations        string
	estimatedCompletion *time.Time
	actualCompletion    *time.Time
	totalAmount         kernel.Money
	approvedAmount      *kernel.Money
	approvedAt          *time.Time
	approvedBy          string
	createdBy           string
	assignedTo          string
	services            []LineItem
	parts               []LineItem
	history             History
	version             int
	createdAt           time.Time
	updatedAt           time.Time

	guard guard.ConstructorGuard
}

// NewServiceOrder builds a RECEIVED order from already-priced line items.
// The total is computed from the items and the history is seeded with the
// initial status.
//
// Orders are normally built through services.OrderAssembler, which resolves
// and prices the catalog references first.
func NewServiceOrder(
	customerID, vehicleID kernel.UUID,
	description string,
	priority Priority,
	createdBy string,
	services, parts []LineItem,
) (*ServiceOrder, error) {
	now := time.Now().UTC()
	o := &ServiceOrder{
		id:        kernel.NewUUID(),
		status:    Received,
		services:  slices.Clone(services),
		parts:     slices.Clone(parts),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setVehicleID(vehicleID),
		o.setDescription(description),
		o.setPriority(priority),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumLineItems(o.services, o.parts)
	o.history = NewHistory(StatusChange{
		id:        kernel.NewUUID(),
		previous:  Unknown,
		next:      Received,
		changedBy: o.createdBy,
		reason:    createdReason,
		changedAt: now,
	})

	return o, nil
}

// State is the persisted form of a ServiceOrder, used by RestoreServiceOrder.
type State struct {
	ID                  kernel.UUID
	Number              string
	CustomerID          kernel.UUID
	VehicleID           kernel.UUID
	Status              Status
	Priority            Priority
	Description         string
	Diagnosis           string
	Observations        string
	EstimatedCompletion *time.Time
	ActualCompletion    *time.Time
	ApprovedAmount      *kernel.Money
	ApprovedAt          *time.Time
	ApprovedBy          string
	CreatedBy           string
	AssignedTo          string
	Services            []LineItem
	Parts               []LineItem
	History             History
	Version             int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RestoreServiceOrder rebuilds an order loaded from storage. The total is
// recomputed from the line items.
func RestoreServiceOrder(state State) (*ServiceOrder, error) {
	o := &ServiceOrder{
		number:              state.Number,
		diagnosis:           state.Diagnosis,
		observations:        state.Observations,
		estimatedCompletion: state.EstimatedCompletion,
		actualCompletion:    state.ActualCompletion,
		approvedAmount:      state.ApprovedAmount,
		approvedAt:          state.ApprovedAt,
		approvedBy:          state.ApprovedBy,
		assignedTo:          state.AssignedTo,
		services:            slices.Clone(state.Services),
		parts:               slices.Clone(state.Parts),
		history:             state.History,
		version:             state.Version,
		createdAt:           state.CreatedAt,
		updatedAt:           state.UpdatedAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(state.ID),
		o.setCustomerID(state.CustomerID),
		o.setVehicleID(state.VehicleID),
		o.setStatus(state.Status),
		o.setDescription(state.Description),
		o.setPriority(state.Priority),
		o.setCreatedBy(state.CreatedBy),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumLineItems(o.services, o.parts)
	return o, nil
}

func (o *ServiceOrder) Validate() error {
	if o == nil {
		return ErrServiceOrderIsNotConstructed
	}
	return o.guard.Validate(ErrServiceOrderIsNotConstructed)
}

func (o *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *ServiceOrder) ID() kernel.UUID                 { return o.id }
func (o *ServiceOrder) Number() string                  { return o.number }
func (o *ServiceOrder) CustomerID() kernel.UUID         { return o.customerID }
func (o *ServiceOrder) VehicleID() kernel.UUID          { return o.vehicleID }
func (o *ServiceOrder) Status() Status                  { return o.status }
func (o *ServiceOrder) Priority() Priority              { return o.priority }
func (o *ServiceOrder) Description() string             { return o.description }
func (o *ServiceOrder) Diagnosis() string               { return o.diagnosis }
func (o *ServiceOrder) Observations() string            { return o.observations }
func (o *ServiceOrder) EstimatedCompletion() *time.Time { return copyTime(o.estimatedCompletion) }
func (o *ServiceOrder) ActualCompletion() *time.Time    { return copyTime(o.actualCompletion) }
func (o *ServiceOrder) TotalAmount() kernel.Money       { return o.totalAmount }
func (o *ServiceOrder) ApprovedAt() *time.Time          { return copyTime(o.approvedAt) }
func (o *ServiceOrder) ApprovedBy() string              { return o.approvedBy }
func (o *ServiceOrder) CreatedBy() string               { return o.createdBy }
func (o *ServiceOrder) AssignedTo() string              { return o.assignedTo }
func (o *ServiceOrder) ServiceItems() []LineItem        { return slices.Clone(o.services) }
func (o *ServiceOrder) PartItems() []LineItem           { return slices.Clone(o.parts) }
func (o *ServiceOrder) History() History                { return o.history }
func (o *ServiceOrder) CreatedAt() time.Time            { return o.createdAt }
func (o *ServiceOrder) UpdatedAt() time.Time            { return o.updatedAt }

// Version is the optimistic concurrency counter read from storage. New orders start at 0.
func (o *ServiceOrder) Version() int { return o.version }

func (o *ServiceOrder) ApprovedAmount() *kernel.Money {
	if o.approvedAmount == nil {
		return nil
	}
	amount := *o.approvedAmount
	return &amount
}

// IsApproved is true once Approve has succeeded, even if the order later
// moved back to an earlier status.
func (o *ServiceOrder) IsApproved() bool {
	return o.approvedAt != nil && o.approvedBy != ""
}

func (o *ServiceOrder) IsCompleted() bool {
	return o.status == Completed || o.status == Delivered
}

func (o *ServiceOrder) IsCancelled() bool {
	return o.status == Cancelled
}

// AssignNumber records the sequential number issued by persistence. It can be
// set only once.
func (o *ServiceOrder) AssignNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if o.number != "" {
		return fmt.Errorf("%w: %s", ErrOrderNumberAlreadyAssigned, o.number)
	}
	o.number = number
	return nil
}

// UpdateStatus moves the order to next and appends a history entry.
//
// The call fails with ErrInvalidTransition, leaving the order untouched, when
// next is not reachable from the current status. Entering COMPLETED stamps
// actualCompletion unless a stamp already exists. Open line items follow the
// order into COMPLETED or CANCELLED.
func (o *ServiceOrder) UpdateStatus(next Status, changedBy, reason string) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(next) {
		return fmt.Errorf("%w from %s to %s", ErrInvalidTransition, o.status, next)
	}
	changedBy = strings.TrimSpace(changedBy)
	if changedBy == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}

	o.transition(next, changedBy, strings.TrimSpace(reason), time.Now().UTC())
	return nil
}

// Approve records the customer's approval and moves the order to APPROVED.
// When amount is nil the current total is approved.
func (o *ServiceOrder) Approve(approvedBy string, amount *kernel.Money) error {
	if o.status != AwaitingApproval {
		return fmt.Errorf("%w: current status is %s", ErrIllegalApproval, o.status)
	}
	approvedBy = strings.TrimSpace(approvedBy)
	if approvedBy == "" {
		return errs.NewValueIsRequiredError("approvedBy")
	}

	approved := o.totalAmount
	if amount != nil {
		if err := amount.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("approvedAmount", err)
		}
		approved = *amount
	}

	now := time.Now().UTC()
	o.approvedBy = approvedBy
	o.approvedAt = &now
	o.approvedAmount = &approved
	o.transition(Approved, approvedBy, approvedReason, now)
	return nil
}

func (o *ServiceOrder) UpdateDiagnosis(diagnosis string) error {
	diagnosis = strings.TrimSpace(diagnosis)
	if diagnosis == "" {
		return errs.NewValueIsRequiredError("diagnosis")
	}
	o.diagnosis = diagnosis
	o.touch()
	return nil
}

// AddObservation appends a line to the observation log.
func (o *ServiceOrder) AddObservation(observation string) error {
	observation = strings.TrimSpace(observation)
	if observation == "" {
		return errs.NewValueIsRequiredError("observation")
	}
	if o.observations == "" {
		o.observations = observation
	} else {
		o.observations += "\n" + observation
	}
	o.touch()
	return nil
}

func (o *ServiceOrder) ChangePriority(priority Priority) error {
	if err := o.setPriority(priority); err != nil {
		return err
	}
	o.touch()
	return nil
}

func (o *ServiceOrder) SetEstimatedCompletion(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("estimatedCompletion")
	}
	at = at.UTC()
	o.estimatedCompletion = &at
	o.touch()
	return nil
}

func (o *ServiceOrder) AssignTo(user string) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return errs.NewValueIsRequiredError("assignedTo")
	}
	o.assignedTo = user
	o.touch()
	return nil
}

func (o *ServiceOrder) transition(next Status, changedBy, reason string, now time.Time) {
	previous := o.status
	o.status = next
	o.updatedAt = now

	if next == Completed && o.actualCompletion == nil {
		completedAt := now
		o.actualCompletion = &completedAt
	}

	switch {
	case next == Completed:
		o.closeOpenItems(ItemCompleted)
	case next == Cancelled:
		o.closeOpenItems(ItemCancelled)
	case previous == Completed && next == InProgress:
		o.reopenCompletedItems()
	default:
	}

	o.history = o.history.Append(StatusChange{
		id:        kernel.NewUUID(),
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		reason:    reason,
		changedAt: now,
	})
}

func (o *ServiceOrder) closeOpenItems(status ItemStatus) {
	for _, items := range [][]LineItem{o.services, o.parts} {
		for i := range items {
			if items[i].status.isOpen() {
				items[i].status = status
			}
		}
	}
}

// reopenCompletedItems undoes closeOpenItems(ItemCompleted). actualCompletion
// is left as it is.
func (o *ServiceOrder) reopenCompletedItems() {
	for _, items := range [][]LineItem{o.services, o.parts} {
		for i := range items {
			if items[i].status == ItemCompleted {
				items[i].status = ItemInProgress
			}
		}
	}
}

func (o *ServiceOrder) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ServiceOrder) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *ServiceOrder) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleId", err)
	}
	o.vehicleID = id
	return nil
}

func (o *ServiceOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *ServiceOrder) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if len([]rune(description)) < minDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"description",
			fmt.Errorf("must have at least %d characters", minDescriptionLength),
		)
	}
	o.description = description
	return nil
}

func (o *ServiceOrder) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *ServiceOrder) setCreatedBy(user string) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	o.createdBy = user
	return nil
}

func sumLineItems(groups ...[]LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, items := range groups {
		for _, item := range items {
			total = total.Add(item.totalPrice)
		}
	}
	return total
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
