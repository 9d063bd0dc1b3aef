// Package vehicle models customer cars identified by their license plate.
package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const (
	minBrandLength = 2
	minModelLength = 2
	minYear        = 1900
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle belongs to exactly one customer.
//
// Invariants:
//   - brand and model have at least 2 characters after trimming
//   - year is within [1900, current year + 1]
//   - customerID is set
type Vehicle struct {
	id            kernel.UUID
	customerID    kernel.UUID
	licensePlate  kernel.LicensePlate
	brand         string
	model         string
	year          int
	color         string
	chassisNumber string
	active        bool
	createdAt     time.Time
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewVehicle creates an active vehicle owned by customerID. Color and
// chassisNumber are optional.
func NewVehicle(
	customerID kernel.UUID,
	licensePlate kernel.LicensePlate,
	brand, model string,
	year int,
	color, chassisNumber string,
) (*Vehicle, error) {
	now := time.Now().UTC()
	v := &Vehicle{
		id:            kernel.NewUUID(),
		color:         strings.TrimSpace(color),
		chassisNumber: strings.ToUpper(strings.TrimSpace(chassisNumber)),
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setCustomerID(customerID),
		v.setLicensePlate(licensePlate),
		v.setBrand(brand),
		v.setModel(model),
		v.setYear(year),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rebuilds a vehicle loaded from storage.
func RestoreVehicle(
	id, customerID kernel.UUID,
	licensePlate kernel.LicensePlate,
	brand, model string,
	year int,
	color, chassisNumber string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		color:         color,
		chassisNumber: chassisNumber,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	// The year upper bound moves with the calendar, so stored years are not re-checked.
	v.year = year

	if err := errors.Join(
		v.setID(id),
		v.setCustomerID(customerID),
		v.setLicensePlate(licensePlate),
		v.setBrand(brand),
		v.setModel(model),
	); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() kernel.UUID                   { return v.id }
func (v *Vehicle) CustomerID() kernel.UUID           { return v.customerID }
func (v *Vehicle) LicensePlate() kernel.LicensePlate { return v.licensePlate }
func (v *Vehicle) Brand() string                     { return v.brand }
func (v *Vehicle) Model() string                     { return v.model }
func (v *Vehicle) Year() int                         { return v.year }
func (v *Vehicle) Color() string                     { return v.color }
func (v *Vehicle) ChassisNumber() string             { return v.chassisNumber }
func (v *Vehicle) IsActive() bool                    { return v.active }
func (v *Vehicle) CreatedAt() time.Time              { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time              { return v.updatedAt }

// BelongsTo reports whether the vehicle is owned by customerID.
func (v *Vehicle) BelongsTo(customerID kernel.UUID) bool {
	return v.customerID.IsEqual(customerID)
}

// UpdateInfo replaces brand, model, year and color together. The vehicle is
// unchanged when any value is invalid.
func (v *Vehicle) UpdateInfo(brand, model string, year int, color string) error {
	next := *v
	if err := errors.Join(
		next.setBrand(brand),
		next.setModel(model),
		next.setYear(year),
	); err != nil {
		return err
	}

	next.color = strings.TrimSpace(color)
	next.updatedAt = time.Now().UTC()
	*v = next
	return nil
}

func (v *Vehicle) Deactivate() {
	v.active = false
	v.updatedAt = time.Now().UTC()
}

func (v *Vehicle) Activate() {
	v.active = true
	v.updatedAt = time.Now().UTC()
}

// Snapshot is the flat, serializable view of a Vehicle.
type Snapshot struct {
	ID                    string    `json:"id"`
	CustomerID            string    `json:"customerId"`
	LicensePlate          string    `json:"licensePlate"`
	LicensePlateFormatted string    `json:"licensePlateFormatted"`
	Brand                 string    `json:"brand"`
	Model                 string    `json:"model"`
	Year                  int       `json:"year"`
	Color                 string    `json:"color,omitempty"`
	ChassisNumber         string    `json:"chassisNumber,omitempty"`
	Active                bool      `json:"active"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{
		ID:                    v.id.String(),
		CustomerID:            v.customerID.String(),
		LicensePlate:          v.licensePlate.Value(),
		LicensePlateFormatted: v.licensePlate.Formatted(),
		Brand:                 v.brand,
		Model:                 v.model,
		Year:                  v.year,
		Color:                 v.color,
		ChassisNumber:         v.chassisNumber,
		Active:                v.active,
		CreatedAt:             v.createdAt,
		UpdatedAt:             v.updatedAt,
	}
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	v.customerID = customerID
	return nil
}

func (v *Vehicle) setLicensePlate(plate kernel.LicensePlate) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	v.licensePlate = plate
	return nil
}

func (v *Vehicle) setBrand(brand string) error {
	brand = strings.TrimSpace(brand)
	if len([]rune(brand)) < minBrandLength {
		return errs.NewValueIsInvalidErrorWithCause("brand", fmt.Errorf("must have at least %d characters", minBrandLength))
	}
	v.brand = brand
	return nil
}

func (v *Vehicle) setModel(model string) error {
	model = strings.TrimSpace(model)
	if len([]rune(model)) < minModelLength {
		return errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("must have at least %d characters", minModelLength))
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < minYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, minYear, maxYear)
	}
	v.year = year
	return nil
}
