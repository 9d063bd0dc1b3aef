// Package part models inventory items that service orders consume.
//
// Stock never goes negative. A part is low on stock when its quantity is at or
// below its minimum level.
package part

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
	DefaultMinStockLevel = 5
	DefaultUnit          = "un"

	minNameLength       = 2
	minPartNumberLength = 2
)

var (
	ErrPartIsNotConstructed = errors.New("Part must be created via NewPart constructor")

	// ErrInsufficientStock is returned when a removal or reservation exceeds the available quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Details carries the optional descriptive fields of a part.
type Details struct {
	Description  string
	Manufacturer string
	Unit         string
}

type Part struct {
	id            kernel.UUID
	name          string
	partNumber    string
	details       Details
	price         kernel.Money
	stockQuantity int
	minStockLevel int
	active        bool
	createdAt     time.Time
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewPart creates an active part. An empty unit becomes DefaultUnit.
func NewPart(
	name, partNumber string,
	details Details,
	price kernel.Money,
	stockQuantity, minStockLevel int,
) (*Part, error) {
	now := time.Now().UTC()
	p := &Part{
		id:        kernel.NewUUID(),
		details:   normalizeDetails(details),
		active:    true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setPartNumber(partNumber),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
		p.setMinStockLevel(minStockLevel),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func RestorePart(
	id kernel.UUID,
	name, partNumber string,
	details Details,
	price kernel.Money,
	stockQuantity, minStockLevel int,
	active bool,
	createdAt, updatedAt time.Time,
) (*Part, error) {
	p := &Part{
		id:        id,
		details:   normalizeDetails(details),
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		p.setName(name),
		p.setPartNumber(partNumber),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
		p.setMinStockLevel(minStockLevel),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Part) Validate() error {
	if p == nil {
		return ErrPartIsNotConstructed
	}
	return p.guard.Validate(ErrPartIsNotConstructed)
}

func (p *Part) ID() kernel.UUID      { return p.id }
func (p *Part) Name() string         { return p.name }
func (p *Part) PartNumber() string   { return p.partNumber }
func (p *Part) Description() string  { return p.details.Description }
func (p *Part) Manufacturer() string { return p.details.Manufacturer }
func (p *Part) Unit() string         { return p.details.Unit }
func (p *Part) Price() kernel.Money  { return p.price }
func (p *Part) StockQuantity() int   { return p.stockQuantity }
func (p *Part) MinStockLevel() int   { return p.minStockLevel }
func (p *Part) IsActive() bool       { return p.active }
func (p *Part) CreatedAt() time.Time { return p.createdAt }
func (p *Part) UpdatedAt() time.Time { return p.updatedAt }

func (p *Part) IsLowStock() bool {
	return p.stockQuantity <= p.minStockLevel
}

// HasStock reports whether quantity units can be taken from stock.
func (p *Part) HasStock(quantity int) bool {
	return p.stockQuantity >= quantity
}

func (p *Part) UpdatePrice(price kernel.Money) error {
	if err := p.setPrice(price); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Part) AddStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.stockQuantity += quantity
	p.touch()
	return nil
}

func (p *Part) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !p.HasStock(quantity) {
		return fmt.Errorf("%w for part %s. Available: %d", ErrInsufficientStock, p.name, p.stockQuantity)
	}
	p.stockQuantity -= quantity
	p.touch()
	return nil
}

// SetStock overwrites the quantity after a physical count.
func (p *Part) SetStock(quantity int) error {
	if err := p.setStockQuantity(quantity); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Part) Deactivate() {
	p.active = false
	p.touch()
}

func (p *Part) Activate() {
	p.active = true
	p.touch()
}

// Snapshot is the flat, serializable view of a Part.
type Snapshot struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PartNumber    string    `json:"partNumber"`
	Description   string    `json:"description,omitempty"`
	Manufacturer  string    `json:"manufacturer,omitempty"`
	Unit          string    `json:"unit"`
	Price         string    `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	MinStockLevel int       `json:"minStockLevel"`
	LowStock      bool      `json:"lowStock"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Part) Snapshot() Snapshot {
	return Snapshot{
		ID:            p.id.String(),
		Name:          p.name,
		PartNumber:    p.partNumber,
		Description:   p.details.Description,
		Manufacturer:  p.details.Manufacturer,
		Unit:          p.details.Unit,
		Price:         p.price.String(),
		StockQuantity: p.stockQuantity,
		MinStockLevel: p.minStockLevel,
		LowStock:      p.IsLowStock(),
		Active:        p.active,
		CreatedAt:     p.createdAt,
		UpdatedAt:     p.updatedAt,
	}
}

func (p *Part) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Part) setName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("must have at least %d characters", minNameLength))
	}
	p.name = name
	return nil
}

func (p *Part) setPartNumber(partNumber string) error {
	partNumber = strings.ToUpper(strings.TrimSpace(partNumber))
	if len(partNumber) < minPartNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"partNumber",
			fmt.Errorf("must have at least %d characters", minPartNumberLength),
		)
	}
	p.partNumber = partNumber
	return nil
}

func (p *Part) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Part) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity", fmt.Errorf("%d is negative", quantity))
	}
	p.stockQuantity = quantity
	return nil
}

func (p *Part) setMinStockLevel(level int) error {
	if level < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minStockLevel", fmt.Errorf("%d is negative", level))
	}
	p.minStockLevel = level
	return nil
}

func normalizeDetails(d Details) Details {
	unit := strings.TrimSpace(d.Unit)
	if unit == "" {
		unit = DefaultUnit
	}
	return Details{
		Description:  strings.TrimSpace(d.Description),
		Manufacturer: strings.TrimSpace(d.Manufacturer),
		Unit:         unit,
	}
}
