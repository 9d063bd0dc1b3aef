package customer

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
	minNameLength  = 3
	minPhoneLength = 10
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Address groups the optional postal fields of a customer.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Customer is a client of the shop.
//
// Invariants:
//   - name has at least 3 characters after trimming
//   - phone has at least 10 characters
//   - document and email are valid value objects
type Customer struct {
	id        kernel.UUID
	name      string
	document  kernel.Document
	email     kernel.Email
	phone     string
	address   Address
	active    bool
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates an active customer. All field errors are reported together.
func NewCustomer(
	name string,
	document kernel.Document,
	email kernel.Email,
	phone string,
	address Address,
) (*Customer, error) {
	now := time.Now().UTC()
	c := &Customer{
		id:        kernel.NewUUID(),
		address:   trimAddress(address),
		active:    true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setDocument(document),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	document kernel.Document,
	email kernel.Email,
	phone string,
	address Address,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	c := &Customer{
		address:   address,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setDocument(document),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID           { return c.id }
func (c *Customer) Name() string              { return c.name }
func (c *Customer) Document() kernel.Document { return c.document }
func (c *Customer) Email() kernel.Email       { return c.email }
func (c *Customer) Phone() string             { return c.phone }
func (c *Customer) Address() Address          { return c.address }
func (c *Customer) IsActive() bool            { return c.active }
func (c *Customer) CreatedAt() time.Time      { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time      { return c.updatedAt }

// Changes lists the fields an UpdateInfo call replaces. Nil fields are kept.
type Changes struct {
	Name    *string
	Email   *kernel.Email
	Phone   *string
	Address *Address
}

// UpdateInfo applies changes atomically: if any field is invalid the customer
// is left untouched.
func (c *Customer) UpdateInfo(changes Changes) error {
	next := *c

	var nameErr, emailErr, phoneErr error
	if changes.Name != nil {
		nameErr = next.setName(*changes.Name)
	}
	if changes.Email != nil {
		emailErr = next.setEmail(*changes.Email)
	}
	if changes.Phone != nil {
		phoneErr = next.setPhone(*changes.Phone)
	}
	if err := errors.Join(nameErr, emailErr, phoneErr); err != nil {
		return err
	}
	if changes.Address != nil {
		next.address = trimAddress(*changes.Address)
	}

	next.updatedAt = time.Now().UTC()
	*c = next
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
	c.updatedAt = time.Now().UTC()
}

func (c *Customer) Activate() {
	c.active = true
	c.updatedAt = time.Now().UTC()
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("must have at least %d characters", minNameLength),
		)
	}
	c.name = name
	return nil
}

func (c *Customer) setDocument(document kernel.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}
	c.document = document
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if len(phone) < minPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("must have at least %d characters", minPhoneLength),
		)
	}
	c.phone = phone
	return nil
}

func trimAddress(a Address) Address {
	return Address{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		ZipCode: strings.TrimSpace(a.ZipCode),
	}
}
