package commands

import (
	"errors"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer. Document and email are
// parsed into value objects when the command is built.
//
//	cmd, err := NewCreateCustomerCommand("Maria Silva", "CPF", "529.982.247-25",
//	    "maria@example.com", "11987654321", customer.Address{City: "Campinas"})
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name     string
	document kernel.Document
	email    kernel.Email
	phone    string
	address  customer.Address

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(
	name, documentType, document, email, phone string,
	address customer.Address,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocument(documentType, document),
		cmd.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string              { return c.name }
func (c CreateCustomerCommand) Document() kernel.Document { return c.document }
func (c CreateCustomerCommand) Email() kernel.Email       { return c.email }
func (c CreateCustomerCommand) Phone() string             { return c.phone }
func (c CreateCustomerCommand) Address() customer.Address { return c.address }

func (c *CreateCustomerCommand) setDocument(documentType, raw string) error {
	kind, err := kernel.ParseDocumentKind(documentType)
	if err != nil {
		return err
	}

	document, err := kernel.NewDocument(raw, kind)
	if err != nil {
		return err
	}

	c.document = document
	return nil
}

func (c *CreateCustomerCommand) setEmail(raw string) error {
	email, err := kernel.NewEmail(raw)
	if err != nil {
		return err
	}

	c.email = email
	return nil
}
