package customer_test

import (
	"testing"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument(t *testing.T) kernel.Document {
	t.Helper()
	doc, err := kernel.NewDocument("529.982.247-25", kernel.CPF)
	require.NoError(t, err)
	return doc
}

func validEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create active customer with trimmed fields", func(t *testing.T) {
		c, err := customer.NewCustomer(
			"  Maria Silva ",
			validDocument(t),
			validEmail(t, "maria@example.com"),
			"11987654321",
			customer.Address{City: " São Paulo ", State: "SP"},
		)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Maria Silva", c.Name())
		assert.Equal(t, "São Paulo", c.Address().City)
		assert.True(t, c.IsActive())
		require.NoError(t, c.ID().Validate())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		c, err := customer.NewCustomer("Al", kernel.Document{}, kernel.Email{}, "123", customer.Address{})

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
		require.ErrorIs(t, err, kernel.ErrDocumentIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrEmailIsNotConstructed)
	})
}

func TestCustomer_UpdateInfo(t *testing.T) {
	newCustomer := func(t *testing.T) *customer.Customer {
		c, err := customer.NewCustomer("Maria Silva", validDocument(t), validEmail(t, "maria@example.com"),
			"11987654321", customer.Address{})
		require.NoError(t, err)
		return c
	}

	t.Run("should replace only provided fields", func(t *testing.T) {
		c := newCustomer(t)
		email := validEmail(t, "maria.silva@example.com")

		err := c.UpdateInfo(customer.Changes{Email: &email})

		require.NoError(t, err)
		assert.Equal(t, "maria.silva@example.com", c.Email().Value())
		assert.Equal(t, "Maria Silva", c.Name())
	})

	t.Run("should leave customer untouched when a field is invalid", func(t *testing.T) {
		c := newCustomer(t)
		name := "Joana Souza"
		phone := "123"

		err := c.UpdateInfo(customer.Changes{Name: &name, Phone: &phone})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Maria Silva", c.Name())
		assert.Equal(t, "11987654321", c.Phone())
	})
}

func TestCustomer_Activation(t *testing.T) {
	c, err := customer.NewCustomer("Maria Silva", validDocument(t), validEmail(t, "maria@example.com"),
		"11987654321", customer.Address{})
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive())

	c.Activate()
	assert.True(t, c.IsActive())
}

func TestCustomer_Snapshot(t *testing.T) {
	c, err := customer.NewCustomer("Maria Silva", validDocument(t), validEmail(t, "maria@example.com"),
		"11987654321", customer.Address{Street: "Rua A, 10"})
	require.NoError(t, err)

	s := c.Snapshot()

	assert.Equal(t, c.ID().String(), s.ID)
	assert.Equal(t, "52998224725", s.Document)
	assert.Equal(t, "529.982.247-25", s.DocumentFormatted)
	assert.Equal(t, "CPF", s.DocumentType)
	assert.Equal(t, "maria@example.com", s.Email)
	assert.Equal(t, "Rua A, 10", s.Address)
}

func TestCustomer_Validate(t *testing.T) {
	var c *customer.Customer

	assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
	assert.Equal(t, customer.ErrCustomerIsNotConstructed, (&customer.Customer{}).Validate())
}
