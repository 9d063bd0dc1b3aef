package customer

import "time"

// Snapshot is the flat, serializable view of a Customer.
type Snapshot struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Document          string    `json:"document"`
	DocumentType      string    `json:"documentType"`
	DocumentFormatted string    `json:"documentFormatted"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	ZipCode           string    `json:"zipCode,omitempty"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (c *Customer) Snapshot() Snapshot {
	return Snapshot{
		ID:                c.id.String(),
		Name:              c.name,
		Document:          c.document.Value(),
		DocumentType:      c.document.Kind().String(),
		DocumentFormatted: c.document.Formatted(),
		Email:             c.email.Value(),
		Phone:             c.phone,
		Address:           c.address.Street,
		City:              c.address.City,
		State:             c.address.State,
		ZipCode:           c.address.ZipCode,
		Active:            c.active,
		CreatedAt:         c.createdAt,
		UpdatedAt:         c.updatedAt,
	}
}
