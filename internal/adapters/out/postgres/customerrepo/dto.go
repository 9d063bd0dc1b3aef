// Package customerrepo persists customer aggregates with GORM.
package customerrepo

import (
	"time"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row layout of the customers table. Document and email
// are unique.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Document     string    `gorm:"type:varchar(14);not null;uniqueIndex"`
	DocumentType string    `gorm:"type:varchar(4);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	Address      string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(2)"`
	ZipCode      string    `gorm:"type:varchar(9)"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	address := c.Address()
	return CustomerDTO{
		ID:           c.ID().Google(),
		Name:         c.Name(),
		Document:     c.Document().Value(),
		DocumentType: c.Document().Kind().String(),
		Email:        c.Email().Value(),
		Phone:        c.Phone(),
		Address:      address.Street,
		City:         address.City,
		State:        address.State,
		ZipCode:      address.ZipCode,
		Active:       c.IsActive(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	kind, err := kernel.ParseDocumentKind(dto.DocumentType)
	if err != nil {
		return nil, err
	}

	document, err := kernel.NewDocument(dto.Document, kind)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		kernel.UUIDFromGoogle(dto.ID),
		dto.Name,
		document,
		email,
		dto.Phone,
		customer.Address{
			Street:  dto.Address,
			City:    dto.City,
			State:   dto.State,
			ZipCode: dto.ZipCode,
		},
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
