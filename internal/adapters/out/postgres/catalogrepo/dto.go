// Package catalogrepo persists catalog services with GORM.
package catalogrepo

import (
	"time"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Description       string          `gorm:"type:text"`
	EstimatedDuration int             `gorm:"type:int;not null"`
	Price             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category          string          `gorm:"type:varchar(20);not null;index"`
	Active            bool            `gorm:"not null;default:true"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

func fromDomain(s *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:                s.ID().Google(),
		Name:              s.Name(),
		Description:       s.Description(),
		EstimatedDuration: s.EstimatedDuration(),
		Price:             s.Price().Amount(),
		Category:          s.Category().String(),
		Active:            s.IsActive(),
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	category, err := catalog.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreService(
		kernel.UUIDFromGoogle(dto.ID),
		dto.Name,
		dto.Description,
		dto.EstimatedDuration,
		price,
		category,
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
