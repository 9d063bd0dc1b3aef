// Package partrepo persists inventory parts with GORM.
package partrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartDTO is the row layout of the parts table. The check constraint keeps
// stock from going negative even outside the repository.
type PartDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	PartNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description   string          `gorm:"type:text"`
	Manufacturer  string          `gorm:"type:varchar(100)"`
	Unit          string          `gorm:"type:varchar(10);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	StockQuantity int             `gorm:"type:int;not null;check:stock_quantity >= 0"`
	MinStockLevel int             `gorm:"type:int;not null"`
	Active        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (PartDTO) TableName() string {
	return "parts"
}

func fromDomain(p *part.Part) PartDTO {
	return PartDTO{
		ID:            p.ID().Google(),
		Name:          p.Name(),
		PartNumber:    p.PartNumber(),
		Description:   p.Description(),
		Manufacturer:  p.Manufacturer(),
		Unit:          p.Unit(),
		Price:         p.Price().Amount(),
		StockQuantity: p.StockQuantity(),
		MinStockLevel: p.MinStockLevel(),
		Active:        p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func toDomain(dto PartDTO) (*part.Part, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return part.RestorePart(
		kernel.UUIDFromGoogle(dto.ID),
		dto.Name,
		dto.PartNumber,
		part.Details{
			Description:  dto.Description,
			Manufacturer: dto.Manufacturer,
			Unit:         dto.Unit,
		},
		price,
		dto.StockQuantity,
		dto.MinStockLevel,
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
