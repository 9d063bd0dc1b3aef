// Package vehiclerepo persists vehicle aggregates with GORM.
package vehiclerepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

type VehicleDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	LicensePlate  string    `gorm:"type:varchar(7);not null;uniqueIndex"`
	Brand         string    `gorm:"type:varchar(100);not null"`
	Model         string    `gorm:"type:varchar(100);not null"`
	Year          int       `gorm:"type:int;not null"`
	Color         string    `gorm:"type:varchar(50)"`
	ChassisNumber string    `gorm:"type:varchar(17)"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:            v.ID().Google(),
		CustomerID:    v.CustomerID().Google(),
		LicensePlate:  v.LicensePlate().Value(),
		Brand:         v.Brand(),
		Model:         v.Model(),
		Year:          v.Year(),
		Color:         v.Color(),
		ChassisNumber: v.ChassisNumber(),
		Active:        v.IsActive(),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	plate, err := kernel.NewLicensePlate(dto.LicensePlate)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		kernel.UUIDFromGoogle(dto.ID),
		kernel.UUIDFromGoogle(dto.CustomerID),
		plate,
		dto.Brand,
		dto.Model,
		dto.Year,
		dto.Color,
		dto.ChassisNumber,
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
