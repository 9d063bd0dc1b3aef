// Package serviceorderrepo persists the service order aggregate with its
// line items and status history.
package serviceorderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NumberSequence issues order numbers. It is created by postgres.Migrate.
const NumberSequence = "service_order_number_seq"

type ServiceOrderDTO struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderNumber         string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	VehicleID           uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status              string           `gorm:"type:varchar(20);not null;index"`
	Priority            string           `gorm:"type:varchar(10);not null"`
	Description         string           `gorm:"type:text;not null"`
	Diagnosis           string           `gorm:"type:text"`
	Observations        string           `gorm:"type:text"`
	EstimatedCompletion *time.Time       `gorm:"type:timestamptz"`
	ActualCompletion    *time.Time       `gorm:"type:timestamptz"`
	TotalAmount         decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	ApprovedAmount      *decimal.Decimal `gorm:"type:numeric(10,2)"`
	ApprovedAt          *time.Time       `gorm:"type:timestamptz"`
	ApprovedBy          string           `gorm:"type:varchar(100)"`
	CreatedBy           string           `gorm:"type:varchar(100);not null"`
	AssignedTo          string           `gorm:"type:varchar(100)"`
	Version             int              `gorm:"type:int;not null;default:0"`
	CreatedAt           time.Time        `gorm:"not null;index"`
	UpdatedAt           time.Time        `gorm:"not null"`

	ServiceItems []ServiceItemDTO   `gorm:"foreignKey:ServiceOrderID;constraint:OnDelete:CASCADE"`
	PartItems    []PartItemDTO      `gorm:"foreignKey:ServiceOrderID;constraint:OnDelete:CASCADE"`
	History      []StatusHistoryDTO `gorm:"foreignKey:ServiceOrderID;constraint:OnDelete:CASCADE"`
}

func (ServiceOrderDTO) TableName() string {
	return "service_orders"
}

type ServiceItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity       int             `gorm:"type:int;not null"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null"`
}

func (ServiceItemDTO) TableName() string {
	return "service_order_services"
}

type PartItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PartID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity       int             `gorm:"type:int;not null"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null"`
}

func (PartItemDTO) TableName() string {
	return "service_order_parts"
}

// StatusHistoryDTO is one row of the append-only history. Position is the
// index of the entry within its order and fixes the reading order.
type StatusHistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceOrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_history_position"`
	Position       int       `gorm:"type:int;not null;uniqueIndex:idx_history_position"`
	PreviousStatus *string   `gorm:"type:varchar(20)"`
	NewStatus      string    `gorm:"type:varchar(20);not null"`
	ChangedBy      string    `gorm:"type:varchar(100);not null"`
	Reason         string    `gorm:"type:text"`
	ChangedAt      time.Time `gorm:"not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "service_order_status_history"
}
