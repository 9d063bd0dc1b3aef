package http

import (
	"time"

	"workshop/internal/core/domain/model/customer"

	"github.com/shopspring/decimal"
)

// Request bodies. Tags check shape only; the domain constructors own the
// business rules and report them as 400 or 422.

type AddressRequest struct {
	Street  string `json:"street" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"omitempty,len=2"`
	ZipCode string `json:"zipCode" validate:"max=9"`
}

func (r AddressRequest) toDomain() customer.Address {
	return customer.Address{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
	}
}

type CreateCustomerRequest struct {
	Name         string         `json:"name" validate:"required,max=255"`
	DocumentType string         `json:"documentType" validate:"required,oneof=CPF CNPJ cpf cnpj"`
	Document     string         `json:"document" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Phone        string         `json:"phone" validate:"required,max=20"`
	Address      AddressRequest `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string         `json:"name" validate:"omitempty,max=255"`
	Email   *string         `json:"email" validate:"omitempty,email"`
	Phone   *string         `json:"phone" validate:"omitempty,max=20"`
	Address *AddressRequest `json:"address"`
}

type CreateVehicleRequest struct {
	CustomerID    string `json:"customerId" validate:"required,uuid"`
	LicensePlate  string `json:"licensePlate" validate:"required"`
	Brand         string `json:"brand" validate:"required,max=50"`
	Model         string `json:"model" validate:"required,max=50"`
	Year          int    `json:"year" validate:"required"`
	Color         string `json:"color" validate:"max=30"`
	ChassisNumber string `json:"chassisNumber" validate:"max=17"`
}

type CreateServiceRequest struct {
	Name              string          `json:"name" validate:"required,max=255"`
	Description       string          `json:"description"`
	EstimatedDuration int             `json:"estimatedDuration" validate:"gte=0"`
	Price             decimal.Decimal `json:"price"`
	Category          string          `json:"category" validate:"required"`
}

type CreatePartRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	PartNumber    string          `json:"partNumber" validate:"required,max=50"`
	Description   string          `json:"description"`
	Manufacturer  string          `json:"manufacturer" validate:"max=100"`
	Unit          string          `json:"unit" validate:"max=10"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stockQuantity" validate:"omitempty,gte=0"`
	MinStockLevel *int            `json:"minStockLevel" validate:"omitempty,gte=0"`
}

type RestockPartRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type ServiceLineRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type PartLineRequest struct {
	PartID   string `json:"partId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type CreateServiceOrderRequest struct {
	CustomerID          string               `json:"customerId" validate:"required,uuid"`
	VehicleID           string               `json:"vehicleId" validate:"required,uuid"`
	Description         string               `json:"description" validate:"required"`
	Priority            string               `json:"priority"`
	Services            []ServiceLineRequest `json:"services" validate:"dive"`
	Parts               []PartLineRequest    `json:"parts" validate:"dive"`
	EstimatedCompletion *time.Time           `json:"estimatedCompletion"`
}

type UpdateServiceOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"max=500"`
}

type ApproveServiceOrderRequest struct {
	ApprovedAmount *decimal.Decimal `json:"approvedAmount"`
}

type UpdateServiceOrderDetailsRequest struct {
	Diagnosis           *string    `json:"diagnosis"`
	Observation         *string    `json:"observation"`
	Priority            *string    `json:"priority"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion"`
	AssignedTo          *string    `json:"assignedTo" validate:"omitempty,max=100"`
}
