package serviceorderrepo

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func fromDomain(o *serviceorder.ServiceOrder) ServiceOrderDTO {
	orderID := o.ID().Google()

	var approvedAmount *decimal.Decimal
	if amount := o.ApprovedAmount(); amount != nil {
		value := amount.Amount()
		approvedAmount = &value
	}

	dto := ServiceOrderDTO{
		ID:                  orderID,
		OrderNumber:         o.Number(),
		CustomerID:          o.CustomerID().Google(),
		VehicleID:           o.VehicleID().Google(),
		Status:              o.Status().String(),
		Priority:            o.Priority().String(),
		Description:         o.Description(),
		Diagnosis:           o.Diagnosis(),
		Observations:        o.Observations(),
		EstimatedCompletion: o.EstimatedCompletion(),
		ActualCompletion:    o.ActualCompletion(),
		TotalAmount:         o.TotalAmount().Amount(),
		ApprovedAmount:      approvedAmount,
		ApprovedAt:          o.ApprovedAt(),
		ApprovedBy:          o.ApprovedBy(),
		CreatedBy:           o.CreatedBy(),
		AssignedTo:          o.AssignedTo(),
		Version:             o.Version(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}

	for _, item := range o.ServiceItems() {
		dto.ServiceItems = append(dto.ServiceItems, ServiceItemDTO{
			ID:             item.ID().Google(),
			ServiceOrderID: orderID,
			ServiceID:      item.CatalogID().Google(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice().Amount(),
			TotalPrice:     item.TotalPrice().Amount(),
			Status:         item.Status().String(),
		})
	}
	for _, item := range o.PartItems() {
		dto.PartItems = append(dto.PartItems, PartItemDTO{
			ID:             item.ID().Google(),
			ServiceOrderID: orderID,
			PartID:         item.CatalogID().Google(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice().Amount(),
			TotalPrice:     item.TotalPrice().Amount(),
			Status:         item.Status().String(),
		})
	}
	for i, change := range o.History().Changes() {
		row := StatusHistoryDTO{
			ID:             change.ID().Google(),
			ServiceOrderID: orderID,
			Position:       i,
			NewStatus:      change.Next().String(),
			ChangedBy:      change.ChangedBy(),
			Reason:         change.Reason(),
			ChangedAt:      change.ChangedAt(),
		}
		if change.HasPrevious() {
			previous := change.Previous().String()
			row.PreviousStatus = &previous
		}
		dto.History = append(dto.History, row)
	}

	return dto
}

func toDomain(dto ServiceOrderDTO) (*serviceorder.ServiceOrder, error) {
	status, statusErr := serviceorder.ParseStatus(dto.Status)
	priority, priorityErr := serviceorder.ParsePriority(dto.Priority)
	if err := errors.Join(statusErr, priorityErr); err != nil {
		return nil, err
	}

	var approvedAmount *kernel.Money
	if dto.ApprovedAmount != nil {
		amount, err := kernel.NewMoney(*dto.ApprovedAmount)
		if err != nil {
			return nil, err
		}
		approvedAmount = &amount
	}

	services := make([]serviceorder.LineItem, 0, len(dto.ServiceItems))
	for _, row := range dto.ServiceItems {
		item, err := toLineItem(row.ID, row.ServiceID, row.Quantity, row.UnitPrice, row.Status)
		if err != nil {
			return nil, err
		}
		services = append(services, item)
	}

	parts := make([]serviceorder.LineItem, 0, len(dto.PartItems))
	for _, row := range dto.PartItems {
		item, err := toLineItem(row.ID, row.PartID, row.Quantity, row.UnitPrice, row.Status)
		if err != nil {
			return nil, err
		}
		parts = append(parts, item)
	}

	changes := make([]serviceorder.StatusChange, 0, len(dto.History))
	for _, row := range dto.History {
		change, err := toStatusChange(row)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return serviceorder.RestoreServiceOrder(serviceorder.State{
		ID:                  kernel.UUIDFromGoogle(dto.ID),
		Number:              dto.OrderNumber,
		CustomerID:          kernel.UUIDFromGoogle(dto.CustomerID),
		VehicleID:           kernel.UUIDFromGoogle(dto.VehicleID),
		Status:              status,
		Priority:            priority,
		Description:         dto.Description,
		Diagnosis:           dto.Diagnosis,
		Observations:        dto.Observations,
		EstimatedCompletion: dto.EstimatedCompletion,
		ActualCompletion:    dto.ActualCompletion,
		ApprovedAmount:      approvedAmount,
		ApprovedAt:          dto.ApprovedAt,
		ApprovedBy:          dto.ApprovedBy,
		CreatedBy:           dto.CreatedBy,
		AssignedTo:          dto.AssignedTo,
		Services:            services,
		Parts:               parts,
		History:             serviceorder.NewHistory(changes...),
		Version:             dto.Version,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
	})
}

func toLineItem(
	id, catalogID uuid.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	status string,
) (serviceorder.LineItem, error) {
	price, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return serviceorder.LineItem{}, err
	}

	itemStatus, err := serviceorder.ParseItemStatus(status)
	if err != nil {
		return serviceorder.LineItem{}, err
	}

	return serviceorder.RestoreLineItem(
		kernel.UUIDFromGoogle(id),
		kernel.UUIDFromGoogle(catalogID),
		quantity,
		price,
		itemStatus,
	)
}

func toStatusChange(row StatusHistoryDTO) (serviceorder.StatusChange, error) {
	next, err := serviceorder.ParseStatus(row.NewStatus)
	if err != nil {
		return serviceorder.StatusChange{}, err
	}

	previous := serviceorder.Unknown
	if row.PreviousStatus != nil {
		if previous, err = serviceorder.ParseStatus(*row.PreviousStatus); err != nil {
			return serviceorder.StatusChange{}, err
		}
	}

	return serviceorder.RestoreStatusChange(
		kernel.UUIDFromGoogle(row.ID),
		previous,
		next,
		row.ChangedBy,
		row.Reason,
		row.ChangedAt,
	), nil
}
