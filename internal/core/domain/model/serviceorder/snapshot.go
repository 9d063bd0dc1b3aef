package serviceorder

import "time"

// Snapshot is the flat, serializable view of a ServiceOrder with its line
// items and status history. Money values are rendered with two decimals.
type Snapshot struct {
	ID                  string                 `json:"id"`
	OrderNumber         string                 `json:"orderNumber"`
	CustomerID          string                 `json:"customerId"`
	VehicleID           string                 `json:"vehicleId"`
	Status              string                 `json:"status"`
	Priority            string                 `json:"priority"`
	Description         string                 `json:"description"`
	Diagnosis           string                 `json:"diagnosis,omitempty"`
	Observations        string                 `json:"observations,omitempty"`
	EstimatedCompletion *time.Time             `json:"estimatedCompletion,omitempty"`
	ActualCompletion    *time.Time             `json:"actualCompletion,omitempty"`
	TotalAmount         string                 `json:"totalAmount"`
	ApprovedAmount      string                 `json:"approvedAmount,omitempty"`
	ApprovedAt          *time.Time             `json:"approvedAt,omitempty"`
	ApprovedBy          string                 `json:"approvedBy,omitempty"`
	CreatedBy           string                 `json:"createdBy"`
	AssignedTo          string                 `json:"assignedTo,omitempty"`
	Services            []LineItemSnapshot     `json:"services"`
	Parts               []LineItemSnapshot     `json:"parts"`
	StatusHistory       []StatusChangeSnapshot `json:"statusHistory"`
	CreatedAt           time.Time              `json:"createdAt"`
	UpdatedAt           time.Time              `json:"updatedAt"`
}

func (o *ServiceOrder) Snapshot() Snapshot {
	s := Snapshot{
		ID:                  o.id.String(),
		OrderNumber:         o.number,
		CustomerID:          o.customerID.String(),
		VehicleID:           o.vehicleID.String(),
		Status:              o.status.String(),
		Priority:            o.priority.String(),
		Description:         o.description,
		Diagnosis:           o.diagnosis,
		Observations:        o.observations,
		EstimatedCompletion: copyTime(o.estimatedCompletion),
		ActualCompletion:    copyTime(o.actualCompletion),
		TotalAmount:         o.totalAmount.String(),
		ApprovedAt:          copyTime(o.approvedAt),
		ApprovedBy:          o.approvedBy,
		CreatedBy:           o.createdBy,
		AssignedTo:          o.assignedTo,
		Services:            make([]LineItemSnapshot, 0, len(o.services)),
		Parts:               make([]LineItemSnapshot, 0, len(o.parts)),
		StatusHistory:       make([]StatusChangeSnapshot, 0, o.history.Len()),
		CreatedAt:           o.createdAt,
		UpdatedAt:           o.updatedAt,
	}

	if o.approvedAmount != nil {
		s.ApprovedAmount = o.approvedAmount.String()
	}
	for _, item := range o.services {
		s.Services = append(s.Services, item.Snapshot())
	}
	for _, item := range o.parts {
		s.Parts = append(s.Parts, item.Snapshot())
	}
	for _, change := range o.history.changes {
		s.StatusHistory = append(s.StatusHistory, change.Snapshot())
	}

	return s
}
