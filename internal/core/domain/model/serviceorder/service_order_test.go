package serviceorder_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mechanic = "user-mechanic"

func lineItem(t *testing.T, price string, quantity int) serviceorder.LineItem {
	t.Helper()
	item, err := serviceorder.NewLineItem(kernel.NewUUID(), quantity, kernel.MustMoney(price))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, services, parts []serviceorder.LineItem) *serviceorder.ServiceOrder {
	t.Helper()
	o, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Barulho na suspensão dianteira",
		serviceorder.Normal,
		"user-reception",
		services, parts,
	)
	require.NoError(t, err)
	return o
}

// moveTo walks the order along the given statuses.
func moveTo(t *testing.T, o *serviceorder.ServiceOrder, path ...serviceorder.Status) {
	t.Helper()
	for _, s := range path {
		require.NoError(t, o.UpdateStatus(s, mechanic, ""))
	}
}

func TestNewServiceOrder(t *testing.T) {
	t.Run("should start received with seeded history", func(t *testing.T) {
		o := newOrder(t, nil, nil)

		require.NoError(t, o.Validate())
		assert.Equal(t, serviceorder.Received, o.Status())
		assert.Equal(t, serviceorder.Normal, o.Priority())
		assert.Empty(t, o.Number())
		assert.True(t, o.TotalAmount().IsZero())
		assert.False(t, o.IsApproved())

		require.Equal(t, 1, o.History().Len())
		first, _ := o.History().Last()
		assert.False(t, first.HasPrevious())
		assert.Equal(t, serviceorder.Received, first.Next())
		assert.Equal(t, "user-reception", first.ChangedBy())
	})

	t.Run("should sum line items into the total", func(t *testing.T) {
		services := []serviceorder.LineItem{lineItem(t, "150", 1), lineItem(t, "80", 2)}
		parts := []serviceorder.LineItem{lineItem(t, "45", 3)}

		o := newOrder(t, services, parts)

		assert.True(t, o.TotalAmount().IsEqual(kernel.MustMoney("445")), o.TotalAmount().String())
		assert.Len(t, o.ServiceItems(), 2)
		assert.Len(t, o.PartItems(), 1)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		o, err := serviceorder.NewServiceOrder(kernel.UUID{}, kernel.UUID{}, " oi ",
			serviceorder.UnknownPriority, "", nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		for _, field := range []string{"customerId", "vehicleId", "description", "priority", "createdBy"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("should compute total and start pending", func(t *testing.T) {
		item := lineItem(t, "80", 2)

		assert.Equal(t, "160.00", item.TotalPrice().String())
		assert.Equal(t, serviceorder.ItemPending, item.Status())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := serviceorder.NewLineItem(kernel.NewUUID(), 0, kernel.MustMoney("10"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestServiceOrder_UpdateStatus(t *testing.T) {
	t.Run("should reject received to completed without mutation", func(t *testing.T) {
		o := newOrder(t, nil, nil)
		updatedAt := o.UpdatedAt()

		err := o.UpdateStatus(serviceorder.Completed, mechanic, "")

		require.ErrorIs(t, err, serviceorder.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "RECEIVED")
		assert.Contains(t, err.Error(), "COMPLETED")
		assert.Equal(t, serviceorder.Received, o.Status())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		assert.Equal(t, 1, o.History().Len())
		assert.Nil(t, o.ActualCompletion())
	})

	t.Run("should move received to diagnosis and record the change", func(t *testing.T) {
		o := newOrder(t, nil, nil)

		err := o.UpdateStatus(serviceorder.InDiagnosis, mechanic, "Iniciando diagnóstico")

		require.NoError(t, err)
		assert.Equal(t, serviceorder.InDiagnosis, o.Status())
		last, _ := o.History().Last()
		assert.Equal(t, serviceorder.Received, last.Previous())
		assert.Equal(t, serviceorder.InDiagnosis, last.Next())
		assert.Equal(t, "Iniciando diagnóstico", last.Reason())
		assert.Equal(t, mechanic, last.ChangedBy())
	})

	t.Run("should require an actor", func(t *testing.T) {
		o := newOrder(t, nil, nil)

		err := o.UpdateStatus(serviceorder.InDiagnosis, " ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, serviceorder.Received, o.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o := newOrder(t, nil, nil)

		require.ErrorIs(t, o.UpdateStatus(serviceorder.Status(42), mechanic, ""), errs.ErrValueIsInvalid)
	})

	t.Run("should stamp completion once", func(t *testing.T) {
		o := newOrder(t, nil, nil)
		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.InProgress, serviceorder.Completed)

		first := o.ActualCompletion()
		require.NotNil(t, first)
		time.Sleep(2 * time.Millisecond)

		moveTo(t, o, serviceorder.InProgress)
		require.NotNil(t, o.ActualCompletion(), "reopening keeps the completion stamp")
		moveTo(t, o, serviceorder.Completed)

		assert.True(t, first.Equal(*o.ActualCompletion()))
		assert.True(t, o.IsCompleted())
	})

	t.Run("should close open items on completion", func(t *testing.T) {
		o := newOrder(t, []serviceorder.LineItem{lineItem(t, "10", 1)}, []serviceorder.LineItem{lineItem(t, "5", 1)})

		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.InProgress, serviceorder.Completed)

		assert.Equal(t, serviceorder.ItemCompleted, o.ServiceItems()[0].Status())
		assert.Equal(t, serviceorder.ItemCompleted, o.PartItems()[0].Status())
	})

	t.Run("should reopen completed items when work resumes", func(t *testing.T) {
		o := newOrder(t, []serviceorder.LineItem{lineItem(t, "10", 1)}, []serviceorder.LineItem{lineItem(t, "5", 1)})
		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.InProgress, serviceorder.Completed)

		moveTo(t, o, serviceorder.InProgress)

		assert.Equal(t, serviceorder.ItemInProgress, o.ServiceItems()[0].Status())
		assert.Equal(t, serviceorder.ItemInProgress, o.PartItems()[0].Status())
		assert.NotNil(t, o.ActualCompletion())

		moveTo(t, o, serviceorder.Completed)
		assert.Equal(t, serviceorder.ItemCompleted, o.ServiceItems()[0].Status())
	})

	t.Run("should cancel open items on cancellation", func(t *testing.T) {
		o := newOrder(t, nil, []serviceorder.LineItem{lineItem(t, "5", 1)})

		moveTo(t, o, serviceorder.Cancelled)

		assert.True(t, o.IsCancelled())
		assert.Equal(t, serviceorder.ItemCancelled, o.PartItems()[0].Status())
		require.ErrorIs(t, o.UpdateStatus(serviceorder.InDiagnosis, mechanic, ""), serviceorder.ErrInvalidTransition)
	})

	t.Run("history grows by one per transition in order", func(t *testing.T) {
		o := newOrder(t, nil, nil)
		before := o.History()

		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.AwaitingApproval, serviceorder.InDiagnosis)

		assert.Equal(t, 1, before.Len(), "earlier history values are not affected")
		changes := o.History().Changes()
		require.Len(t, changes, 4)
		for i := 1; i < len(changes); i++ {
			assert.Equal(t, changes[i-1].Next(), changes[i].Previous())
			assert.False(t, changes[i].ChangedAt().Before(changes[i-1].ChangedAt()))
		}
	})
}

func TestServiceOrder_Approve(t *testing.T) {
	t.Run("should reject approval outside awaiting approval", func(t *testing.T) {
		o := newOrder(t, nil, nil)

		err := o.Approve("customer-1", nil)

		require.ErrorIs(t, err, serviceorder.ErrIllegalApproval)
		assert.Equal(t, serviceorder.Received, o.Status())
		assert.False(t, o.IsApproved())
		assert.Nil(t, o.ApprovedAmount())
	})

	t.Run("should approve the current total by default", func(t *testing.T) {
		o := newOrder(t, []serviceorder.LineItem{lineItem(t, "500", 1)}, nil)
		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.AwaitingApproval)

		err := o.Approve("customer-1", nil)

		require.NoError(t, err)
		assert.Equal(t, serviceorder.Approved, o.Status())
		require.NotNil(t, o.ApprovedAmount())
		assert.True(t, o.ApprovedAmount().IsEqual(kernel.MustMoney("500")))
		assert.Equal(t, "customer-1", o.ApprovedBy())
		assert.NotNil(t, o.ApprovedAt())
		assert.True(t, o.IsApproved())

		last, _ := o.History().Last()
		assert.Equal(t, serviceorder.AwaitingApproval, last.Previous())
		assert.Equal(t, serviceorder.Approved, last.Next())
	})

	t.Run("should approve an explicit amount", func(t *testing.T) {
		o := newOrder(t, []serviceorder.LineItem{lineItem(t, "500", 1)}, nil)
		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.AwaitingApproval)
		amount := kernel.MustMoney("450")

		require.NoError(t, o.Approve("customer-1", &amount))

		assert.True(t, o.ApprovedAmount().IsEqual(amount))
	})

	t.Run("approval survives a status reset", func(t *testing.T) {
		o := newOrder(t, nil, nil)
		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.AwaitingApproval)
		require.NoError(t, o.Approve("customer-1", nil))

		moveTo(t, o, serviceorder.InProgress, serviceorder.Completed, serviceorder.InProgress)

		assert.True(t, o.IsApproved())
	})

	t.Run("should require an approver", func(t *testing.T) {
		o := newOrder(t, nil, nil)
		moveTo(t, o, serviceorder.InDiagnosis, serviceorder.AwaitingApproval)

		require.ErrorIs(t, o.Approve("", nil), errs.ErrValueIsRequired)
		assert.Equal(t, serviceorder.AwaitingApproval, o.Status())
	})
}

func TestServiceOrder_Details(t *testing.T) {
	o := newOrder(t, nil, nil)

	require.NoError(t, o.UpdateDiagnosis("Bucha da bandeja gasta"))
	require.NoError(t, o.AddObservation("Cliente aguarda no local"))
	require.NoError(t, o.AddObservation("Ligar antes de entregar"))
	require.NoError(t, o.ChangePriority(serviceorder.High))
	require.NoError(t, o.AssignTo(mechanic))
	require.NoError(t, o.SetEstimatedCompletion(time.Now().Add(48*time.Hour)))

	assert.Equal(t, "Bucha da bandeja gasta", o.Diagnosis())
	assert.Equal(t, "Cliente aguarda no local\nLigar antes de entregar", o.Observations())
	assert.Equal(t, serviceorder.High, o.Priority())
	assert.Equal(t, mechanic, o.AssignedTo())
	assert.NotNil(t, o.EstimatedCompletion())

	require.ErrorIs(t, o.AddObservation("  "), errs.ErrValueIsRequired)
	require.ErrorIs(t, o.ChangePriority(serviceorder.UnknownPriority), errs.ErrValueIsInvalid)
	assert.Equal(t, serviceorder.High, o.Priority())
}

func TestServiceOrder_AssignNumber(t *testing.T) {
	o := newOrder(t, nil, nil)

	require.NoError(t, o.AssignNumber("OS000001"))
	require.ErrorIs(t, o.AssignNumber("OS000002"), serviceorder.ErrOrderNumberAlreadyAssigned)
	assert.Equal(t, "OS000001", o.Number())
}

func TestServiceOrder_Snapshot(t *testing.T) {
	o := newOrder(t, []serviceorder.LineItem{lineItem(t, "150", 1)}, []serviceorder.LineItem{lineItem(t, "45", 3)})
	require.NoError(t, o.AssignNumber("OS000007"))
	moveTo(t, o, serviceorder.InDiagnosis)

	s := o.Snapshot()

	assert.Equal(t, "OS000007", s.OrderNumber)
	assert.Equal(t, "IN_DIAGNOSIS", s.Status)
	assert.Equal(t, "NORMAL", s.Priority)
	assert.Equal(t, "285.00", s.TotalAmount)
	require.Len(t, s.Parts, 1)
	assert.Equal(t, "135.00", s.Parts[0].TotalPrice)
	require.Len(t, s.StatusHistory, 2)
	assert.Empty(t, s.StatusHistory[0].PreviousStatus)
	assert.Equal(t, "RECEIVED", s.StatusHistory[1].PreviousStatus)
	assert.Empty(t, s.ApprovedAmount)
}

func TestRestoreServiceOrder(t *testing.T) {
	original := newOrder(t, []serviceorder.LineItem{lineItem(t, "100", 2)}, nil)
	moveTo(t, original, serviceorder.InDiagnosis)

	restored, err := serviceorder.RestoreServiceOrder(serviceorder.State{
		ID:          original.ID(),
		Number:      "OS000003",
		CustomerID:  original.CustomerID(),
		VehicleID:   original.VehicleID(),
		Status:      original.Status(),
		Priority:    original.Priority(),
		Description: original.Description(),
		CreatedBy:   original.CreatedBy(),
		Services:    original.ServiceItems(),
		History:     original.History(),
		Version:     4,
		CreatedAt:   original.CreatedAt(),
		UpdatedAt:   original.UpdatedAt(),
	})

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
	assert.Equal(t, 4, restored.Version())
	assert.Equal(t, "200.00", restored.TotalAmount().String())
	require.NoError(t, restored.UpdateStatus(serviceorder.AwaitingApproval, mechanic, ""))
	assert.Equal(t, 3, restored.History().Len())

	_, err = serviceorder.RestoreServiceOrder(serviceorder.State{})
	require.Error(t, err)
}
