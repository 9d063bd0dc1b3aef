package commands_test

import (
	"context"
	"errors"
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, partIDs ...kernel.UUID) *serviceorder.ServiceOrder {
	t.Helper()
	service, err := serviceorder.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("100"))
	require.NoError(t, err)

	var parts []serviceorder.LineItem
	for _, id := range partIDs {
		item, itemErr := serviceorder.NewLineItem(id, 2, kernel.MustMoney("10"))
		require.NoError(t, itemErr)
		parts = append(parts, item)
	}

	o, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Engine check light", serviceorder.Normal, "attendant-1",
		[]serviceorder.LineItem{service}, parts,
	)
	require.NoError(t, err)
	require.NoError(t, o.AssignNumber("OS000001"))
	return o
}

func moveTo(t *testing.T, o *serviceorder.ServiceOrder, statuses ...serviceorder.Status) {
	t.Helper()
	for _, s := range statuses {
		require.NoError(t, o.UpdateStatus(s, "mechanic-1", ""))
	}
}

func newServiceOrderUoW(ctx context.Context, orders *MockServiceOrderRepository) (*MockUoW, *MockServiceOrderUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceOrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestNewUpdateServiceOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateServiceOrderStatusCommand(kernel.NewUUID(), "PAUSED", "mechanic-1", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateServiceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	cmd, err := commands.NewUpdateServiceOrderStatusCommand(o.ID(), "in_diagnosis", "mechanic-1", "Started")
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateServiceOrderStatusCommandHandler(factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "IN_DIAGNOSIS", snapshot.Status)
	require.Len(t, snapshot.StatusHistory, 2)
	assert.Equal(t, "Started", snapshot.StatusHistory[1].Reason)
	uow.AssertNotCalled(t, "PartRepository")
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestUpdateServiceOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	cmd, err := commands.NewUpdateServiceOrderStatusCommand(o.ID(), "DELIVERED", "mechanic-1", "")
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)

	h := commands.NewUpdateServiceOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, serviceorder.ErrInvalidTransition)
	assert.Equal(t, serviceorder.Received, o.Status())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateServiceOrderStatusCommandHandler_Handle_CancelReleasesStock(t *testing.T) {
	ctx := t.Context()
	partA, partB := kernel.NewUUID(), kernel.NewUUID()
	o := newTestOrder(t, partA, partB)
	cmd, err := commands.NewUpdateServiceOrderStatusCommand(o.ID(), "CANCELLED", "manager-1", "Customer gave up")
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)

	parts := new(MockPartRepository)
	parts.On("ReleaseStock", ctx, partA, 2).Return(nil).Once()
	parts.On("ReleaseStock", ctx, partB, 2).Return(nil).Once()
	uow.On("PartRepository").Return(parts).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateServiceOrderStatusCommandHandler(factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", snapshot.Status)
	for _, item := range snapshot.Parts {
		assert.Equal(t, "CANCELLED", item.Status)
	}
	parts.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateServiceOrderStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	cmd, err := commands.NewUpdateServiceOrderStatusCommand(o.ID(), "IN_DIAGNOSIS", "mechanic-1", "")
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("service order")).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)

	h := commands.NewUpdateServiceOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveServiceOrderCommandHandler_Handle_DefaultsToTotal(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	moveTo(t, o, serviceorder.InDiagnosis, serviceorder.AwaitingApproval)
	cmd, err := commands.NewApproveServiceOrderCommand(o.ID(), "customer-1", nil)
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewApproveServiceOrderCommandHandler(factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", snapshot.Status)
	assert.Equal(t, "100.00", snapshot.ApprovedAmount)
	assert.Equal(t, "customer-1", snapshot.ApprovedBy)
	assert.NotNil(t, snapshot.ApprovedAt)
	uow.AssertExpectations(t)
}

func TestApproveServiceOrderCommandHandler_Handle_ExplicitAmount(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	moveTo(t, o, serviceorder.InDiagnosis, serviceorder.AwaitingApproval)
	amount := decimal.RequireFromString("90.5")
	cmd, err := commands.NewApproveServiceOrderCommand(o.ID(), "customer-1", &amount)
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewApproveServiceOrderCommandHandler(factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "90.50", snapshot.ApprovedAmount)
}

func TestApproveServiceOrderCommandHandler_Handle_NotAwaitingApproval(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	cmd, err := commands.NewApproveServiceOrderCommand(o.ID(), "customer-1", nil)
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)

	h := commands.NewApproveServiceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, serviceorder.ErrIllegalApproval)
	assert.Nil(t, o.ApprovedAmount())
	assert.Empty(t, o.ApprovedBy())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewApproveServiceOrderCommand_NegativeAmount(t *testing.T) {
	amount := decimal.NewFromInt(-5)
	_, err := commands.NewApproveServiceOrderCommand(kernel.NewUUID(), "customer-1", &amount)
	require.ErrorIs(t, err, kernel.ErrNegativeAmount)
}

func TestNewUpdateServiceOrderDetailsCommand_Empty(t *testing.T) {
	_, err := commands.NewUpdateServiceOrderDetailsCommand(kernel.NewUUID(), commands.ServiceOrderDetails{})
	require.ErrorIs(t, err, commands.ErrNothingToUpdate)
}

func TestUpdateServiceOrderDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	require.NoError(t, o.AddObservation("Customer waits in the lobby"))
	cmd, err := commands.NewUpdateServiceOrderDetailsCommand(o.ID(), commands.ServiceOrderDetails{
		Diagnosis:   strPtr("Faulty oxygen sensor"),
		Observation: strPtr("Sensor ordered"),
		Priority:    strPtr("HIGH"),
		AssignedTo:  strPtr("mechanic-2"),
	})
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	uow, factory := newServiceOrderUoW(ctx, orders)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateServiceOrderDetailsCommandHandler(factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Faulty oxygen sensor", snapshot.Diagnosis)
	assert.Equal(t, "Customer waits in the lobby\nSensor ordered", snapshot.Observations)
	assert.Equal(t, "HIGH", snapshot.Priority)
	assert.Equal(t, "mechanic-2", snapshot.AssignedTo)
	assert.Equal(t, "RECEIVED", snapshot.Status)
	uow.AssertExpectations(t)
}

func TestUpdateServiceOrderDetailsCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateServiceOrderDetailsCommand(id, commands.ServiceOrderDetails{
		AssignedTo: strPtr("mechanic-2"),
	})
	require.NoError(t, err)

	orders := new(MockServiceOrderRepository)
	orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("service order", id)).Once()
	_, factory := newServiceOrderUoW(ctx, orders)

	h := commands.NewUpdateServiceOrderDetailsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateServiceOrderDetailsCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateServiceOrderDetailsCommand(kernel.NewUUID(), commands.ServiceOrderDetails{
		AssignedTo: strPtr("mechanic-2"),
	})
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockServiceOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewUpdateServiceOrderDetailsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "ServiceOrderRepository")
}
