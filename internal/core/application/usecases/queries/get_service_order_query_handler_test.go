package queries_test

import (
	"context"
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceOrderReader struct {
	mock.Mock
}

func (m *MockServiceOrderReader) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderReader) GetByNumber(ctx context.Context, number string) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func newTestOrder(t *testing.T) *serviceorder.ServiceOrder {
	t.Helper()
	item, err := serviceorder.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("80"))
	require.NoError(t, err)

	o, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Alignment", serviceorder.Normal, "attendant-1",
		[]serviceorder.LineItem{item}, nil,
	)
	require.NoError(t, err)
	require.NoError(t, o.AssignNumber("OS000042"))
	return o
}

func TestNewGetServiceOrderQuery(t *testing.T) {
	t.Run("uuid reference", func(t *testing.T) {
		id := kernel.NewUUID()
		q, err := queries.NewGetServiceOrderQuery(id.String())
		require.NoError(t, err)
		assert.False(t, q.ByNumber())
		assert.True(t, q.ID().IsEqual(id))
	})

	t.Run("number reference", func(t *testing.T) {
		q, err := queries.NewGetServiceOrderQuery(" os000042 ")
		require.NoError(t, err)
		assert.True(t, q.ByNumber())
		assert.Equal(t, "OS000042", q.Number())
	})

	t.Run("empty reference", func(t *testing.T) {
		_, err := queries.NewGetServiceOrderQuery("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetServiceOrderQueryHandler_Handle_ByID(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	orders := new(MockServiceOrderReader)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	q, err := queries.NewGetServiceOrderQuery(o.ID().String())
	require.NoError(t, err)

	snapshot, err := queries.NewGetServiceOrderQueryHandler(orders).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "OS000042", snapshot.OrderNumber)
	assert.Equal(t, "80.00", snapshot.TotalAmount)
	require.Len(t, snapshot.StatusHistory, 1)
	orders.AssertExpectations(t)
	orders.AssertNotCalled(t, "GetByNumber", mock.Anything, mock.Anything)
}

func TestGetServiceOrderQueryHandler_Handle_ByNumber(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	orders := new(MockServiceOrderReader)
	orders.On("GetByNumber", ctx, "OS000042").Return(o, nil).Once()

	q, err := queries.NewGetServiceOrderQuery("OS000042")
	require.NoError(t, err)

	snapshot, err := queries.NewGetServiceOrderQueryHandler(orders).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, o.ID().String(), snapshot.ID)
	orders.AssertExpectations(t)
}

func TestGetServiceOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	orders := new(MockServiceOrderReader)
	orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("service order", id.String())).Once()

	q, err := queries.NewGetServiceOrderQuery(id.String())
	require.NoError(t, err)

	_, err = queries.NewGetServiceOrderQueryHandler(orders).Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetServiceOrderQueryHandler_Handle_NotConstructed(t *testing.T) {
	orders := new(MockServiceOrderReader)

	_, err := queries.NewGetServiceOrderQueryHandler(orders).Handle(t.Context(), queries.GetServiceOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetServiceOrderQueryIsNotConstructed)
	orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestGetCustomerQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	doc, err := kernel.NewDocument("52998224725", kernel.CPF)
	require.NoError(t, err)
	email, err := kernel.NewEmail("maria@example.com")
	require.NoError(t, err)
	c, err := customer.NewCustomer("Maria Silva", doc, email, "11987654321", customer.Address{})
	require.NoError(t, err)
	c.Deactivate()

	customers := new(MockCustomerReader)
	customers.On("Get", ctx, c.ID()).Return(c, nil).Once()

	q, err := queries.NewGetCustomerQuery(c.ID())
	require.NoError(t, err)

	snapshot, err := queries.NewGetCustomerQueryHandler(customers).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", snapshot.Name)
	assert.False(t, snapshot.Active)
	customers.AssertExpectations(t)
}

func TestNewGetCustomerQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetCustomerQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
