package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewUpdateCustomerCommand_RequiresAtLeastOneField(t *testing.T) {
	_, err := commands.NewUpdateCustomerCommand(kernel.NewUUID(), nil, nil, nil, nil)
	require.ErrorIs(t, err, commands.ErrNothingToUpdate)
}

func TestNewUpdateCustomerCommand_InvalidEmail(t *testing.T) {
	_, err := commands.NewUpdateCustomerCommand(kernel.NewUUID(), nil, strPtr("broken"), nil, nil)
	require.ErrorIs(t, err, kernel.ErrInvalidEmail)
}

func TestNewUpdateCustomerCommand_InvalidID(t *testing.T) {
	_, err := commands.NewUpdateCustomerCommand(kernel.UUID{}, strPtr("Maria"), nil, nil, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	c := newTestCustomer()
	cmd, err := commands.NewUpdateCustomerCommand(
		c.ID(), strPtr("Maria Souza"), nil, strPtr("11900001111"),
		&customer.Address{City: "Santos"},
	)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		repo.On("Update", ctx, c).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", snapshot.Name)
	assert.Equal(t, "11900001111", snapshot.Phone)
	assert.Equal(t, "Santos", snapshot.City)
	assert.Equal(t, "maria@example.com", snapshot.Email)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_EmailTakenByAnotherCustomer(t *testing.T) {
	ctx := t.Context()
	c := newTestCustomer()
	other := newTestCustomer()
	cmd, err := commands.NewUpdateCustomerCommand(c.ID(), nil, strPtr("joao@example.com"), nil, nil)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		repo.On("FindByEmail", ctx, mustEmail("joao@example.com")).Return(other, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Equal(t, "maria@example.com", c.Email().Value())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomerCommandHandler_Handle_InvalidChangeLeavesCustomerUntouched(t *testing.T) {
	ctx := t.Context()
	c := newTestCustomer()
	cmd, err := commands.NewUpdateCustomerCommand(c.ID(), strPtr("Jo"), nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "Maria Silva", c.Name())
}

func TestUpdateCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(id, strPtr("Maria Souza"), nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("customer", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeactivateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	c := newTestCustomer()
	cmd, err := commands.NewDeactivateCustomerCommand(c.ID())
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		repo.On("Update", ctx, c).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateCustomerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.False(t, c.IsActive())
	uow.AssertExpectations(t)
}

func TestDeactivateCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCustomerUoWFactory)
	h := commands.NewDeactivateCustomerCommandHandler(factory)
	err := h.Handle(t.Context(), commands.DeactivateCustomerCommand{})
	require.ErrorIs(t, err, commands.ErrDeactivateCustomerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
