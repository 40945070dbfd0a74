package commands_test

import (
	"context"
	"errors"
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssignmentRepository) ListByOrder(
	_ context.Context,
	_ kernel.UUID,
) ([]*assignment.Assignment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

func TestNewAssignEmployeeCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()
		userID := kernel.NewUUID()

		cmd, err := commands.NewAssignEmployeeCommand(orderID, userID, order.Machining)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, userID, cmd.UserID())
		assert.Equal(t, order.Machining, cmd.Department())
	})

	t.Run("should reject non-department stages", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Inquiry, order.Completed} {
			_, err := commands.NewAssignEmployeeCommand(kernel.NewUUID(), kernel.NewUUID(), status)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "does not accept assignees")
		}
	})

	t.Run("should reject command not created via constructor", func(t *testing.T) {
		cmd := commands.AssignEmployeeCommand{}

		assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignEmployeeCommandIsNotConstructed)
	})
}

func TestAssignEmployeeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewAssignEmployeeCommand(orderID, userID, order.Design)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(a *assignment.Assignment) bool {
			return a.OrderID() == orderID && a.UserID() == userID && a.Department() == order.Design
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignEmployeeCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignEmployeeCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockAssignmentUoWFactory)
	h := commands.NewAssignEmployeeCommandHandler(factory)

	err := h.Handle(ctx, commands.AssignEmployeeCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignEmployeeCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignEmployeeCommand(kernel.NewUUID(), kernel.NewUUID(), order.Inspection)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignEmployeeCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
