package commands

import (
	"context"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
)

// AssignEmployeeCommandHandler persists standalone employee assignments.
type AssignEmployeeCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignEmployeeCommandHandler creates a handler for employee assignments.
func NewAssignEmployeeCommandHandler(uowFactory AssignmentUoWFactory) AssignEmployeeCommandHandler {
	return AssignEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assign employee command.
func (h AssignEmployeeCommandHandler) Handle(ctx context.Context, command AssignEmployeeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := assignment.NewAssignment(
		kernel.NewUUID(),
		command.OrderID(),
		command.UserID(),
		command.Department(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssignmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
