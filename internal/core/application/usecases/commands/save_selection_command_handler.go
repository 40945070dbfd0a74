package commands

import (
	"context"
)

// SaveSelectionCommandHandler persists one role's row selection.
// The repository merges the set by role key: saving role R never alters
// the stored sets of roles other than R. No retry on failure.
type SaveSelectionCommandHandler struct {
	uowFactory SelectionUoWFactory
}

// NewSaveSelectionCommandHandler creates a handler for selection saves.
func NewSaveSelectionCommandHandler(uowFactory SelectionUoWFactory) SaveSelectionCommandHandler {
	return SaveSelectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save selection command.
func (h SaveSelectionCommandHandler) Handle(ctx context.Context, command SaveSelectionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := uow.SelectionRepository().SaveRole(
		ctx,
		command.OrderID(),
		command.Category(),
		command.ActingRole(),
		command.IDs(),
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
