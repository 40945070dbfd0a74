package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/selection"
	"workshop/internal/pkg/guard"
)

var ErrSaveSelectionCommandIsNotConstructed = errors.New(
	"SaveSelectionCommand must be created via NewSaveSelectionCommand constructor",
)

// SaveSelectionCommand persists the acting role's row selection for one
// (order, category) pair. Only the acting role's set travels with the
// command; the store merges it by role key so the other three role sets
// are never overwritten.
//
// Example:
//
//	cmd, err := NewSaveSelectionCommand(orderID, selection.CategoryGeneral,
//	    selection.RoleDesign, []string{"3", "4"})
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to save selection: %w", err)
//	}
type SaveSelectionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	category selection.Category
	acting   selection.Role
	ids      []string

	guard guard.ConstructorGuard
}

// NewSaveSelectionCommand creates a command carrying the acting role's
// current row id set. An empty set is valid: saving an empty selection
// clears the role's stored set.
func NewSaveSelectionCommand(
	orderID kernel.UUID,
	category selection.Category,
	acting selection.Role,
	ids []string,
) (SaveSelectionCommand, error) {
	cmd := SaveSelectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCategory(category),
		cmd.setActing(acting),
	); err != nil {
		return SaveSelectionCommand{}, err
	}

	cmd.ids = append([]string(nil), ids...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveSelectionCommandIsNotConstructed if validation fails.
func (c SaveSelectionCommand) Validate() error {
	return c.guard.Validate(ErrSaveSelectionCommandIsNotConstructed)
}

// OrderID returns the order the selection belongs to.
func (c SaveSelectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Category returns the sub-selection category.
func (c SaveSelectionCommand) Category() selection.Category {
	return c.category
}

// ActingRole returns the role whose set is being saved.
func (c SaveSelectionCommand) ActingRole() selection.Role {
	return c.acting
}

// IDs returns a copy of the row ids being saved.
func (c SaveSelectionCommand) IDs() []string {
	return append([]string(nil), c.ids...)
}

func (c *SaveSelectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SaveSelectionCommand) setCategory(category selection.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *SaveSelectionCommand) setActing(acting selection.Role) error {
	if err := acting.Validate(); err != nil {
		return err
	}
	c.acting = acting
	return nil
}
