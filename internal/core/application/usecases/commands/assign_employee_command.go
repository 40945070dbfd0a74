package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrAssignEmployeeCommandIsNotConstructed = errors.New(
	"AssignEmployeeCommand must be created via NewAssignEmployeeCommand constructor",
)

// AssignEmployeeCommand links an employee to an order for one department
// stage, outside of a workflow transition.
type AssignEmployeeCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	userID     kernel.UUID
	department order.Status

	guard guard.ConstructorGuard
}

// NewAssignEmployeeCommand creates a command assigning an employee to an
// order's department stage. The department must be one of the four
// department stages.
func NewAssignEmployeeCommand(orderID, userID kernel.UUID, department order.Status) (AssignEmployeeCommand, error) {
	cmd := AssignEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setDepartment(department),
	); err != nil {
		return AssignEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignEmployeeCommandIsNotConstructed if validation fails.
func (c AssignEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrAssignEmployeeCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignEmployeeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the assigned employee.
func (c AssignEmployeeCommand) UserID() kernel.UUID {
	return c.userID
}

// Department returns the pipeline stage the assignment applies to.
func (c AssignEmployeeCommand) Department() order.Status {
	return c.department
}

func (c *AssignEmployeeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignEmployeeCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AssignEmployeeCommand) setDepartment(department order.Status) error {
	if !department.IsDepartment() {
		return errs.NewValueIsInvalidErrorWithCause(
			"department",
			fmt.Errorf("%s does not accept assignees", department.String()),
		)
	}
	c.department = department
	return nil
}
