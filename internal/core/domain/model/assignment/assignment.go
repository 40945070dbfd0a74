// Package assignment models the link between an order, a department and the
// employee chosen to work it at that stage.
package assignment

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through the NewAssignment factory method.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment records that a user was assigned to an order for one department
// stage. Assignments are write-once; reassigning a department appends a new
// record rather than mutating an old one.
type Assignment struct {
	// id is the unique identifier for the assignment
	id kernel.UUID

	// orderID identifies the assigned order
	orderID kernel.UUID

	// userID identifies the assigned employee
	userID kernel.UUID

	// department is the pipeline stage the assignment applies to
	department order.Status

	// isConstructed ensures the assignment was created via NewAssignment
	isConstructed bool
}

// NewAssignment creates an Assignment linking user and order for one
// department stage. The department must be one of the four department
// stages; Inquiry and Completed accept no assignees.
func NewAssignment(id, orderID, userID kernel.UUID, department order.Status) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		userID.Validate(),
	); err != nil {
		return nil, err
	}

	if !department.IsDepartment() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"department",
			fmt.Errorf("%s does not accept assignees", department.String()),
		)
	}

	return &Assignment{
		id:            id,
		orderID:       orderID,
		userID:        userID,
		department:    department,
		isConstructed: true,
	}, nil
}

// Validate ensures the Assignment was properly constructed through NewAssignment.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the assigned order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// UserID returns the assigned employee's identifier.
func (a *Assignment) UserID() kernel.UUID {
	return a.userID
}

// Department returns the pipeline stage the assignment applies to.
func (a *Assignment) Department() order.Status {
	return a.department
}
