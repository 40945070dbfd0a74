package queries

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetUsersByDepartmentQueryIsNotConstructed = errors.New(
	"GetUsersByDepartmentQuery must be created via NewGetUsersByDepartmentQuery constructor",
)

// GetUsersByDepartmentQuery retrieves the candidate assignees of one
// department, the pick list offered when a transition targets that stage.
type GetUsersByDepartmentQuery struct {
	department order.Status

	guard guard.ConstructorGuard
}

// NewGetUsersByDepartmentQuery creates a query for a department's users.
// The department must be one of the four department stages.
func NewGetUsersByDepartmentQuery(department order.Status) (GetUsersByDepartmentQuery, error) {
	if !department.IsDepartment() {
		return GetUsersByDepartmentQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"department",
			fmt.Errorf("%s has no assignable users", department.String()),
		)
	}

	return GetUsersByDepartmentQuery{
		department: department,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUsersByDepartmentQueryIsNotConstructed if validation fails.
func (q GetUsersByDepartmentQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersByDepartmentQueryIsNotConstructed)
}

// Department returns the department whose users are requested.
func (q GetUsersByDepartmentQuery) Department() order.Status {
	return q.department
}

// GetUsersByDepartmentQueryResponse represents one candidate assignee.
type GetUsersByDepartmentQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Department order.Status
}
