package ports

import (
	"context"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for employee
// assignments.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// ListByOrder retrieves all assignments recorded for an order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error)
}
