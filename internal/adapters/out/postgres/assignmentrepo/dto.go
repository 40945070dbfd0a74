// Package assignmentrepo persists employee assignments.
package assignmentrepo

import (
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for one employee assignment.
type AssignmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	UserID     uuid.UUID `gorm:"type:uuid"`
	Department int
}

// TableName specifies the database table name for assignments.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         a.ID().Bytes(),
		OrderID:    a.OrderID().Bytes(),
		UserID:     a.UserID().Bytes(),
		Department: int(a.Department()),
	}
}

// toDomain converts a database DTO to an assignment aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return assignment.NewAssignment(id, orderID, userID, order.Status(dto.Department))
}
