// Package userrepo holds the persistence schema for workshop employees.
//
// The engine only reads users, via the by-department query, so this package
// carries the table definition for migrations and no repository.
package userrepo

import (
	"github.com/google/uuid"
)

// UserDTO represents the database structure for one workshop employee.
type UserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Department int `gorm:"index"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}
