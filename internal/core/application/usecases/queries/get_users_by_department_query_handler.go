package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersByDepartmentQueryHandler retrieves a department's users from the
// database. Results are sorted by name for stable pick lists.
type GetUsersByDepartmentQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersByDepartmentQueryHandler creates a handler for department user queries.
// Requires a GORM database connection for query execution.
func NewGetUsersByDepartmentQueryHandler(db *gorm.DB) GetUsersByDepartmentQueryHandler {
	return GetUsersByDepartmentQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUsersByDepartmentQueryHandler) Handle(
	ctx context.Context,
	query GetUsersByDepartmentQuery,
) ([]GetUsersByDepartmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]GetUsersByDepartmentQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			department
		FROM users
		WHERE department = ?
		ORDER BY name
	`, int(query.Department())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			department int
		)

		if err = rows.Scan(&id, &name, &department); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		users = append(users, GetUsersByDepartmentQueryResponse{
			ID:         userID,
			Name:       name,
			Department: order.Status(department),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
