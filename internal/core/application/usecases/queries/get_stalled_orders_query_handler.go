package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalledOrdersQueryHandler finds orders that have not moved between
// departments for too long. An order counts as stalled when its newest status
// history entry is older than the query cutoff; orders without history use
// their creation and are skipped here, the monitor only reacts to recorded
// transitions.
type GetStalledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledOrdersQueryHandler creates a handler for stalled order queries.
func NewGetStalledOrdersQueryHandler(db *gorm.DB) GetStalledOrdersQueryHandler {
	return GetStalledOrdersQueryHandler{db: db}
}

// Handle returns every uncompleted order whose last status change happened
// before the cutoff, oldest activity first.
func (h GetStalledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalledOrdersQuery,
) ([]GetStalledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stalled := make([]GetStalledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer,
			o.status,
			MAX(h.created_at) AS last_activity
		FROM orders o
		JOIN status_history h ON h.order_id = o.id
		WHERE o.status != ?
		GROUP BY o.id, o.customer, o.status
		HAVING MAX(h.created_at) < ?
		ORDER BY last_activity
	`, int(order.Completed), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			customer     string
			status       int
			lastActivity time.Time
		)

		if err = rows.Scan(&id, &customer, &status, &lastActivity); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		stalled = append(stalled, GetStalledOrdersQueryResponse{
			ID:           orderID,
			Customer:     customer,
			Status:       order.Status(status),
			LastActivity: lastActivity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stalled, nil
}
