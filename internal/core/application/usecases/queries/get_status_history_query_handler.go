package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/history"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler retrieves an order's status history from the
// database, ordered by the monotonic entry id.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for status history reads.
// Requires a GORM database connection for query execution.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back ordered by id ascending.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]history.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]history.Entry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			previous_status,
			new_status,
			comment,
			attachment_url,
			created_at
		FROM status_history
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id             int64
			orderID        uuid.UUID
			previousStatus int
			newStatus      int
			comment        string
			attachmentURL  string
			createdAt      time.Time
		)

		if err = rows.Scan(&id, &orderID, &previousStatus, &newStatus, &comment, &attachmentURL, &createdAt); err != nil {
			return nil, err
		}

		entryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, history.Entry{
			ID:             id,
			OrderID:        entryOrderID,
			PreviousStatus: order.Status(previousStatus),
			NewStatus:      order.Status(newStatus),
			Comment:        comment,
			AttachmentURL:  attachmentURL,
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
