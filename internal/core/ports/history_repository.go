package ports

import (
	"context"

	"workshop/internal/core/domain/model/history"
	"workshop/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// status history log. Entry ids are assigned by the store and are monotonic
// per table, which is what makes id-ordering a recency order.
type HistoryRepository interface {
	// Append persists a new history entry and returns it with its
	// store-assigned id.
	Append(ctx context.Context, entry history.Entry) (history.Entry, error)

	// ListByOrder retrieves the order's history entries ordered by id.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]history.Entry, error)
}
