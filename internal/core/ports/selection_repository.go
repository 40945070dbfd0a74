package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/selection"
)

// SelectionRepository defines the persistence contract for selection records.
//
// One stored record holds the four role-scoped row id sets of an
// (order, category) pair. Reads return all four sets; writes carry exactly
// one role's set and the store merges it by role key, never replacing the
// whole record, so concurrent saves by different roles cannot clobber each
// other. Persistence is last-write-wins per role key with no version check.
type SelectionRepository interface {
	// Get retrieves the selection record for an order and category.
	// When nothing was persisted yet an empty record is returned, not an error.
	Get(ctx context.Context, orderID kernel.UUID, category selection.Category) (*selection.Record, error)

	// SaveRole upserts exactly one role's row id set into the stored record.
	// The other three role sets are left untouched.
	SaveRole(
		ctx context.Context,
		orderID kernel.UUID,
		category selection.Category,
		role selection.Role,
		ids []string,
	) error
}
