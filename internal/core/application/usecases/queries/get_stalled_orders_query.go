package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetStalledOrdersQueryIsNotConstructed = errors.New(
	"GetStalledOrdersQuery must be created via NewGetStalledOrdersQuery constructor",
)

// GetStalledOrdersQuery finds uncompleted orders whose latest status change is
// older than the cutoff.
type GetStalledOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalledOrdersQuery creates a query for orders with no status activity
// since cutoff.
func NewGetStalledOrdersQuery(cutoff time.Time) (GetStalledOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStalledOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStalledOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalledOrdersQueryIsNotConstructed if validation fails.
func (q GetStalledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledOrdersQueryIsNotConstructed)
}

// Cutoff returns the inactivity threshold.
func (q GetStalledOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStalledOrdersQueryResponse is one stalled order with its last recorded
// status change time.
type GetStalledOrdersQueryResponse struct {
	ID           kernel.UUID
	Customer     string
	Status       order.Status
	LastActivity time.Time
}
