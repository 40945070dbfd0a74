package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/guard"
)

var ErrGetRelevantAttachmentQueryIsNotConstructed = errors.New(
	"GetRelevantAttachmentQuery must be created via NewGetRelevantAttachmentQuery constructor",
)

// GetRelevantAttachmentQuery resolves the most recent relevant PDF for an
// order, optionally scoped to one department's entries. Pass order.Unknown
// as the department for an unscoped lookup.
type GetRelevantAttachmentQuery struct {
	orderID    kernel.UUID
	department order.Status

	guard guard.ConstructorGuard
}

// NewGetRelevantAttachmentQuery creates a relevant-PDF query. The department
// may be order.Unknown to skip department scoping; any other value must be a
// valid status.
func NewGetRelevantAttachmentQuery(orderID kernel.UUID, department order.Status) (GetRelevantAttachmentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRelevantAttachmentQuery{}, err
	}
	if department != order.Unknown {
		if err := department.Validate(); err != nil {
			return GetRelevantAttachmentQuery{}, err
		}
	}

	return GetRelevantAttachmentQuery{
		orderID:    orderID,
		department: department,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRelevantAttachmentQueryIsNotConstructed if validation fails.
func (q GetRelevantAttachmentQuery) Validate() error {
	return q.guard.Validate(ErrGetRelevantAttachmentQueryIsNotConstructed)
}

// OrderID returns the order whose attachment is being resolved.
func (q GetRelevantAttachmentQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Department returns the scoping department, order.Unknown when unscoped.
func (q GetRelevantAttachmentQuery) Department() order.Status {
	return q.department
}

// GetRelevantAttachmentQueryResponse carries the resolved attachment URL.
// URL is empty when the order's history holds no PDF at all.
type GetRelevantAttachmentQueryResponse struct {
	URL string `json:"url"`
}
