package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/selection"
	"workshop/internal/pkg/guard"
)

var ErrGetSelectionQueryIsNotConstructed = errors.New(
	"GetSelectionQuery must be created via NewGetSelectionQuery constructor",
)

// GetSelectionQuery retrieves the four role-scoped row id sets of one
// (order, category) pair. Every role reads all four sets; role isolation
// applies to writes only.
type GetSelectionQuery struct {
	orderID  kernel.UUID
	category selection.Category

	guard guard.ConstructorGuard
}

// NewGetSelectionQuery creates a query for an order's selection record.
func NewGetSelectionQuery(orderID kernel.UUID, category selection.Category) (GetSelectionQuery, error) {
	if err := errors.Join(orderID.Validate(), category.Validate()); err != nil {
		return GetSelectionQuery{}, err
	}

	return GetSelectionQuery{
		orderID:  orderID,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSelectionQueryIsNotConstructed if validation fails.
func (q GetSelectionQuery) Validate() error {
	return q.guard.Validate(ErrGetSelectionQueryIsNotConstructed)
}

// OrderID returns the order the selection belongs to.
func (q GetSelectionQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Category returns the sub-selection category.
func (q GetSelectionQuery) Category() selection.Category {
	return q.category
}

// GetSelectionQueryResponse carries all four role sets under their wire keys.
// Roles with nothing persisted come back as empty slices, never nil, so the
// payload shape is stable.
type GetSelectionQueryResponse struct {
	DesignerSelectedRowIds   []string `json:"designerSelectedRowIds"`
	ProductionSelectedRowIds []string `json:"productionSelectedRowIds"`
	MachineSelectedRowIds    []string `json:"machineSelectedRowIds"`
	InspectionSelectedRowIds []string `json:"inspectionSelectedRowIds"`
}
