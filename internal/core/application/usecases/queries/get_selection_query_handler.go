package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetSelectionQueryHandler retrieves selection records from the database.
// Missing records read as four empty sets, not as an error, so a fresh
// artifact view always starts from a well-defined empty selection.
type GetSelectionQueryHandler struct {
	db *gorm.DB
}

// NewGetSelectionQueryHandler creates a handler for selection reads.
// Requires a GORM database connection for query execution.
func NewGetSelectionQueryHandler(db *gorm.DB) GetSelectionQueryHandler {
	return GetSelectionQueryHandler{db: db}
}

// Handle executes the query and returns all four role sets.
func (h GetSelectionQueryHandler) Handle(
	ctx context.Context,
	query GetSelectionQuery,
) (GetSelectionQueryResponse, error) {
	response := GetSelectionQueryResponse{
		DesignerSelectedRowIds:   []string{},
		ProductionSelectedRowIds: []string{},
		MachineSelectedRowIds:    []string{},
		InspectionSelectedRowIds: []string{},
	}

	if err := query.Validate(); err != nil {
		return response, err
	}

	var designer, production, machine, inspection pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			designer_row_ids,
			production_row_ids,
			machine_row_ids,
			inspection_row_ids
		FROM selections
		WHERE order_id = ? AND category = ?
	`, query.OrderID().Bytes(), int(query.Category())).Row()

	err := row.Scan(&designer, &production, &machine, &inspection)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return response, nil
	}
	if err != nil {
		return response, err
	}

	if designer != nil {
		response.DesignerSelectedRowIds = designer
	}
	if production != nil {
		response.ProductionSelectedRowIds = production
	}
	if machine != nil {
		response.MachineSelectedRowIds = machine
	}
	if inspection != nil {
		response.InspectionSelectedRowIds = inspection
	}

	return response, nil
}
