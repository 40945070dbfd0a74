// Package selectionrepo persists selection records.
//
// One row holds the four role-scoped row id sets of an (order, category)
// pair. Each role owns a dedicated text[] column, which is what lets a save
// touch exactly one role's set and leave the other three untouched at the
// SQL level instead of read-modify-write in application code.
package selectionrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/selection"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SelectionDTO represents the database structure for one selection record.
// The composite primary key is (order_id, category).
type SelectionDTO struct {
	OrderID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Category         int            `gorm:"primaryKey"`
	DesignerRowIDs   pq.StringArray `gorm:"column:designer_row_ids;type:text[]"`
	ProductionRowIDs pq.StringArray `gorm:"column:production_row_ids;type:text[]"`
	MachineRowIDs    pq.StringArray `gorm:"column:machine_row_ids;type:text[]"`
	InspectionRowIDs pq.StringArray `gorm:"column:inspection_row_ids;type:text[]"`
}

// TableName specifies the database table name for selection records.
func (SelectionDTO) TableName() string {
	return "selections"
}

// roleColumns maps each role to the column holding its row id set.
func roleColumns() map[selection.Role]string {
	return map[selection.Role]string{
		selection.RoleDesign:     "designer_row_ids",
		selection.RoleProduction: "production_row_ids",
		selection.RoleMachining:  "machine_row_ids",
		selection.RoleInspection: "inspection_row_ids",
	}
}

// setRoleIDs writes ids into the DTO column owned by role.
func (dto *SelectionDTO) setRoleIDs(role selection.Role, ids []string) {
	switch role {
	case selection.RoleDesign:
		dto.DesignerRowIDs = ids
	case selection.RoleProduction:
		dto.ProductionRowIDs = ids
	case selection.RoleMachining:
		dto.MachineRowIDs = ids
	case selection.RoleInspection:
		dto.InspectionRowIDs = ids
	}
}

// toDomain converts a database DTO to a selection record.
func toDomain(dto SelectionDTO) (*selection.Record, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return selection.RestoreRecord(orderID, selection.Category(dto.Category), map[selection.Role][]string{
		selection.RoleDesign:     dto.DesignerRowIDs,
		selection.RoleProduction: dto.ProductionRowIDs,
		selection.RoleMachining:  dto.MachineRowIDs,
		selection.RoleInspection: dto.InspectionRowIDs,
	})
}
