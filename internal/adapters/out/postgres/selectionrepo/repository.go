package selectionrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/selection"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSelectionRepository implements SelectionRepository using GORM.
type GormSelectionRepository struct {
	db *gorm.DB
}

// NewGormSelectionRepository creates a new GORM selection repository.
func NewGormSelectionRepository(db *gorm.DB) *GormSelectionRepository {
	return &GormSelectionRepository{db: db}
}

// Get retrieves the selection record for an order and category.
// A missing row yields a fresh empty record, not an error.
func (r *GormSelectionRepository) Get(
	ctx context.Context,
	orderID kernel.UUID,
	category selection.Category,
) (*selection.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dto SelectionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND category = ?", orderID.Bytes(), int(category)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return selection.NewRecord(orderID, category)
		}
		return nil, err
	}

	return toDomain(dto)
}

// SaveRole upserts exactly one role's row id set.
//
// The insert carries only the acting role's column; on conflict the update
// assigns only that column, so the other three role sets survive no matter
// what this process read before writing.
func (r *GormSelectionRepository) SaveRole(
	ctx context.Context,
	orderID kernel.UUID,
	category selection.Category,
	role selection.Role,
	ids []string,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := category.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	column, ok := roleColumns()[role]
	if !ok {
		return errs.NewValueIsInvalidError("role")
	}

	if ids == nil {
		ids = []string{}
	}

	dto := SelectionDTO{
		OrderID:  orderID.Bytes(),
		Category: int(category),
	}
	dto.setRoleIDs(role, ids)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{column}),
		}).
		Create(&dto).Error
}
