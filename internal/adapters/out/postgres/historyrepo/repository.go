package historyrepo

import (
	"context"

	"workshop/internal/core/domain/model/history"
	"workshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append persists a new history entry and returns it with the id the store
// assigned. Entries are never updated or deleted.
func (r *GormHistoryRepository) Append(ctx context.Context, entry history.Entry) (history.Entry, error) {
	if err := entry.OrderID.Validate(); err != nil {
		return history.Entry{}, err
	}

	dto := fromDomain(entry)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return history.Entry{}, err
	}

	return toDomain(dto)
}

// ListByOrder retrieves the order's history entries ordered by id.
func (r *GormHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]history.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]history.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
