// Package historyrepo persists the append-only status history log.
//
// Entry ids come from a bigserial column, so ordering by id is a recency
// order regardless of clock drift between writers.
package historyrepo

import (
	"time"

	"workshop/internal/core/domain/model/history"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for one history entry.
type EntryDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	PreviousStatus int
	NewStatus      int
	Comment        string
	AttachmentURL  string `gorm:"column:attachment_url"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for history entries.
func (EntryDTO) TableName() string {
	return "status_history"
}

// fromDomain converts a history entry to its database representation.
// A zero ID leaves id assignment to the store.
func fromDomain(entry history.Entry) EntryDTO {
	return EntryDTO{
		ID:             entry.ID,
		OrderID:        entry.OrderID.Bytes(),
		PreviousStatus: int(entry.PreviousStatus),
		NewStatus:      int(entry.NewStatus),
		Comment:        entry.Comment,
		AttachmentURL:  entry.AttachmentURL,
		CreatedAt:      entry.CreatedAt,
	}
}

// toDomain converts a database DTO to a history entry.
func toDomain(dto EntryDTO) (history.Entry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return history.Entry{}, err
	}

	return history.Entry{
		ID:             dto.ID,
		OrderID:        orderID,
		PreviousStatus: order.Status(dto.PreviousStatus),
		NewStatus:      order.Status(dto.NewStatus),
		Comment:        dto.Comment,
		AttachmentURL:  dto.AttachmentURL,
		CreatedAt:      dto.CreatedAt,
	}, nil
}
