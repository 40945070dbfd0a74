package queries

import (
	"context"

	"workshop/internal/core/domain/model/history"

	"gorm.io/gorm"
)

// GetRelevantAttachmentQueryHandler resolves "the most recent relevant PDF"
// for an order by loading its status history and applying the uniform
// resolution policy from the history model: department-scoped max-id match
// first, falling back to the most recent PDF-bearing entry overall.
type GetRelevantAttachmentQueryHandler struct {
	historyHandler GetStatusHistoryQueryHandler
}

// NewGetRelevantAttachmentQueryHandler creates a handler for relevant-PDF resolution.
// Requires a GORM database connection for the underlying history read.
func NewGetRelevantAttachmentQueryHandler(db *gorm.DB) GetRelevantAttachmentQueryHandler {
	return GetRelevantAttachmentQueryHandler{
		historyHandler: NewGetStatusHistoryQueryHandler(db),
	}
}

// Handle executes the resolution.
func (h GetRelevantAttachmentQueryHandler) Handle(
	ctx context.Context,
	query GetRelevantAttachmentQuery,
) (GetRelevantAttachmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRelevantAttachmentQueryResponse{}, err
	}

	historyQuery, err := NewGetStatusHistoryQuery(query.OrderID())
	if err != nil {
		return GetRelevantAttachmentQueryResponse{}, err
	}

	entries, err := h.historyHandler.Handle(ctx, historyQuery)
	if err != nil {
		return GetRelevantAttachmentQueryResponse{}, err
	}

	return GetRelevantAttachmentQueryResponse{
		URL: history.FindRelevantAttachment(entries, query.Department()),
	}, nil
}
