package http

import (
	"time"

	"workshop/internal/core/domain/model/artifact"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ClassifyResponse is the tagged artifact payload of the classify endpoint.
type ClassifyResponse struct {
	Kind           artifact.Kind     `json:"kind"`
	ActiveTab      artifact.Tab      `json:"activeTab"`
	ActiveResultNo int               `json:"activeResultNo,omitempty"`
	Artifact       artifact.Artifact `json:"artifact"`
}

// SaveSelectionRequest carries exactly one role's row id set, keyed by that
// role's payload key. Absent keys are nil; only the acting role's key may be
// present.
type SaveSelectionRequest struct {
	DesignerSelectedRowIds   []string `json:"designerSelectedRowIds"`
	ProductionSelectedRowIds []string `json:"productionSelectedRowIds"`
	MachineSelectedRowIds    []string `json:"machineSelectedRowIds"`
	InspectionSelectedRowIds []string `json:"inspectionSelectedRowIds"`
}

// StatusUpdateRequest is the JSON part of the multipart status endpoint.
type StatusUpdateRequest struct {
	NewStatus     string   `json:"newStatus"`
	Comment       string   `json:"comment"`
	AttachmentURL string   `json:"attachmentUrl"`
	AssigneeID    string   `json:"assigneeId"`
	Category      string   `json:"category"`
	RowIDs        []string `json:"rowIds"`
	Freeform      bool     `json:"freeform"`
}

// StatusUpdateResponse reports the per-step outcome of a transition.
type StatusUpdateResponse struct {
	HistoryEntry      HistoryEntryResponse `json:"historyEntry"`
	SelectionSaved    bool                 `json:"selectionSaved"`
	StatusChanged     bool                 `json:"statusChanged"`
	AssignmentWarning string               `json:"assignmentWarning,omitempty"`
}

// HistoryEntryResponse is one status history entry on the wire.
type HistoryEntryResponse struct {
	ID             int64     `json:"id"`
	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Comment        string    `json:"comment"`
	AttachmentURL  string    `json:"attachmentUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AssignmentRequest records an employee assignment for an order's department
// stage.
type AssignmentRequest struct {
	UserID     string `json:"userId"`
	OrderID    string `json:"orderId"`
	Department string `json:"department"`
}

// UserResponse is one workshop employee on the wire.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// CreateOrderRequest registers a new manufacturing order.
type CreateOrderRequest struct {
	Customer     string `json:"customer"`
	ProductLine  string `json:"productLine"`
	Requirements string `json:"requirements"`
}

// CreateOrderResponse returns the id of a freshly registered order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse is one active order on the wire.
type OrderResponse struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	ProductLine string `json:"productLine"`
	Status      string `json:"status"`
}

// RelevantPDFResponse is the resolved attachment of the relevant-pdf endpoint.
type RelevantPDFResponse struct {
	URL string `json:"url"`
}
