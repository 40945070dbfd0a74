// Package history implements the append-only status history log of an order.
//
// Each Entry records one department transition together with an optional
// comment and attachment. Entries are identified by a monotonic id assigned
// by the store; "most recent" is always decided by id, never by timestamp,
// so the log stays well ordered even when clocks drift.
package history

import (
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
)

// Entry is one immutable audit record of a department transition.
type Entry struct {
	// ID is the store-assigned monotonic identifier. Ordering by ID
	// determines recency.
	ID int64

	// OrderID identifies the order the transition belongs to.
	OrderID kernel.UUID

	// PreviousStatus is the status the order left, when known.
	// Unknown marks the entry of an order entering the pipeline.
	PreviousStatus order.Status

	// NewStatus is the status the order entered.
	NewStatus order.Status

	// Comment is the free-text note attached by the acting user.
	Comment string

	// AttachmentURL points at the artifact uploaded with the transition,
	// empty when the transition carried none.
	AttachmentURL string

	// CreatedAt records when the entry was appended.
	CreatedAt time.Time
}

// NewEntry creates a history entry for a transition about to be persisted.
// The ID is zero until the store assigns one.
func NewEntry(
	orderID kernel.UUID,
	previous, next order.Status,
	comment, attachmentURL string,
) (Entry, error) {
	if err := orderID.Validate(); err != nil {
		return Entry{}, err
	}
	if err := next.Validate(); err != nil {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("newStatus", err)
	}

	return Entry{
		OrderID:        orderID,
		PreviousStatus: previous,
		NewStatus:      next,
		Comment:        comment,
		AttachmentURL:  attachmentURL,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// HasPDFAttachment reports whether the entry carries a PDF attachment.
func (e Entry) HasPDFAttachment() bool {
	return strings.HasSuffix(strings.ToLower(e.AttachmentURL), ".pdf")
}

// FindRelevantAttachment resolves "the most recent relevant PDF" from a
// status history.
//
// Only entries with a PDF-suffixed attachment are considered. When
// forDepartment is a valid status, entries recorded for that department are
// preferred; if none match, the search uniformly falls back to the most
// recent PDF-bearing entry regardless of department. Among candidates the
// entry with the highest ID wins, even when the input slice is out of
// id-order.
//
// Returns the attachment URL, or "" when the history holds no PDF at all.
func FindRelevantAttachment(entries []Entry, forDepartment order.Status) string {
	var scoped, any *Entry

	for i := range entries {
		e := &entries[i]
		if !e.HasPDFAttachment() {
			continue
		}
		if any == nil || e.ID > any.ID {
			any = e
		}
		if forDepartment.Validate() == nil && e.NewStatus == forDepartment {
			if scoped == nil || e.ID > scoped.ID {
				scoped = e
			}
		}
	}

	if scoped != nil {
		return scoped.AttachmentURL
	}
	if any != nil {
		return any.AttachmentURL
	}
	return ""
}
