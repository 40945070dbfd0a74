package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/selection"
	"workshop/internal/pkg/guard"
)

var (
	ErrRequestTransitionCommandIsNotConstructed = errors.New(
		"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
	)

	// ErrEmptySelection rejects a department transition whose acting role has
	// no rows selected in the relevant category. Raised before any side
	// effect; free-form status updates are exempt.
	ErrEmptySelection = errors.New("select at least one row before advancing the order")
)

// AttachmentFile carries a binary attachment uploaded with a transition.
type AttachmentFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// RequestTransitionCommand moves an order to an explicitly named target
// status, recording an auditable history event. The command carries the
// acting role's current row selection, an optional comment, an optional
// attachment (URL or binary file) and an optional assignee for the target
// department.
//
// Free-form requests (department reassignment from the status update form)
// skip the selection precondition and the selection save step.
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	target        order.Status
	comment       string
	attachmentURL string
	attachment    *AttachmentFile
	assigneeID    *kernel.UUID
	acting        selection.Role
	category      selection.Category
	ids           []string
	freeform      bool

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a department-scoped transition request.
// The acting role and category identify the selection whose non-emptiness is
// the transition precondition; ids is the acting role's current set, saved
// as step one of the saga.
func NewRequestTransitionCommand(
	orderID kernel.UUID,
	target order.Status,
	acting selection.Role,
	category selection.Category,
	ids []string,
	comment string,
) (RequestTransitionCommand, error) {
	cmd := RequestTransitionCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		acting.Validate(),
		category.Validate(),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	cmd.acting = acting
	cmd.category = category
	cmd.ids = append([]string(nil), ids...)
	return cmd, nil
}

// NewFreeformTransitionCommand creates a free-form status update request:
// no selection precondition and no selection save. Used by the department
// reassignment form.
func NewFreeformTransitionCommand(
	orderID kernel.UUID,
	target order.Status,
	comment string,
) (RequestTransitionCommand, error) {
	cmd := RequestTransitionCommand{
		comment:  comment,
		freeform: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return cmd, nil
}

// WithAttachmentURL attaches an already-hosted artifact URL to the command.
func (c RequestTransitionCommand) WithAttachmentURL(url string) RequestTransitionCommand {
	c.attachmentURL = url
	return c
}

// WithAttachmentFile attaches a binary file to be uploaded with the transition.
func (c RequestTransitionCommand) WithAttachmentFile(file AttachmentFile) RequestTransitionCommand {
	c.attachment = &file
	return c
}

// WithAssignee selects an employee for the target department stage.
func (c RequestTransitionCommand) WithAssignee(userID kernel.UUID) RequestTransitionCommand {
	c.assigneeID = &userID
	return c
}

// Validate ensures the command was created through a constructor.
// Returns ErrRequestTransitionCommandIsNotConstructed if validation fails.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the explicitly named target status.
func (c RequestTransitionCommand) Target() order.Status {
	return c.target
}

// Comment returns the free-text note for the history entry.
func (c RequestTransitionCommand) Comment() string {
	return c.comment
}

// AttachmentURL returns the already-hosted attachment URL, when set.
func (c RequestTransitionCommand) AttachmentURL() string {
	return c.attachmentURL
}

// AttachmentFile returns the binary attachment, when set.
func (c RequestTransitionCommand) AttachmentFile() *AttachmentFile {
	return c.attachment
}

// AssigneeID returns the chosen assignee, when set.
func (c RequestTransitionCommand) AssigneeID() *kernel.UUID {
	return c.assigneeID
}

// ActingRole returns the role issuing the transition.
func (c RequestTransitionCommand) ActingRole() selection.Role {
	return c.acting
}

// Category returns the selection category the precondition applies to.
func (c RequestTransitionCommand) Category() selection.Category {
	return c.category
}

// IsFreeform reports whether the request is a free-form status update,
// exempt from the selection precondition.
func (c RequestTransitionCommand) IsFreeform() bool {
	return c.freeform
}

// IDs returns a copy of the acting role's current selection.
func (c RequestTransitionCommand) IDs() []string {
	return append([]string(nil), c.ids...)
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
