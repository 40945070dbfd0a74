package commands

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/history"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/ports"
)

// TransitionStep names one step of the transition saga.
type TransitionStep string

const (
	StepSaveSelection TransitionStep = "save-selection"
	StepChangeStatus  TransitionStep = "change-status"
	StepAssign        TransitionStep = "assign-employee"
)

// TransitionResult reports the saga's per-step outcomes. The saga is
// fail-fast with no compensating rollback: a step that fails leaves every
// earlier committed step in place, and the result makes that partial state
// representable instead of collapsing it into a single error.
type TransitionResult struct {
	// Entry is the history entry appended by the status change step.
	Entry history.Entry

	// SelectionSaved reports whether the selection save step committed.
	SelectionSaved bool

	// StatusChanged reports whether the status change step committed.
	StatusChanged bool

	// AssignmentWarning carries the assignment step's failure, when the
	// status change had already committed. Non-fatal.
	AssignmentWarning error
}

// RequestTransitionCommandHandler orchestrates the three-step workflow
// transition saga:
//
//  1. persist the acting role's selection,
//  2. upload the attachment (when a file was supplied), move the order to
//     the target status and append the history entry,
//  3. optionally assign the chosen employee to the target department.
//
// Each step runs in its own unit of work; step N+1 only starts after step N
// committed, and a later failure never rolls an earlier step back. Step 3
// failure is downgraded to a warning on the result because the transition
// is already committed by then.
type RequestTransitionCommandHandler struct {
	uowFactory  UoWFactory
	attachments ports.AttachmentStore
}

// NewRequestTransitionCommandHandler creates a handler for workflow transitions.
// Requires a UoWFactory for per-step transactions and an AttachmentStore for
// binary attachments.
func NewRequestTransitionCommandHandler(
	uowFactory UoWFactory,
	attachments ports.AttachmentStore,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory:  uowFactory,
		attachments: attachments,
	}
}

// Handle processes the transition request.
//
// The selection precondition is checked before any side effect: a
// department-scoped request whose acting role has nothing selected is
// rejected with ErrEmptySelection and no I/O is issued.
func (h RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	command RequestTransitionCommand,
) (TransitionResult, error) {
	var result TransitionResult

	if err := command.Validate(); err != nil {
		return result, err
	}

	if !command.IsFreeform() && len(command.IDs()) == 0 {
		return result, ErrEmptySelection
	}

	// Step 1: save the acting role's selection.
	if !command.IsFreeform() {
		if err := h.saveSelection(ctx, command); err != nil {
			return result, fmt.Errorf("%s: %w", StepSaveSelection, err)
		}
		result.SelectionSaved = true
	}

	// Step 2: upload the attachment and commit the status change.
	entry, err := h.changeStatus(ctx, command)
	if err != nil {
		return result, fmt.Errorf("%s: %w", StepChangeStatus, err)
	}
	result.Entry = entry
	result.StatusChanged = true

	// Step 3: assignment, downgraded to a warning on failure.
	if command.AssigneeID() != nil && command.Target().IsDepartment() {
		if err := h.assign(ctx, command); err != nil {
			result.AssignmentWarning = fmt.Errorf("%s: %w", StepAssign, err)
		}
	}

	return result, nil
}

func (h RequestTransitionCommandHandler) saveSelection(ctx context.Context, command RequestTransitionCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := uow.SelectionRepository().SaveRole(
		ctx,
		command.OrderID(),
		command.Category(),
		command.ActingRole(),
		command.IDs(),
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RequestTransitionCommandHandler) changeStatus(
	ctx context.Context,
	command RequestTransitionCommand,
) (history.Entry, error) {
	attachmentURL, err := h.uploadAttachment(ctx, command)
	if err != nil {
		return history.Entry{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return history.Entry{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return history.Entry{}, err
	}

	previous := aggregate.Status()
	if err = aggregate.TransitionTo(command.Target()); err != nil {
		return history.Entry{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return history.Entry{}, err
	}

	entry, err := history.NewEntry(command.OrderID(), previous, command.Target(), command.Comment(), attachmentURL)
	if err != nil {
		return history.Entry{}, err
	}

	entry, err = uow.HistoryRepository().Append(ctx, entry)
	if err != nil {
		return history.Entry{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return history.Entry{}, err
	}

	return entry, nil
}

func (h RequestTransitionCommandHandler) uploadAttachment(
	ctx context.Context,
	command RequestTransitionCommand,
) (string, error) {
	file := command.AttachmentFile()
	if file == nil {
		return command.AttachmentURL(), nil
	}

	key := fmt.Sprintf(
		"orders/%s/status/%s%s",
		command.OrderID().String(),
		kernel.NewUUID().String(),
		path.Ext(file.Name),
	)

	return h.attachments.Put(ctx, key, bytes.NewReader(file.Content), file.ContentType)
}

func (h RequestTransitionCommandHandler) assign(ctx context.Context, command RequestTransitionCommand) error {
	aggregate, err := assignment.NewAssignment(
		kernel.NewUUID(),
		command.OrderID(),
		*command.AssigneeID(),
		command.Target(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssignmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
