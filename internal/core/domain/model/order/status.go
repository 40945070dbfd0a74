package order

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the department an order currently sits in.
// It implements a state machine over the fixed manufacturing pipeline
// to ensure orders follow the correct business workflow.
//
// Pipeline:
//
//	Inquiry ──> Design ──> Production ──> Machining ──> Inspection ──> Completed
//
// A transition request always names its target explicitly; the machine
// validates that the target is a known status and that the current status
// is not terminal, but deliberately does not force the pipeline order:
// sending an order back to an earlier department is a supported operation.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	// It also stands in for the implicit pre-state of an order
	// that has never entered the pipeline.
	Unknown Status = iota

	// Inquiry is the initial status when an order is first registered.
	Inquiry

	// Design indicates the order is with the design department.
	Design

	// Production indicates the order is with the production department.
	Production

	// Machining indicates the order is with the machining department.
	Machining

	// Inspection indicates the order is with the inspection department.
	Inspection

	// Completed indicates the order has passed inspection and left the pipeline.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Inquiry:    "INQUIRY",
		Design:     "DESIGN",
		Production: "PRODUCTION",
		Machining:  "MACHINING",
		Inspection: "INSPECTION",
		Completed:  "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Inquiry:    "INQUIRY",
		Design:     "DESIGN",
		Production: "PRODUCTION",
		Machining:  "MACHINING",
		Inspection: "INSPECTION",
		Completed:  "COMPLETED",
	}
}

// StatusFromString parses a status from its wire representation.
// Returns a ValueIsInvalidError for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Inquiry, Design, Production, Machining, Inspection, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsDepartment reports whether the status is one of the four department
// stages that carry a role-scoped selection (Design, Production, Machining,
// Inspection). Inquiry and Completed are pipeline endpoints, not departments.
func (s Status) IsDepartment() bool {
	return s == Design || s == Production || s == Machining || s == Inspection
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// TransitionTo validates a transition from the current status to target
// and returns the new status.
//
// Rules:
//   - target must be a valid status
//   - Completed is terminal: no transition may leave it
//   - Unknown is accepted as the current status (an order that has not
//     entered the pipeline yet)
//   - the pipeline order is NOT enforced; out-of-order and backward
//     transitions are allowed so departments can send orders back
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot transition to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
