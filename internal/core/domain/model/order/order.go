package order

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a manufacturing order in the system. It is the aggregate root
// that tracks an order as it moves through the department pipeline from inquiry
// to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must name the customer it was placed by
//   - Status transitions follow the pipeline state machine rules
//   - Can only be created through NewOrder or RestoreOrder
//
// The core workflow engine only ever mutates the status field, through
// TransitionTo; customer, product line and requirements are owned by the
// order-entry screens and treated as opaque here.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer names the customer the order was placed by
	customer string

	// productLine names the product family being manufactured
	productLine string

	// requirements carries free-text custom requirements
	requirements string

	// status is the current department/pipeline stage
	status Status

	// isConstructed ensures the order was created via NewOrder/RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// (together with RestoreOrder) to create a valid Order.
//
// The order starts in Inquiry status. Product line and requirements may be
// empty; customer is required.
func NewOrder(id kernel.UUID, customer, productLine, requirements string) (*Order, error) {
	o := &Order{
		status:        Inquiry,
		productLine:   productLine,
		requirements:  requirements,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// initial-status rule. The stored status must still be valid.
func RestoreOrder(id kernel.UUID, customer, productLine, requirements string, status Status) (*Order, error) {
	o := &Order{
		productLine:   productLine,
		requirements:  requirements,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through its factory.
// Returns ErrOrderIsNotConstructed otherwise. This method should be called when
// reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer the order was placed by.
func (o *Order) Customer() string {
	return o.customer
}

// ProductLine returns the product family being manufactured.
func (o *Order) ProductLine() string {
	return o.productLine
}

// Requirements returns the order's free-text custom requirements.
func (o *Order) Requirements() string {
	return o.requirements
}

// Status returns the order's current department/pipeline stage.
func (o *Order) Status() Status {
	return o.status
}

// TransitionTo moves the order to the explicitly named target status.
//
// The state machine rules from Status.TransitionTo apply: the target must
// be valid and the order must not already be Completed. Pipeline order is
// not enforced here.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomer validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}
