package order

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one unit of work in the post-processing pipeline.
// It is the aggregate root the processor mutates in place.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning user identifier
//   - Status starts as New and priority as Low at construction
//   - After construction the processor is the sole mutator of status and
//     priority; every order leaves the pipeline with both fields set to one
//     of their enumerated values
//   - Can only be created through NewOrder or RestoreOrder
//
// Amount and flag carry no validation of their own: an absent amount is
// zero, an absent flag is false, matching the pipeline's coercion rules.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID identifies the user whose batch this order belongs to
	userID kernel.UUID

	// orderType selects the processing handler
	orderType Type

	// amount is the monetary magnitude used by the priority and
	// classification rules
	amount float64

	// flag is the boolean input to the type-B and type-C rules
	flag bool

	// status is the current processing state
	status Status

	// priority is derived from amount on every pipeline pass
	priority Priority

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with the initial New status and Low priority.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - userID: identifier of the owning user (must be a valid UUID)
//   - orderType: the closed type discriminant
//   - amount: monetary magnitude (no range constraint; zero when absent)
//   - flag: boolean input to the business rules (false when absent)
//
// Returns the constructed order, or a validation error when either
// identifier is invalid.
func NewOrder(id kernel.UUID, userID kernel.UUID, orderType Type, amount float64, flag bool) (*Order, error) {
	order := &Order{
		orderType:     orderType,
		amount:        amount,
		flag:          flag,
		status:        New,
		priority:      Low,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit
// status and priority. Used by the repository layer; unlike NewOrder it
// accepts any valid status/priority pair, not just the construction
// defaults.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	orderType Type,
	amount float64,
	flag bool,
	status Status,
	priority Priority,
) (*Order, error) {
	order, err := NewOrder(id, userID, orderType, amount, flag)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.priority = priority
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for a zero-value or directly
// instantiated struct.
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

// UserID returns the identifier of the user the order belongs to.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Type returns the closed type discriminant.
func (o *Order) Type() Type {
	return o.orderType
}

// Amount returns the monetary magnitude of the order.
func (o *Order) Amount() float64 {
	return o.amount
}

// Flag returns the order's boolean flag.
func (o *Order) Flag() bool {
	return o.flag
}

// Status returns the current processing status.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the current derived priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// ApplyStatus sets the order's status to the given value.
// The processor is the only caller; any valid status may be applied from
// any current status, since the pipeline's outcomes are terminal rather
// than transitional.
func (o *Order) ApplyStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// RecalculatePriority derives the priority from the order's amount,
// overwriting whatever priority the order held before.
func (o *Order) RecalculatePriority() {
	o.priority = PriorityForAmount(o.amount)
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

// setUserID validates and sets the owning user's identifier.
// This is a private method used only during construction.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}
