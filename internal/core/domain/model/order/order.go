package order

import (
	"errors"
	"time"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order store. It owns its lines; lines
// are persisted atomically with the order and the total is fixed at creation.
//
// Invariants:
//   - token is valid and immutable once assigned
//   - at least one line, every line validated
//   - totalPrice == sum of line subtotals at creation, never recomputed
//   - status mutated only through the state machine in status.go
type Order struct {
	// id is the storage-local sequence id, zero until persisted.
	id int64

	token           kernel.UUID
	customerID      int64
	locationCode    string
	totalPrice      float64
	status          Status
	createdAt       time.Time
	deliveryAddress *string
	lines           []Line

	isConstructed bool
}

// NewOrder creates a pending order from validated lines, summing the total
// from their subtotals. This is the only entry point of the creation saga.
func NewOrder(
	token kernel.UUID,
	customerID int64,
	locationCode string,
	lines []Line,
	deliveryAddress *string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setToken(token),
		o.setCustomerID(customerID),
		o.setLocationCode(locationCode),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.deliveryAddress = deliveryAddress
	for _, line := range o.lines {
		o.totalPrice += line.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// trusted as-is; it was fixed at creation time and catalog prices may have
// changed since.
func RestoreOrder(
	id int64,
	token kernel.UUID,
	customerID int64,
	locationCode string,
	totalPrice float64,
	status Status,
	createdAt time.Time,
	deliveryAddress *string,
	lines []Line,
) (*Order, error) {
	if err := errors.Join(token.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		token:           token,
		customerID:      customerID,
		locationCode:    locationCode,
		totalPrice:      totalPrice,
		status:          status,
		createdAt:       createdAt,
		deliveryAddress: deliveryAddress,
		lines:           lines,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the storage-local sequence id (zero before first persist).
func (o *Order) ID() int64 {
	return o.id
}

// SetID records the sequence id assigned by the store. Persistence adapters
// call it once after insert.
func (o *Order) SetID(id int64) {
	o.id = id
}

// Token returns the globally unique order token.
func (o *Order) Token() kernel.UUID {
	return o.token
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// LocationCode returns the validated outlet location code.
func (o *Order) LocationCode() string {
	return o.locationCode
}

// TotalPrice returns the total fixed at creation time.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryAddress returns the optional free-text address, nil if absent.
func (o *Order) DeliveryAddress() *string {
	return o.deliveryAddress
}

// Lines returns the ordered line collection.
func (o *Order) Lines() []Line {
	return o.lines
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID int64) bool {
	return o.customerID == customerID
}

// TransitionTo advances the status through the state machine.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves a pending order to CANCELLED; any other status is a conflict.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	o.token = token
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLocationCode(locationCode string) error {
	if locationCode == "" {
		return errs.NewValueIsRequiredError("location_code")
	}
	o.locationCode = locationCode
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.lines = lines
	return nil
}
