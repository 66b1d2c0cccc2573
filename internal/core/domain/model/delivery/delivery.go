package delivery

import (
	"errors"
	"time"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate root of the delivery store.
//
// Invariants:
//   - delivery token and order token are valid and immutable
//   - at most one delivery exists per order token (unique constraint)
//   - assignedAt is stamped on the first assignment only
//   - updatedAt moves on every mutation
type Delivery struct {
	// id is the storage-local sequence id, zero until persisted.
	id int64

	token      kernel.UUID
	orderToken kernel.UUID
	agentID    *int64
	status     Status
	assignedAt *time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewDelivery creates a pending, unassigned delivery for an order token.
// Called from the event consumer and from the explicit admin/staff path.
func NewDelivery(token kernel.UUID, orderToken kernel.UUID, now time.Time) (*Delivery, error) {
	if err := errors.Join(token.Validate(), orderToken.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		token:         token,
		orderToken:    orderToken,
		status:        StatusPending,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id int64,
	token kernel.UUID,
	orderToken kernel.UUID,
	agentID *int64,
	status Status,
	assignedAt *time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	if err := errors.Join(token.Validate(), orderToken.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		token:         token,
		orderToken:    orderToken,
		agentID:       agentID,
		status:        status,
		assignedAt:    assignedAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Delivery was built through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the storage-local sequence id (zero before first persist).
func (d *Delivery) ID() int64 {
	return d.id
}

// SetID records the sequence id assigned by the store.
func (d *Delivery) SetID(id int64) {
	d.id = id
}

// Token returns the globally unique delivery token.
func (d *Delivery) Token() kernel.UUID {
	return d.token
}

// OrderToken returns the token of the originating order.
func (d *Delivery) OrderToken() kernel.UUID {
	return d.orderToken
}

// AgentID returns the assigned delivery agent, nil until first assignment.
func (d *Delivery) AgentID() *int64 {
	return d.agentID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignedAt returns the first-assignment timestamp, nil until assigned.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// UpdatedAt returns the last mutation timestamp.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsAssignedTo reports whether the delivery is currently assigned to the
// given agent.
func (d *Delivery) IsAssignedTo(agentID int64) bool {
	return d.agentID != nil && *d.agentID == agentID
}

// Assign hands the delivery to an agent. The requested status must be
// exactly DISPATCHED; the status machine decides whether assignment is legal
// from the current state. The first assignment stamps assignedAt, a
// reassignment does not.
func (d *Delivery) Assign(agentID int64, requested Status, now time.Time) error {
	if agentID <= 0 {
		return errs.NewValueIsRequiredError("delivery_person_id")
	}
	if requested != StatusDispatched {
		return errs.NewValueIsInvalidError("only DISPATCHED status is allowed for assignment")
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	if d.agentID == nil {
		d.assignedAt = &now
	}
	d.agentID = &agentID
	d.status = newStatus
	d.updatedAt = now
	return nil
}

// UpdateStatus advances the status through an agent-driven transition.
func (d *Delivery) UpdateStatus(next Status, now time.Time) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}
	d.status = newStatus
	d.updatedAt = now
	return nil
}
