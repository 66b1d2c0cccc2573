package delivery

import (
	"fmt"

	"pizzadelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	PENDING ──> DISPATCHED ──> IN_TRANSIT ──> DELIVERED
//	                 │
//	                 └────┐
//	            (reassignment keeps DISPATCHED)
//
// Assignment moves PENDING or DISPATCHED to DISPATCHED; agent-driven updates
// advance strictly one step forward. DELIVERED is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	StatusPending
	StatusDispatched
	StatusInTransit
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusDispatched: "DISPATCHED",
		StatusInTransit:  "IN_TRANSIT",
		StatusDelivered:  "DELIVERED",
	}
}

// ParseStatus maps the wire representation onto the enum.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", s))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// Assign transitions to DISPATCHED. Legal from PENDING (first assignment)
// and from DISPATCHED (reassignment); a delivery already on the road or
// completed cannot be assigned again.
func (s Status) Assign() (Status, error) {
	if s != StatusPending && s != StatusDispatched {
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("cannot assign a delivery in status %s", s),
		)
	}
	return StatusDispatched, nil
}

// TransitionTo validates an agent-driven move from s to next and returns the
// new status. Only one step forward along DISPATCHED -> IN_TRANSIT ->
// DELIVERED is legal.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s < StatusDispatched || s >= StatusDelivered || next != s+1 {
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("cannot transition delivery from %s to %s", s, next),
		)
	}

	return next, nil
}
