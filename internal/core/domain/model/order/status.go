package order

import (
	"fmt"

	"pizzadelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │
//	   └──> CANCELLED
//
// The happy path advances strictly one step at a time; CANCELLED is reachable
// only from PENDING. Both terminal states (DELIVERED, CANCELLED) admit no
// further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	StatusPending
	StatusConfirmed
	StatusPreparing
	StatusOutForDelivery
	StatusDelivered
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusConfirmed:      "CONFIRMED",
		StatusPreparing:      "PREPARING",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

// ParseStatus maps the wire representation onto the enum.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
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
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// TransitionTo validates moving from s to next and returns the new status.
// Legal moves are exactly one step forward along the happy path, or
// PENDING -> CANCELLED. Everything else is a conflict.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if next == StatusCancelled {
		return s.Cancel()
	}

	if s < StatusPending || s >= StatusDelivered || s == StatusCancelled || next != s+1 {
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("cannot transition order from %s to %s", s, next),
		)
	}

	return next, nil
}

// Cancel transitions to CANCELLED. Only pending orders can be cancelled;
// any other status is a conflict, never a silent no-op.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("only pending orders can be cancelled, current status is %s", s),
		)
	}
	return StatusCancelled, nil
}
