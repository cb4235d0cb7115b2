package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The financial workflow
// runs Pending through Completed, but the board UI allows free movement among
// open states, so the state machine only enforces enumeration membership and
// terminality.
//
// Typical progression:
//
//	Pending ──> PaymentReceived ──> Shipping ──> Invoicing ──> Invoiced ──> Completed
//	    └───────────┴──────────────────┴─────────────┴────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: once reached, no further transitions
// are accepted. Orders are never deleted, only cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created, whether by
	// conversion from an estimate or directly.
	Pending

	// PaymentReceived indicates payment has been collected.
	PaymentReceived

	// Shipping indicates the order is being packed and shipped.
	Shipping

	// Invoicing indicates an invoice is being prepared for the order.
	Invoicing

	// Invoiced indicates an invoice has been created against the order.
	// Set by the external invoicing collaborator via MarkInvoiced.
	Invoiced

	// Completed indicates the order is done. Terminal.
	Completed

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		PaymentReceived: "PaymentReceived",
		Shipping:        "Shipping",
		Invoicing:       "Invoicing",
		Invoiced:        "Invoiced",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		PaymentReceived: "PaymentReceived",
		Shipping:        "Shipping",
		Invoicing:       "Invoicing",
		Invoiced:        "Invoiced",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
	}
}

// StatusFromString parses a status name as it appears on the wire or in
// storage. Returns an error for names outside the enumeration.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is a member of the enumeration.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo validates a transition to target and returns the new status.
// Any member of the enumeration is a valid target from an open state; a
// strict forward-only order is deliberately not enforced because the board UI
// permits dragging among open states. Transitions out of Completed or
// Cancelled are rejected.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause("order", s.String(), target.String(), err)
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}

	return target, nil
}
