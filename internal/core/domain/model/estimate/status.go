package estimate

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the workflow state of an estimate or of one of its line
// items. Items mirror the parent estimate's workflow and share this type.
//
// State transitions:
//
//	Draft ──> Pending ──> Approved
//	  │          │
//	  └──────────┴──────> Cancelled
//
// Approved and Cancelled are terminal: once reached, no further transitions
// are accepted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an estimate is first created.
	Draft

	// Pending indicates the estimate has been sent to the customer
	// and is awaiting a decision.
	Pending

	// Approved indicates the estimate was accepted and converted into an
	// order. Terminal.
	Approved

	// Cancelled indicates the estimate was withdrawn or rejected. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Pending:   "Pending",
		Approved:  "Approved",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Pending:   "Pending",
		Approved:  "Approved",
		Cancelled: "Cancelled",
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("estimate status",
		fmt.Errorf("%q is not a valid estimate status", s))
}

// Validate checks that the Status value is a member of the enumeration.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estimate status",
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
	return s == Approved || s == Cancelled
}

// TransitionTo validates a transition to target and returns the new status.
// A transition is valid when the target is a member of the enumeration and
// the current status is not terminal. The entity name is used only for error
// reporting ("estimate" or "estimateItem").
func (s Status) TransitionTo(target Status, entity string) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause(entity, s.String(), target.String(), err)
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError(entity, s.String(), target.String())
	}

	return target, nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Draft -> Approved (direct approval during conversion)
//   - Pending -> Approved
//
// Invalid transitions:
//   - Approved -> Approved (already approved)
//   - Cancelled -> Approved (cancelled estimates stay cancelled)
func (s Status) Approve() (Status, error) {
	if s != Draft && s != Pending {
		return 0, errs.NewInvalidTransitionError("estimate", s.String(), Approved.String())
	}

	return Approved, nil
}

// Cancel transitions the status to Cancelled.
// Allowed from Draft and Pending only.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Pending {
		return 0, errs.NewInvalidTransitionError("estimate", s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
