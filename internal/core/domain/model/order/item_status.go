package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// ItemStatus represents the production state of an order line item. The item
// lifecycle is independent of the parent order's lifecycle: an order can be
// invoiced while one of its items is still in bindery.
//
// Typical progression, with Hold as an optional detour:
//
//	Prepress ──> Press ──> Bindery ──> Shipping ──> Completed
//	                 └──> Hold ──┘
//
// Items move freely among open states on the production board; Completed and
// Cancelled are terminal.
type ItemStatus int

const (
	// ItemUnknown represents an invalid or undefined status.
	ItemUnknown ItemStatus = iota

	// ItemPrepress is the initial status: proofing and plate preparation.
	ItemPrepress

	// ItemPress indicates the item is on press.
	ItemPress

	// ItemBindery indicates cutting, folding, and finishing work.
	ItemBindery

	// ItemHold indicates production is paused, usually awaiting customer
	// input. An optional detour reachable from any open state.
	ItemHold

	// ItemShipping indicates the item is being packed and shipped.
	ItemShipping

	// ItemCompleted indicates the item is done. Terminal.
	ItemCompleted

	// ItemCancelled indicates the item was cancelled. Terminal.
	ItemCancelled
)

// getItemStatusStrings returns a map of ItemStatus values to their string representations.
func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:   "Unknown",
		ItemPrepress:  "Prepress",
		ItemPress:     "Press",
		ItemBindery:   "Bindery",
		ItemHold:      "Hold",
		ItemShipping:  "Shipping",
		ItemCompleted: "Completed",
		ItemCancelled: "Cancelled",
	}
}

// getValidItemStatusStrings returns a map of only valid ItemStatus values.
func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemPrepress:  "Prepress",
		ItemPress:     "Press",
		ItemBindery:   "Bindery",
		ItemHold:      "Hold",
		ItemShipping:  "Shipping",
		ItemCompleted: "Completed",
		ItemCancelled: "Cancelled",
	}
}

// ItemStatusFromString parses a status name as it appears on the wire or in
// storage. Returns an error for names outside the enumeration.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, name := range getValidItemStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("order item status",
		fmt.Errorf("%q is not a valid order item status", s))
}

// Validate checks that the ItemStatus value is a member of the enumeration.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order item status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s ItemStatus) IsTerminal() bool {
	return s == ItemCompleted || s == ItemCancelled
}

// TransitionTo validates a transition to target and returns the new status.
// Membership and terminality are the only rules: the production board allows
// dragging items among open columns in any direction.
func (s ItemStatus) TransitionTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause("orderItem", s.String(), target.String(), err)
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError("orderItem", s.String(), target.String())
	}

	return target, nil
}
