package order

import (
	"fmt"

	"laundromart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow across the three acting roles.
//
// State transitions:
//
//	pending ──approve──> approved ──claim──> assigned ──> picked ──> in_laundry
//	   │                                       (driver advances, one step each)
//	   └────reject────> cancelled              ──> ready ──> out_for_delivery ──> delivered
//
// delivered and cancelled are terminal states with no further transitions.
// Status is a value object that validates state transitions and provides the
// snake_case string representation used on the wire and in the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	// Orders in this status await the admin's approve/reject decision.
	Pending

	// Approved indicates the admin accepted the order.
	// Approved orders with no driver form the claimable pool.
	Approved

	// Assigned indicates a driver claimed the order (or an admin assigned one).
	Assigned

	// Picked indicates the driver collected the garments from the customer.
	Picked

	// InLaundry indicates the garments are being processed at the hub.
	InLaundry

	// Ready indicates processing finished and the order awaits delivery.
	Ready

	// OutForDelivery indicates the driver is returning the garments.
	OutForDelivery

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal state of a rejected order.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Approved:       "approved",
		Assigned:       "assigned",
		Picked:         "picked",
		InLaundry:      "in_laundry",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Approved:       "approved",
		Assigned:       "assigned",
		Picked:         "picked",
		InLaundry:      "in_laundry",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses the snake_case wire representation of a status.
// Returns an error for unknown strings.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Any other current status yields an InvalidTransitionError.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("approve", s.String())
	}
	return Approved, nil
}

// Reject transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Any other current status yields an InvalidTransitionError.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("reject", s.String())
	}
	return Cancelled, nil
}

// Assign transitions the status to Assigned when a driver takes the order.
//
// Valid transitions:
//   - Approved -> Assigned
//
// Any other current status yields an InvalidTransitionError. An already
// assigned order may never be assigned again; the race between concurrent
// claimants is resolved by the store's conditional update, not here.
func (s Status) Assign() (Status, error) {
	if s != Approved {
		return Unknown, errs.NewInvalidTransitionError("claim", s.String())
	}
	return Assigned, nil
}

// Next returns the successor of this status in the driver's forward chain:
//
//	Assigned -> Picked -> InLaundry -> Ready -> OutForDelivery -> Delivered
//
// Statuses outside the chain (including terminal ones and statuses still
// owned by the admin) yield an InvalidTransitionError.
func (s Status) Next() (Status, error) {
	switch s {
	case Assigned:
		return Picked, nil
	case Picked:
		return InLaundry, nil
	case InLaundry:
		return Ready, nil
	case Ready:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return Unknown, errs.NewInvalidTransitionError("advance", s.String())
	}
}
