package order

import (
	"fmt"
	"strings"

	"retailedge/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The transition function is total: any valid status may change to any other
// valid status, including itself. There is no guard graph; Cancelled, Refunded,
// and Delivered are terminal only by convention.
//
// Status values are persisted as integers and exposed over the API by their
// upper-case names (e.g. "PENDING").
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every newly created order.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was cancelled.
	Cancelled

	// Refunded indicates the order was refunded after payment.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Refunded:   "REFUNDED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Refunded:   "REFUNDED",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name of the status, e.g. "PENDING".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a status from its name, case-insensitively.
// Used when parsing status values from request paths and query parameters.
func StatusFromString(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// ChangeTo validates a transition to the next status and returns it.
//
// Every pair of valid statuses is an allowed transition, including same-status
// no-ops; only the target status itself is validated. This mirrors the upstream
// system, which imposes no guard on status changes.
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	return next, nil
}
