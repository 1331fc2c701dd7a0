package order

import (
	"fmt"
	"strings"

	"agrikart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Lifecycle:
//
//	Pending ──> Confirmed ──> PickedUp ──> InTransit ──> Delivered
//	    └──────────────────────┴─────────────> Cancelled
//
// Any valid status may be set at any time by back-office tooling; the
// progression above is the expected path, not a hard state machine.
// Status is a value object that validates its values and provides the
// wire representation used for persistence and the HTTP API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	// Pending orders are candidates for courier assignment.
	Pending

	// Confirmed indicates the farmer has acknowledged the order.
	Confirmed

	// PickedUp indicates the courier has collected the order at the farm.
	PickedUp

	// InTransit indicates the courier is en route to the buyer.
	InTransit

	// Delivered indicates the order reached the buyer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

// InvalidStatusError reports a status value outside the known set,
// carrying the offending input and the accepted wire names.
type InvalidStatusError struct {
	Given   string
	Allowed []string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("status is invalid: %q is not one of [%s]",
		e.Given, strings.Join(e.Allowed, ", "))
}

func (e *InvalidStatusError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatuses returns the valid statuses in lifecycle order.
// Unknown is intentionally excluded as it's invalid.
func getValidStatuses() []Status {
	return []Status{Pending, Confirmed, PickedUp, InTransit, Delivered, Cancelled}
}

// AllowedStatusNames returns the wire names of every valid status in
// lifecycle order, for error messages and API documentation.
func AllowedStatusNames() []string {
	statuses := getValidStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

// StatusFromString parses a wire name ("PENDING", "CONFIRMED", ...) into a
// Status. Matching is case-sensitive. Returns an InvalidStatusError listing
// the accepted names for anything else.
func StatusFromString(s string) (Status, error) {
	for _, status := range getValidStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, &InvalidStatusError{Given: s, Allowed: AllowedStatusNames()}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return &InvalidStatusError{
			Given:   fmt.Sprintf("%d", int(s)),
			Allowed: AllowedStatusNames(),
		}
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the order lifecycle.
// Terminal orders are never considered for courier assignment.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
