package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The full transition graph:
//
//	Pending ───> Confirmed ───> Processing ───> Shipped ───> Delivered ──> Returned
//	   │             │               │              │ │
//	   │             │               │              └─┼──────> Returned
//	   └─────────────┴───────────────┴────────────────┴──────> Cancelled
//
// Cancelled is terminal. Returned is terminal. Delivered permits only the
// Returned edge. Every transition not in the table is rejected with
// InvalidStatusTransitionError.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the order exists and its
	// inventory is reserved, but stock has not been consumed yet.
	StatusPending

	// StatusConfirmed means the order was accepted and its reservations
	// were converted into permanent stock deductions.
	StatusConfirmed

	// StatusProcessing means warehouse staff are picking and packing.
	// Consignments may be created while Confirmed or Processing.
	StatusProcessing

	// StatusShipped means every consignment has left its warehouse.
	StatusShipped

	// StatusDelivered means all consignments reached the buyer. Reached
	// automatically when the last consignment is delivered.
	StatusDelivered

	// StatusCancelled is terminal; entering it releases any outstanding
	// inventory reservations.
	StatusCancelled

	// StatusReturned is terminal; the buyer sent the order back.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusConfirmed:  "Confirmed",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusDelivered:  "Delivered",
		StatusCancelled:  "Cancelled",
		StatusReturned:   "Returned",
	}
}

// statusTransitions is the explicit edge table of the order state machine.
// A transition is legal iff statusTransitions[from][to] is true.
func statusTransitions() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		StatusPending:    {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed:  {StatusProcessing: true, StatusCancelled: true},
		StatusProcessing: {StatusShipped: true, StatusCancelled: true},
		StatusShipped:    {StatusDelivered: true, StatusCancelled: true, StatusReturned: true},
		StatusDelivered:  {StatusReturned: true},
		StatusCancelled:  {},
		StatusReturned:   {},
	}
}

// StatusFromString parses an order status from its string form.
// Returns a ValueIsInvalid error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the edge from s to target is in the table.
func (s Status) CanTransitionTo(target Status) bool {
	return statusTransitions()[s][target]
}

// TransitionTo returns the target status when the edge is legal, or an
// InvalidStatusTransitionError carrying both statuses when it is not.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidStatusTransitionError("order", s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0
}
