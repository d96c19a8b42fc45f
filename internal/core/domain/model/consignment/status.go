package consignment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the delivery state of a consignment.
//
// The transition graph:
//
//	Pending ──> Assigned ──> Picked ──> PickedUp ──> InTransit ──> Delivered
//	   ^            │           │           │            │
//	   │            └── PickedUp┘           │            ├──> Failed ──> Pending
//	   │                                    │            │       (retry loop)
//	   └────────────────────────────────────┴────────────┘
//
// plus a Cancelled edge from every non-terminal state. Delivered and
// Cancelled are terminal; Failed loops back to Pending for a fresh attempt.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the consignment exists but no driver has it yet.
	StatusPending

	// StatusAssigned means a driver was assigned but has not collected the goods.
	StatusAssigned

	// StatusPicked means the goods were picked in the warehouse.
	StatusPicked

	// StatusPickedUp means the driver collected the goods from the warehouse.
	StatusPickedUp

	// StatusInTransit means the driver is on the way to the delivery address.
	StatusInTransit

	// StatusDelivered is terminal: the goods reached the buyer.
	StatusDelivered

	// StatusFailed means the delivery attempt failed; the only way out is
	// back to Pending for a retry.
	StatusFailed

	// StatusCancelled is terminal: the consignment was abandoned.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusAssigned:  "Assigned",
		StatusPicked:    "Picked",
		StatusPickedUp:  "PickedUp",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusFailed:    "Failed",
		StatusCancelled: "Cancelled",
	}
}

// statusTransitions is the explicit edge table of the consignment state machine.
func statusTransitions() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		StatusPending:   {StatusAssigned: true, StatusCancelled: true},
		StatusAssigned:  {StatusPicked: true, StatusPickedUp: true, StatusCancelled: true},
		StatusPicked:    {StatusPickedUp: true, StatusCancelled: true},
		StatusPickedUp:  {StatusInTransit: true, StatusCancelled: true},
		StatusInTransit: {StatusDelivered: true, StatusFailed: true, StatusCancelled: true},
		StatusDelivered: {},
		StatusFailed:    {StatusPending: true},
		StatusCancelled: {},
	}
}

// StatusFromString parses a consignment status from its string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("consignment status",
		fmt.Errorf("%q is not a valid consignment status", s))
}

// Validate checks that the status is one of the defined delivery states.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("consignment status",
			fmt.Errorf("%d is not a valid consignment status", s))
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
		return StatusUnknown, errs.NewInvalidStatusTransitionError("consignment", s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0
}

// IsActivelyMoving reports whether a driver is currently carrying the goods.
// Driver location pings append tracking events only to consignments in these
// states.
func (s Status) IsActivelyMoving() bool {
	return s == StatusPickedUp || s == StatusInTransit
}
