package consignment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is one entry in a consignment's tracking trail: the status at that
// moment, optional free-form notes, and optionally where the driver was.
// Events are append-only; nothing in the system edits or deletes them.
type Event struct { //nolint:recvcheck //using for validation
	status     Status
	notes      string
	point      *kernel.GeoPoint
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a tracking event. point may be nil when the location is
// unknown (status changes made from the back office carry no coordinates).
func NewEvent(status Status, notes string, point *kernel.GeoPoint, occurredAt time.Time) (Event, error) {
	if err := status.Validate(); err != nil {
		return Event{}, err
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return Event{}, err
		}
	}

	return Event{
		status:     status,
		notes:      notes,
		point:      point,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the event was created through NewEvent.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Status returns the consignment status snapshotted into this event.
func (e Event) Status() Status {
	return e.status
}

// Notes returns the optional free-form notes.
func (e Event) Notes() string {
	return e.notes
}

// Point returns where the driver was, or nil when unknown.
func (e Event) Point() *kernel.GeoPoint {
	return e.point
}

// OccurredAt returns when the event was recorded.
func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
