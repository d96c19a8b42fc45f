package consignment

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrConsignmentIsNotConstructed is returned when a Consignment instance was
// not created through NewConsignment or RestoreConsignment.
var ErrConsignmentIsNotConstructed = errors.New(
	"Consignment must be created via NewConsignment or RestoreConsignment constructor")

// ErrDriverIsRequiredForAssigned is returned when a transition to Assigned is
// attempted on a consignment that has no driver.
var ErrDriverIsRequiredForAssigned = errs.NewValueIsRequiredError(
	"driver must be assigned before the consignment can enter Assigned status")

// Consignment is the delivery unit of the pipeline: one order's items from
// one warehouse, assigned to at most one driver at a time. It owns the
// delivery state machine and the append-only tracking trail.
//
// Invariants:
//   - exactly one (order, warehouse) pair per consignment; uniqueness of the
//     pair is enforced at persistence
//   - every status change appends exactly one Event
//   - Assigned and later states (except Pending after a Failed retry)
//     require a driver
//   - deliveredAt is set exactly once, by the Delivered transition
type Consignment struct {
	id                  kernel.UUID
	consignmentNumber   string
	orderID             kernel.UUID
	warehouseID         kernel.UUID
	driverID            *kernel.UUID
	status              Status
	pickupAddressID     kernel.UUID
	deliveryAddressID   kernel.UUID
	estimatedDeliveryAt *time.Time
	deliveredAt         *time.Time
	notes               []string
	events              []Event
	createdAt           time.Time

	guard guard.ConstructorGuard
}

// NewConsignment creates a Pending consignment for one warehouse of an order
// and seeds the tracking trail with the initial Pending event. Driver
// assignment, if any, happens afterwards via AssignDriver.
func NewConsignment(
	id kernel.UUID,
	consignmentNumber string,
	orderID kernel.UUID,
	warehouseID kernel.UUID,
	pickupAddressID kernel.UUID,
	deliveryAddressID kernel.UUID,
	estimatedDeliveryAt *time.Time,
	createdAt time.Time,
) (*Consignment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		warehouseID.Validate(),
		pickupAddressID.Validate(),
		deliveryAddressID.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(consignmentNumber) == "" {
		return nil, errs.NewValueIsRequiredError("consignmentNumber")
	}

	c := &Consignment{
		id:                  id,
		consignmentNumber:   consignmentNumber,
		orderID:             orderID,
		warehouseID:         warehouseID,
		status:              StatusPending,
		pickupAddressID:     pickupAddressID,
		deliveryAddressID:   deliveryAddressID,
		estimatedDeliveryAt: estimatedDeliveryAt,
		createdAt:           createdAt,
		guard:               guard.NewConstructorGuard(),
	}

	event, err := NewEvent(StatusPending, "", nil, createdAt)
	if err != nil {
		return nil, err
	}
	c.events = append(c.events, event)

	return c, nil
}

// RestoreConsignment reconstructs a consignment from persistence, including
// its stored tracking trail. No initial event is appended.
func RestoreConsignment(
	id kernel.UUID,
	consignmentNumber string,
	orderID kernel.UUID,
	warehouseID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	pickupAddressID kernel.UUID,
	deliveryAddressID kernel.UUID,
	estimatedDeliveryAt *time.Time,
	deliveredAt *time.Time,
	notes []string,
	events []Event,
	createdAt time.Time,
) (*Consignment, error) {
	c, err := NewConsignment(id, consignmentNumber, orderID, warehouseID,
		pickupAddressID, deliveryAddressID, estimatedDeliveryAt, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}
	for _, event := range events {
		if err = event.Validate(); err != nil {
			return nil, err
		}
	}

	c.driverID = driverID
	c.status = status
	c.deliveredAt = deliveredAt
	c.notes = notes
	c.events = events
	return c, nil
}

// Validate ensures the Consignment instance was properly constructed.
func (c *Consignment) Validate() error {
	if c == nil {
		return ErrConsignmentIsNotConstructed
	}
	return c.guard.Validate(ErrConsignmentIsNotConstructed)
}

// IsEqual compares two consignments by identity.
func (c *Consignment) IsEqual(other *Consignment) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the consignment's internal identifier.
func (c *Consignment) ID() kernel.UUID {
	return c.id
}

// ConsignmentNumber returns the human-readable identifier ("CON" + date + sequence).
func (c *Consignment) ConsignmentNumber() string {
	return c.consignmentNumber
}

// OrderID returns the parent order's identifier.
func (c *Consignment) OrderID() kernel.UUID {
	return c.orderID
}

// WarehouseID returns the warehouse whose items this consignment carries.
func (c *Consignment) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// DriverID returns the assigned driver, or nil while unassigned.
func (c *Consignment) DriverID() *kernel.UUID {
	return c.driverID
}

// Status returns the current delivery status.
func (c *Consignment) Status() Status {
	return c.status
}

// PickupAddressID returns the warehouse pickup address reference.
func (c *Consignment) PickupAddressID() kernel.UUID {
	return c.pickupAddressID
}

// DeliveryAddressID returns the delivery address copied from the order.
func (c *Consignment) DeliveryAddressID() kernel.UUID {
	return c.deliveryAddressID
}

// EstimatedDeliveryAt returns the promised delivery time, or nil.
func (c *Consignment) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}

// DeliveredAt returns when the consignment was delivered, or nil.
func (c *Consignment) DeliveredAt() *time.Time {
	return c.deliveredAt
}

// Notes returns the append-only note log.
func (c *Consignment) Notes() []string {
	return c.notes
}

// Events returns the time-ordered tracking trail.
func (c *Consignment) Events() []Event {
	return c.events
}

// CreatedAt returns the creation timestamp.
func (c *Consignment) CreatedAt() time.Time {
	return c.createdAt
}

// AssignDriver assigns or reassigns the driver. A Pending consignment moves
// to Assigned; a consignment already underway keeps its status (reassignment
// mid-flight is a back-office correction). Both cases append a tracking
// event. Assignment on a terminal consignment is rejected.
func (c *Consignment) AssignDriver(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if c.status.IsTerminal() {
		return errs.NewInvalidStatusTransitionError("consignment", c.status.String(), StatusAssigned.String())
	}

	if c.status == StatusPending {
		newStatus, err := c.status.TransitionTo(StatusAssigned)
		if err != nil {
			return err
		}
		c.status = newStatus
	}

	c.driverID = &driverID
	return c.appendEvent(c.status, "driver assigned", nil, at)
}

// TransitionTo moves the consignment along one edge of the state machine and
// appends the corresponding tracking event.
//
// Special edges:
//   - Assigned requires a driver (use AssignDriver for the Pending case)
//   - Delivered stamps deliveredAt with at
//   - Failed -> Pending clears the driver, returning the consignment to the
//     start of the assignment cycle
func (c *Consignment) TransitionTo(target Status, notes string, point *kernel.GeoPoint, at time.Time) error {
	if target == StatusAssigned && c.driverID == nil {
		return ErrDriverIsRequiredForAssigned
	}

	newStatus, err := c.status.TransitionTo(target)
	if err != nil {
		return err
	}

	previous := c.status
	c.status = newStatus

	switch {
	case newStatus == StatusDelivered:
		deliveredAt := at
		c.deliveredAt = &deliveredAt
	case previous == StatusFailed && newStatus == StatusPending:
		c.driverID = nil
	}

	return c.appendEvent(newStatus, notes, point, at)
}

// RecordLocation appends a tracking event carrying the driver's current
// position without changing status. Only meaningful while the consignment is
// actively moving; callers filter on Status().IsActivelyMoving().
func (c *Consignment) RecordLocation(point kernel.GeoPoint, at time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	return c.appendEvent(c.status, "", &point, at)
}

// SetEstimatedDelivery updates the promised delivery time.
func (c *Consignment) SetEstimatedDelivery(at time.Time) {
	c.estimatedDeliveryAt = &at
}

// SetDeliveredAt corrects the actual delivery timestamp. Only valid on a
// delivered consignment; the Delivered transition sets the initial value.
func (c *Consignment) SetDeliveredAt(at time.Time) error {
	if c.status != StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			errors.New("consignment is not delivered"))
	}
	c.deliveredAt = &at
	return nil
}

// AppendNote appends to the consignment's note log. A single note is
// always one line.
func (c *Consignment) AppendNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return errs.NewValueIsRequiredError("note")
	}
	if strings.ContainsAny(note, "\n\r") {
		return errs.NewValueIsInvalidError("note")
	}
	c.notes = append(c.notes, note)
	return nil
}

func (c *Consignment) appendEvent(status Status, notes string, point *kernel.GeoPoint, at time.Time) error {
	event, err := NewEvent(status, notes, point, at)
	if err != nil {
		return err
	}
	c.events = append(c.events, event)
	return nil
}
