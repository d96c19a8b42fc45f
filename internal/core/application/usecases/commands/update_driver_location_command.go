package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a driver GPS ping. The new
// coordinates fan out as tracking events to every consignment the driver
// is actively moving (PICKED_UP or IN_TRANSIT).
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	actor    accesspolicy.Actor
	driverID kernel.UUID
	point    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to record a driver position.
func NewUpdateDriverLocationCommand(
	actor accesspolicy.Actor,
	driverID kernel.UUID,
	point kernel.GeoPoint,
) (UpdateDriverLocationCommand, error) {
	cmd := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDriverID(driverID),
		cmd.setPoint(point),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c UpdateDriverLocationCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// DriverID returns the driver whose position is being recorded.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Point returns the reported coordinates.
func (c UpdateDriverLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c *UpdateDriverLocationCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}
