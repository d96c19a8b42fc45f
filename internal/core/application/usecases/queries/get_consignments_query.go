package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetConsignmentsQueryIsNotConstructed = errors.New(
	"GetConsignmentsQuery must be created via NewGetConsignmentsQuery constructor",
)

// GetConsignmentsQuery lists consignments with optional filters. Every
// filter is independent; unset filters are left nil or zero.
type GetConsignmentsQuery struct { //nolint:recvcheck //using for validation
	actor       accesspolicy.Actor
	orderID     *kernel.UUID
	warehouseID *kernel.UUID
	driverID    *kernel.UUID
	status      consignment.Status
	page        int
	perPage     int

	guard guard.ConstructorGuard
}

// NewGetConsignmentsQuery creates a consignment listing query. Nil filter
// pointers and StatusUnknown mean "no filter".
func NewGetConsignmentsQuery(
	actor accesspolicy.Actor,
	orderID, warehouseID, driverID *kernel.UUID,
	status consignment.Status,
	page, perPage int,
) (GetConsignmentsQuery, error) {
	q := GetConsignmentsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setActor(actor),
		q.setFilters(orderID, warehouseID, driverID, status),
		q.setPaging(page, perPage),
	); err != nil {
		return GetConsignmentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConsignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetConsignmentsQueryIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (q GetConsignmentsQuery) Actor() accesspolicy.Actor {
	return q.actor
}

// OrderID returns the parent order filter, nil when unset.
func (q GetConsignmentsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// WarehouseID returns the origin warehouse filter, nil when unset.
func (q GetConsignmentsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// DriverID returns the assigned driver filter, nil when unset.
func (q GetConsignmentsQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// Status returns the status filter, StatusUnknown when unset.
func (q GetConsignmentsQuery) Status() consignment.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetConsignmentsQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q GetConsignmentsQuery) PerPage() int {
	return q.perPage
}

func (q *GetConsignmentsQuery) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetConsignmentsQuery) setFilters(
	orderID, warehouseID, driverID *kernel.UUID,
	status consignment.Status,
) error {
	for name, id := range map[string]*kernel.UUID{
		"orderID":     orderID,
		"warehouseID": warehouseID,
		"driverID":    driverID,
	} {
		if id != nil {
			if err := id.Validate(); err != nil {
				return errs.NewValueIsInvalidErrorWithCause(name, err)
			}
		}
	}
	if status != consignment.StatusUnknown {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.orderID = orderID
	q.warehouseID = warehouseID
	q.driverID = driverID
	q.status = status
	return nil
}

func (q *GetConsignmentsQuery) setPaging(page, perPage int) error {
	if page < 0 || perPage < 0 || perPage > maxPerPage {
		return errs.NewValueIsInvalidError("paging")
	}
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}

	q.page = page
	q.perPage = perPage
	return nil
}

// ConsignmentEventResponse is one tracking event in the read model.
type ConsignmentEventResponse struct {
	Status     string
	Notes      string
	Latitude   *float64
	Longitude  *float64
	OccurredAt time.Time
}

// ConsignmentResponse is the consignment read model.
type ConsignmentResponse struct {
	ID                  kernel.UUID
	ConsignmentNumber   string
	OrderID             kernel.UUID
	WarehouseID         kernel.UUID
	PickupAddressID     kernel.UUID
	DeliveryAddressID   kernel.UUID
	DriverID            *kernel.UUID
	Status              string
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
	CreatedAt           time.Time
	Events              []ConsignmentEventResponse
}
