package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// GetOrdersQuery lists orders, newest first, with optional status filter
// and pagination. Results are scoped by the actor's role: buyers see
// their own orders, ops see orders touching their warehouses, admins see
// everything. Drivers have no order-level visibility.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actor   accesspolicy.Actor
	status  order.Status
	page    int
	perPage int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. A zero status lists
// all statuses; page numbers start at 1.
func NewGetOrdersQuery(actor accesspolicy.Actor, status order.Status, page, perPage int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(actor),
		q.setPaging(page, perPage),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (q GetOrdersQuery) Actor() accesspolicy.Actor {
	return q.actor
}

// Status returns the status filter, StatusUnknown when unfiltered.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q GetOrdersQuery) PerPage() int {
	return q.perPage
}

func (q *GetOrdersQuery) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetOrdersQuery) setPaging(page, perPage int) error {
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

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	WarehouseID kernel.UUID
	Quantity    int
	UnitPrice   float64
	LineTax     float64
}

// OrderResponse is the order read model shared by the list and get queries.
type OrderResponse struct {
	ID                kernel.UUID
	OrderNumber       string
	BuyerID           kernel.UUID
	DeliveryAddressID kernel.UUID
	Status            string
	PaymentStatus     string
	Subtotal          float64
	TaxAmount         float64
	Total             float64
	Items             []OrderItemResponse
	CreatedAt         time.Time
}
