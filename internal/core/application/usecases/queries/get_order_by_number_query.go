package queries

import (
	"errors"

	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves a single order by its human-readable
// order number, the identifier buyers see on documents.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	actor       accesspolicy.Actor
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for one order by number.
func NewGetOrderByNumberQuery(actor accesspolicy.Actor, orderNumber string) (GetOrderByNumberQuery, error) {
	q := GetOrderByNumberQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setActor(actor),
		q.setOrderNumber(orderNumber),
	); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (q GetOrderByNumberQuery) Actor() accesspolicy.Actor {
	return q.actor
}

// OrderNumber returns the requested order's human-readable number.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

func (q *GetOrderByNumberQuery) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetOrderByNumberQuery) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	q.orderNumber = orderNumber
	return nil
}
