// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models, run raw SQL for the read path and
// apply the access policy before touching the database.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a buyer's cart with per-line price snapshots
// and a running subtotal.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	actor   accesspolicy.Actor
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a buyer's cart contents.
func NewGetCartQuery(actor accesspolicy.Actor, buyerID kernel.UUID) (GetCartQuery, error) {
	q := GetCartQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setActor(actor),
		q.setBuyerID(buyerID),
	); err != nil {
		return GetCartQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (q GetCartQuery) Actor() accesspolicy.Actor {
	return q.actor
}

// BuyerID returns the cart owner's identifier.
func (q GetCartQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

func (q *GetCartQuery) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetCartQuery) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	q.buyerID = buyerID
	return nil
}

// CartLineResponse is one cart line in the read model.
type CartLineResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	WarehouseID kernel.UUID
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// GetCartQueryResponse is the complete cart read model.
type GetCartQueryResponse struct {
	BuyerID  kernel.UUID
	Lines    []CartLineResponse
	Subtotal float64
}
