package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrGetConsignmentQueryIsNotConstructed = errors.New(
	"GetConsignmentQuery must be created via NewGetConsignmentQuery constructor",
)

// GetConsignmentQuery retrieves a single consignment together with its
// full tracking trail.
type GetConsignmentQuery struct { //nolint:recvcheck //using for validation
	actor         accesspolicy.Actor
	consignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConsignmentQuery creates a query for one consignment.
func NewGetConsignmentQuery(actor accesspolicy.Actor, consignmentID kernel.UUID) (GetConsignmentQuery, error) {
	q := GetConsignmentQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setActor(actor),
		q.setConsignmentID(consignmentID),
	); err != nil {
		return GetConsignmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConsignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetConsignmentQueryIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (q GetConsignmentQuery) Actor() accesspolicy.Actor {
	return q.actor
}

// ConsignmentID returns the requested consignment's identifier.
func (q GetConsignmentQuery) ConsignmentID() kernel.UUID {
	return q.consignmentID
}

func (q *GetConsignmentQuery) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetConsignmentQuery) setConsignmentID(consignmentID kernel.UUID) error {
	if err := consignmentID.Validate(); err != nil {
		return err
	}

	q.consignmentID = consignmentID
	return nil
}
