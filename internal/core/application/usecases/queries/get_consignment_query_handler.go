package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConsignmentQueryHandler fetches one consignment with its tracking
// trail in event order. The consignment is fetched by id first and the
// access policy evaluated against it and its parent order's buyer, so an
// existing consignment outside the caller's scope fails with
// ForbiddenError while an absent id fails with ObjectNotFoundError.
type GetConsignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetConsignmentQueryHandler creates a handler for single-consignment queries.
func NewGetConsignmentQueryHandler(db *gorm.DB) GetConsignmentQueryHandler {
	return GetConsignmentQueryHandler{db: db}
}

// Handle executes the single-consignment query.
func (h GetConsignmentQueryHandler) Handle(
	ctx context.Context,
	query GetConsignmentQuery,
) (ConsignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ConsignmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			consignment_number,
			order_id,
			warehouse_id,
			pickup_address_id,
			delivery_address_id,
			driver_id,
			status,
			estimated_delivery_at,
			delivered_at,
			created_at
		FROM consignments
		WHERE id = ?`, query.ConsignmentID().Bytes()).Rows()
	if err != nil {
		return ConsignmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ConsignmentResponse{}, err
		}
		return ConsignmentResponse{}, errs.NewObjectNotFoundError("consignmentID", query.ConsignmentID())
	}

	response, err := scanConsignmentRow(rows.Scan)
	if err != nil {
		return ConsignmentResponse{}, err
	}

	buyerID, err := h.loadOrderBuyer(ctx, response.OrderID)
	if err != nil {
		return ConsignmentResponse{}, err
	}
	if err = accesspolicy.CanViewConsignment(
		query.Actor(), buyerID, response.WarehouseID, response.DriverID); err != nil {
		return ConsignmentResponse{}, err
	}

	response.Events, err = h.loadEvents(ctx, query)
	if err != nil {
		return ConsignmentResponse{}, err
	}

	return response, nil
}

func (h GetConsignmentQueryHandler) loadOrderBuyer(
	ctx context.Context,
	orderID kernel.UUID,
) (kernel.UUID, error) {
	var buyerID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT buyer_id FROM orders WHERE id = ?
	`, orderID.Bytes()).Scan(&buyerID).Error
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(buyerID[:])
}

func (h GetConsignmentQueryHandler) loadEvents(
	ctx context.Context,
	query GetConsignmentQuery,
) ([]ConsignmentEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			notes,
			latitude,
			longitude,
			occurred_at
		FROM consignment_events
		WHERE consignment_id = ?
		ORDER BY seq
	`, query.ConsignmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]ConsignmentEventResponse, 0)
	for rows.Next() {
		var event ConsignmentEventResponse
		if err = rows.Scan(
			&event.Status,
			&event.Notes,
			&event.Latitude,
			&event.Longitude,
			&event.OccurredAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
