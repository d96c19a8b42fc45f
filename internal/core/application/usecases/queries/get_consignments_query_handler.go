package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConsignmentsQueryHandler lists consignments. The role scope and the
// caller's filters are combined into one WHERE clause; the tracking trail
// is not loaded here, only by the single-consignment query.
type GetConsignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetConsignmentsQueryHandler creates a handler for consignment listing queries.
func NewGetConsignmentsQueryHandler(db *gorm.DB) GetConsignmentsQueryHandler {
	return GetConsignmentsQueryHandler{db: db}
}

// Handle executes the consignment listing query, newest first.
func (h GetConsignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetConsignmentsQuery,
) ([]ConsignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args, err := consignmentScope(query.Actor())
	if err != nil {
		return nil, err
	}
	if args == nil {
		return []ConsignmentResponse{}, nil
	}

	if query.OrderID() != nil {
		where += " AND order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}
	if query.WarehouseID() != nil {
		where += " AND warehouse_id = ?"
		args = append(args, query.WarehouseID().Bytes())
	}
	if query.DriverID() != nil {
		where += " AND driver_id = ?"
		args = append(args, query.DriverID().Bytes())
	}
	if query.Status() != consignment.StatusUnknown {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	args = append(args, query.PerPage(), (query.Page()-1)*query.PerPage())

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
		WHERE `+where+`
		ORDER BY created_at DESC, consignment_number DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consignments := make([]ConsignmentResponse, 0)
	for rows.Next() {
		response, scanErr := scanConsignmentRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		consignments = append(consignments, response)
	}

	return consignments, rows.Err()
}

// consignmentScope translates the actor's role into a WHERE fragment.
// A nil args slice with no error means the scope matches nothing.
func consignmentScope(actor accesspolicy.Actor) (string, []any, error) {
	switch actor.Role() {
	case accesspolicy.RoleAdmin:
		return "1=1", make([]any, 0, 6), nil
	case accesspolicy.RoleOps:
		warehouses := make([]uuid.UUID, 0, len(actor.WarehouseIDs()))
		for _, id := range actor.WarehouseIDs() {
			warehouses = append(warehouses, id.Bytes())
		}
		if len(warehouses) == 0 {
			return "", nil, nil
		}
		return "warehouse_id IN ?", []any{warehouses}, nil
	case accesspolicy.RoleDriver:
		return "driver_id = ?", []any{actor.ID().Bytes()}, nil
	case accesspolicy.RoleBuyer:
		return `EXISTS (
			SELECT 1 FROM orders o
			WHERE o.id = consignments.order_id AND o.buyer_id = ?
		)`, []any{actor.ID().Bytes()}, nil
	default:
		return "", nil, errs.NewForbiddenError("role may not list consignments")
	}
}

func scanConsignmentRow(scan func(dest ...any) error) (ConsignmentResponse, error) {
	var response ConsignmentResponse
	var id, orderID, warehouseID, pickupAddressID, deliveryAddressID uuid.UUID
	var driverID uuid.NullUUID
	var estimatedDeliveryAt, deliveredAt sql.NullTime

	if err := scan(
		&id,
		&response.ConsignmentNumber,
		&orderID,
		&warehouseID,
		&pickupAddressID,
		&deliveryAddressID,
		&driverID,
		&response.Status,
		&estimatedDeliveryAt,
		&deliveredAt,
		&response.CreatedAt,
	); err != nil {
		return ConsignmentResponse{}, err
	}

	var err error
	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ConsignmentResponse{}, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return ConsignmentResponse{}, err
	}
	if response.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
		return ConsignmentResponse{}, err
	}
	if response.PickupAddressID, err = kernel.UUIDFromBytes(pickupAddressID[:]); err != nil {
		return ConsignmentResponse{}, err
	}
	if response.DeliveryAddressID, err = kernel.UUIDFromBytes(deliveryAddressID[:]); err != nil {
		return ConsignmentResponse{}, err
	}
	if driverID.Valid {
		parsed, parseErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if parseErr != nil {
			return ConsignmentResponse{}, parseErr
		}
		response.DriverID = &parsed
	}
	if estimatedDeliveryAt.Valid {
		response.EstimatedDeliveryAt = &estimatedDeliveryAt.Time
	}
	if deliveredAt.Valid {
		response.DeliveredAt = &deliveredAt.Time
	}

	return response, nil
}
