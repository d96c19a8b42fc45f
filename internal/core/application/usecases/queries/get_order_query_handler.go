package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches one order with its lines. The order is
// fetched by id first and the access policy evaluated against it, so an
// existing order outside the caller's scope fails with ForbiddenError
// while an absent id fails with ObjectNotFoundError.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the single-order query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			buyer_id,
			delivery_address_id,
			status,
			payment_status,
			subtotal,
			tax_amount,
			total,
			created_at
		FROM orders
		WHERE id = ?`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	response, err := scanOrderRow(rows.Scan)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, []uuid.UUID{response.ID.Bytes()})
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items[response.ID.Bytes()]

	warehouseIDs := make([]kernel.UUID, 0, len(response.Items))
	for _, item := range response.Items {
		warehouseIDs = append(warehouseIDs, item.WarehouseID)
	}
	if err = accesspolicy.CanViewOrder(query.Actor(), response.BuyerID, warehouseIDs); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}
