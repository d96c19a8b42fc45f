package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database with role scoping
// pushed into the SQL itself: the caller never sees rows the policy
// would deny.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order listing query, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "1=1"
	args := make([]any, 0, 4)

	switch query.Actor().Role() {
	case accesspolicy.RoleAdmin:
	case accesspolicy.RoleBuyer:
		where += " AND buyer_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case accesspolicy.RoleOps:
		warehouses := make([]uuid.UUID, 0, len(query.Actor().WarehouseIDs()))
		for _, id := range query.Actor().WarehouseIDs() {
			warehouses = append(warehouses, id.Bytes())
		}
		if len(warehouses) == 0 {
			return []OrderResponse{}, nil
		}
		where += ` AND EXISTS (
			SELECT 1 FROM order_items oi
			WHERE oi.order_id = orders.id AND oi.warehouse_id IN ?
		)`
		args = append(args, warehouses)
	default:
		return nil, errs.NewForbiddenError("role may not list orders")
	}

	if query.Status() != order.StatusUnknown {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	args = append(args, query.PerPage(), (query.Page()-1)*query.PerPage())

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
		WHERE `+where+`
		ORDER BY created_at DESC, order_number DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		response, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
		ids = append(ids, response.ID.Bytes())
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID.Bytes()]
	}

	return orders, nil
}

func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var response OrderResponse
	var id, buyerID, deliveryAddressID uuid.UUID

	if err := scan(
		&id,
		&response.OrderNumber,
		&buyerID,
		&deliveryAddressID,
		&response.Status,
		&response.PaymentStatus,
		&response.Subtotal,
		&response.TaxAmount,
		&response.Total,
		&response.CreatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	var err error
	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if response.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if response.DeliveryAddressID, err = kernel.UUIDFromBytes(deliveryAddressID[:]); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			warehouse_id,
			quantity,
			unit_price,
			line_tax
		FROM order_items
		WHERE order_id IN ?
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]OrderItemResponse)
	for rows.Next() {
		var orderID, productID, warehouseID uuid.UUID
		var item OrderItemResponse

		if err = rows.Scan(&orderID, &productID, &warehouseID,
			&item.Quantity, &item.UnitPrice, &item.LineTax); err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}

	return items, rows.Err()
}
