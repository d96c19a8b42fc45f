package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// GetOrderByNumberQueryHandler resolves an order number to the order read
// model. Unlike the id-based queries it goes through the order repository,
// which owns the number lookup. The same fetch-then-authorize order as the
// id query applies.
type GetOrderByNumberQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderByNumberQueryHandler creates a handler for order-number lookups.
func NewGetOrderByNumberQueryHandler(orders ports.OrderRepository) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{orders: orders}
}

// Handle executes the order-number lookup.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orders.GetByNumber(ctx, query.OrderNumber())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = accesspolicy.CanViewOrder(
		query.Actor(), aggregate.BuyerID(), aggregate.WarehouseIDs()); err != nil {
		return OrderResponse{}, err
	}

	return orderResponseFromAggregate(aggregate), nil
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID(),
			WarehouseID: item.WarehouseID(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTax:     item.LineTax(),
		})
	}

	return OrderResponse{
		ID:                aggregate.ID(),
		OrderNumber:       aggregate.OrderNumber(),
		BuyerID:           aggregate.BuyerID(),
		DeliveryAddressID: aggregate.DeliveryAddressID(),
		Status:            aggregate.Status().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		Subtotal:          aggregate.Subtotal(),
		TaxAmount:         aggregate.TaxAmount(),
		Total:             aggregate.Total(),
		Items:             items,
		CreatedAt:         aggregate.CreatedAt(),
	}
}
