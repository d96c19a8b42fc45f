package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// Request bodies.

// AddCartItemRequest adds a product line to the caller's cart.
type AddCartItemRequest struct {
	BuyerID     string `json:"buyerId"`
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int    `json:"quantity"`
}

// UpdateCartItemRequest changes the quantity of one cart line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CreateOrderRequest turns the buyer's cart into an order.
type CreateOrderRequest struct {
	BuyerID           string `json:"buyerId"`
	DeliveryAddressID string `json:"deliveryAddressId"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// UpdatePaymentStatusRequest records the payment collaborator's verdict.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// CreateConsignmentRequest splits part of an order into a shipment.
type CreateConsignmentRequest struct {
	OrderID             string     `json:"orderId"`
	WarehouseID         string     `json:"warehouseId"`
	PickupAddressID     string     `json:"pickupAddressId"`
	DriverID            *string    `json:"driverId,omitempty"`
	EstimatedDeliveryAt *time.Time `json:"estimatedDeliveryAt,omitempty"`
}

// UpdateConsignmentRequest progresses a consignment, annotates it, or both.
type UpdateConsignmentRequest struct {
	Status              string     `json:"status,omitempty"`
	Note                string     `json:"note,omitempty"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	DeliveredAt         *time.Time `json:"deliveredAt,omitempty"`
	EstimatedDeliveryAt *time.Time `json:"estimatedDeliveryAt,omitempty"`
}

// AssignDriverRequest assigns a driver to a pending consignment.
type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// DriverLocationRequest is one GPS ping from a driver's device.
type DriverLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SetStockRequest sets the on-hand quantity for a ledger record.
type SetStockRequest struct {
	Quantity int `json:"quantity"`
}

// Response bodies.

// CartLine is one cart line in responses.
type CartLine struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	WarehouseID string  `json:"warehouseId"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// Cart is the cart read model in responses.
type Cart struct {
	BuyerID  string     `json:"buyerId"`
	Lines    []CartLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
}

// OrderItem is one order line in responses.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	WarehouseID string  `json:"warehouseId"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTax     float64 `json:"lineTax"`
}

// Order is the order read model in responses.
type Order struct {
	ID                string      `json:"id"`
	OrderNumber       string      `json:"orderNumber"`
	BuyerID           string      `json:"buyerId"`
	DeliveryAddressID string      `json:"deliveryAddressId"`
	Status            string      `json:"status"`
	PaymentStatus     string      `json:"paymentStatus"`
	Subtotal          float64     `json:"subtotal"`
	TaxAmount         float64     `json:"taxAmount"`
	Total             float64     `json:"total"`
	Items             []OrderItem `json:"items"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// ConsignmentEvent is one tracking event in responses.
type ConsignmentEvent struct {
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Consignment is the consignment read model in responses.
type Consignment struct {
	ID                  string             `json:"id"`
	ConsignmentNumber   string             `json:"consignmentNumber"`
	OrderID             string             `json:"orderId"`
	WarehouseID         string             `json:"warehouseId"`
	PickupAddressID     string             `json:"pickupAddressId"`
	DeliveryAddressID   string             `json:"deliveryAddressId"`
	DriverID            *string            `json:"driverId,omitempty"`
	Status              string             `json:"status"`
	EstimatedDeliveryAt *time.Time         `json:"estimatedDeliveryAt,omitempty"`
	DeliveredAt         *time.Time         `json:"deliveredAt,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	Events              []ConsignmentEvent `json:"events,omitempty"`
}

// InventoryRecord is one ledger record in responses.
type InventoryRecord struct {
	ProductID        string `json:"productId"`
	WarehouseID      string `json:"warehouseId"`
	Quantity         int    `json:"quantity"`
	ReservedQuantity int    `json:"reservedQuantity"`
	Available        int    `json:"available"`
}

func cartToResponse(model queries.GetCartQueryResponse) Cart {
	lines := make([]CartLine, 0, len(model.Lines))
	for _, line := range model.Lines {
		lines = append(lines, CartLine{
			ID:          line.ID.String(),
			ProductID:   line.ProductID.String(),
			WarehouseID: line.WarehouseID.String(),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}

	return Cart{
		BuyerID:  model.BuyerID.String(),
		Lines:    lines,
		Subtotal: model.Subtotal,
	}
}

func orderToResponse(model queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID.String(),
			WarehouseID: item.WarehouseID.String(),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTax:     item.LineTax,
		})
	}

	return Order{
		ID:                model.ID.String(),
		OrderNumber:       model.OrderNumber,
		BuyerID:           model.BuyerID.String(),
		DeliveryAddressID: model.DeliveryAddressID.String(),
		Status:            model.Status,
		PaymentStatus:     model.PaymentStatus,
		Subtotal:          model.Subtotal,
		TaxAmount:         model.TaxAmount,
		Total:             model.Total,
		Items:             items,
		CreatedAt:         model.CreatedAt,
	}
}

func consignmentToResponse(model queries.ConsignmentResponse) Consignment {
	events := make([]ConsignmentEvent, 0, len(model.Events))
	for _, event := range model.Events {
		events = append(events, ConsignmentEvent{
			Status:     event.Status,
			Notes:      event.Notes,
			Latitude:   event.Latitude,
			Longitude:  event.Longitude,
			OccurredAt: event.OccurredAt,
		})
	}

	var driverID *string
	if model.DriverID != nil {
		s := model.DriverID.String()
		driverID = &s
	}

	return Consignment{
		ID:                  model.ID.String(),
		ConsignmentNumber:   model.ConsignmentNumber,
		OrderID:             model.OrderID.String(),
		WarehouseID:         model.WarehouseID.String(),
		PickupAddressID:     model.PickupAddressID.String(),
		DeliveryAddressID:   model.DeliveryAddressID.String(),
		DriverID:            driverID,
		Status:              model.Status,
		EstimatedDeliveryAt: model.EstimatedDeliveryAt,
		DeliveredAt:         model.DeliveredAt,
		CreatedAt:           model.CreatedAt,
		Events:              events,
	}
}

func inventoryToResponse(model queries.InventoryRecordResponse) InventoryRecord {
	return InventoryRecord{
		ProductID:        model.ProductID.String(),
		WarehouseID:      model.WarehouseID.String(),
		Quantity:         model.Quantity,
		ReservedQuantity: model.ReservedQuantity,
		Available:        model.Available,
	}
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
