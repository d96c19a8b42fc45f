// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string form so the read path and ad-hoc SQL
// stay legible. Notes are flattened into one newline-joined text column.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber       string    `gorm:"uniqueIndex"`
	BuyerID           uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddressID uuid.UUID `gorm:"type:uuid"`
	Status            string    `gorm:"index"`
	PaymentStatus     string
	Subtotal          float64
	TaxAmount         float64
	Total             float64
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Lines are immutable once the
// order exists, so updates never touch this table.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity    int
	UnitPrice   float64
	LineTax     float64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			WarehouseID: item.WarehouseID().Bytes(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTax:     item.LineTax(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderNumber:       aggregate.OrderNumber(),
		BuyerID:           aggregate.BuyerID().Bytes(),
		DeliveryAddressID: aggregate.DeliveryAddressID().Bytes(),
		Status:            aggregate.Status().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		Subtotal:          aggregate.Subtotal(),
		TaxAmount:         aggregate.TaxAmount(),
		Total:             aggregate.Total(),
		Notes:             strings.Join(aggregate.Notes(), "\n"),
		CreatedAt:         aggregate.CreatedAt(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	deliveryAddressID, err := kernel.UUIDFromBytes(dto.DeliveryAddressID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var notes []string
	if dto.Notes != "" {
		notes = strings.Split(dto.Notes, "\n")
	}

	return order.RestoreOrder(id, dto.OrderNumber, buyerID, deliveryAddressID,
		items, status, paymentStatus,
		dto.Subtotal, dto.TaxAmount, dto.Total, notes, dto.CreatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, warehouseID, dto.Quantity, dto.UnitPrice, dto.LineTax)
}
