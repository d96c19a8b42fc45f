// Package cartrepo provides data transfer objects and mapping functions for
// cart line persistence. Cart lines are flat rows; there is no cart header,
// a buyer's cart is simply the set of their lines.
package cartrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents the database structure for persisting cart lines.
// UnitPrice is the snapshot taken when the line was added.
type CartItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID     uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_cart_line"`
	ProductID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_line"`
	WarehouseID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_line"`
	Quantity    int
	UnitPrice   float64
	AddedAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart line to its database representation.
func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:          item.ID().Bytes(),
		BuyerID:     item.BuyerID().Bytes(),
		ProductID:   item.ProductID().Bytes(),
		WarehouseID: item.WarehouseID().Bytes(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice(),
		AddedAt:     item.AddedAt(),
	}
}

// toDomain converts a database DTO to a cart line.
func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return cart.NewItem(id, buyerID, productID, warehouseID,
		dto.Quantity, dto.UnitPrice, dto.AddedAt)
}
