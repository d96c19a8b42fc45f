// Package inventoryrepo provides GORM-based persistence for the inventory
// ledger. The reserve, release and commit operations are single guarded
// UPDATE statements; the guard in the WHERE clause is what makes concurrent
// reservations of the same record safe.
package inventoryrepo

import (
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryRecordDTO represents the database structure for one ledger record.
type InventoryRecordDTO struct {
	WarehouseID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity         int
	ReservedQuantity int
}

// TableName specifies the database table name for inventory records.
func (InventoryRecordDTO) TableName() string {
	return "inventory_records"
}

// fromDomain converts an inventory record to its database representation.
func fromDomain(record *inventory.Record) InventoryRecordDTO {
	return InventoryRecordDTO{
		WarehouseID:      record.WarehouseID().Bytes(),
		ProductID:        record.ProductID().Bytes(),
		Quantity:         record.Quantity(),
		ReservedQuantity: record.ReservedQuantity(),
	}
}

// toDomain converts a database DTO to an inventory record.
func toDomain(dto InventoryRecordDTO) (*inventory.Record, error) {
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreRecord(warehouseID, productID, dto.Quantity, dto.ReservedQuantity)
}
