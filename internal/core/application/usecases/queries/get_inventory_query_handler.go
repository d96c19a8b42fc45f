package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryQueryHandler lists a warehouse's ledger records.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for inventory listing queries.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the inventory listing query.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]InventoryRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := accesspolicy.CanViewInventory(query.Actor(), query.WarehouseID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			warehouse_id,
			quantity,
			reserved_quantity
		FROM inventory_records
		WHERE warehouse_id = ?
		ORDER BY product_id
	`, query.WarehouseID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]InventoryRecordResponse, 0)
	for rows.Next() {
		var productID, warehouseID uuid.UUID
		var record InventoryRecordResponse

		if err = rows.Scan(&productID, &warehouseID,
			&record.Quantity, &record.ReservedQuantity); err != nil {
			return nil, err
		}

		if record.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if record.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
			return nil, err
		}
		record.Available = record.Quantity - record.ReservedQuantity

		records = append(records, record)
	}

	return records, rows.Err()
}
