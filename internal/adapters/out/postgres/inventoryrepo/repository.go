package inventoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Get retrieves the record for a (warehouse, product) pair.
func (r *GormInventoryRepository) Get(ctx context.Context, warehouseID, productID kernel.UUID) (*inventory.Record, error) {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto InventoryRecordDTO
	err := r.db.WithContext(ctx).First(&dto,
		"warehouse_id = ? AND product_id = ?",
		warehouseID.Bytes(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory record", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByWarehouse retrieves all records for a warehouse.
func (r *GormInventoryRepository) GetByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*inventory.Record, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []InventoryRecordDTO
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ?", warehouseID.Bytes()).
		Order("product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*inventory.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, record)
	}

	return records, nil
}

// Upsert creates the record or replaces its on-hand quantity, preserving
// the reserved quantity on update. The on-hand amount may never drop below
// what is currently reserved, so the conflict update carries the same guard
// as the atomic mutations.
func (r *GormInventoryRepository) Upsert(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("excluded.quantity >= inventory_records.reserved_quantity"),
			}},
		}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("inventory record", record.ProductID().String())
	}

	return nil
}

// Reserve atomically moves quantity from available to reserved. The
// availability guard lives in the WHERE clause so two concurrent
// reservations can never both pass a stale check.
func (r *GormInventoryRepository) Reserve(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error {
	if err := validateMutation(warehouseID, productID, quantity); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET reserved_quantity = reserved_quantity + ?
		WHERE warehouse_id = ? AND product_id = ?
		  AND quantity - reserved_quantity >= ?
	`, quantity, warehouseID.Bytes(), productID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInsufficientInventoryError(
			warehouseID.String(), productID.String(), quantity)
	}

	return nil
}

// Release atomically returns reserved quantity to available.
func (r *GormInventoryRepository) Release(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error {
	if err := validateMutation(warehouseID, productID, quantity); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET reserved_quantity = reserved_quantity - ?
		WHERE warehouse_id = ? AND product_id = ?
		  AND reserved_quantity >= ?
	`, quantity, warehouseID.Bytes(), productID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.mutationFailure(ctx, warehouseID, productID, "release quantity")
	}

	return nil
}

// Commit atomically consumes reserved quantity, decrementing both the
// on-hand and the reserved amounts.
func (r *GormInventoryRepository) Commit(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error {
	if err := validateMutation(warehouseID, productID, quantity); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET quantity = quantity - ?,
		    reserved_quantity = reserved_quantity - ?
		WHERE warehouse_id = ? AND product_id = ?
		  AND reserved_quantity >= ?
	`, quantity, quantity, warehouseID.Bytes(), productID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.mutationFailure(ctx, warehouseID, productID, "commit quantity")
	}

	return nil
}

// AdjustStock atomically adds delta to on-hand quantity. A negative delta
// may not take the on-hand amount below what is still reserved.
func (r *GormInventoryRepository) AdjustStock(ctx context.Context, warehouseID, productID kernel.UUID, delta int) error {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET quantity = quantity + ?
		WHERE warehouse_id = ? AND product_id = ?
		  AND quantity + ? >= reserved_quantity
	`, delta, warehouseID.Bytes(), productID.Bytes(), delta)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.mutationFailure(ctx, warehouseID, productID, "stock delta")
	}

	return nil
}

// mutationFailure resolves why a guarded update matched zero rows: either
// the record does not exist, or the guard rejected the quantity.
func (r *GormInventoryRepository) mutationFailure(
	ctx context.Context,
	warehouseID, productID kernel.UUID,
	param string,
) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&InventoryRecordDTO{}).
		Where("warehouse_id = ? AND product_id = ?",
			warehouseID.Bytes(), productID.Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("inventory record", productID.String())
	}

	return errs.NewValueIsInvalidError(param)
}

func validateMutation(warehouseID, productID kernel.UUID, quantity int) error {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	return nil
}
