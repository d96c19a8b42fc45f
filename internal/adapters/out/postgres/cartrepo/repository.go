package cartrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a new cart line.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing cart line.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&CartItemDTO{}).
		Where("id = ?", dto.ID).
		Update("quantity", dto.Quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", item.ID().String())
	}

	return nil
}

// Get retrieves a cart line by ID.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBuyer retrieves all of a buyer's cart lines, oldest first.
func (r *GormCartRepository) GetByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*cart.Item, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID.Bytes()).
		Order("added_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, item)
	}

	return items, nil
}

// FindLine retrieves the line matching the (buyer, product, warehouse)
// triple, or ObjectNotFound when the buyer has no such line.
func (r *GormCartRepository) FindLine(ctx context.Context, buyerID, productID, warehouseID kernel.UUID) (*cart.Item, error) {
	if err := errors.Join(
		buyerID.Validate(),
		productID.Validate(),
		warehouseID.Validate(),
	); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).First(&dto,
		"buyer_id = ? AND product_id = ? AND warehouse_id = ?",
		buyerID.Bytes(), productID.Bytes(), warehouseID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart line", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a cart line by ID.
func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", id.String())
	}

	return nil
}

// DeleteByBuyer removes all of a buyer's cart lines.
func (r *GormCartRepository) DeleteByBuyer(ctx context.Context, buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartItemDTO{}, "buyer_id = ?", buyerID.Bytes()).Error
}

// DeleteOlderThan removes lines added before the cutoff and reports how
// many were removed. Used by the abandoned-cart cleanup job.
func (r *GormCartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "added_at < ?", cutoff)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
