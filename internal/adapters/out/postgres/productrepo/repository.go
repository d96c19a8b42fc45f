// Package productrepo provides read access to the product catalog table.
package productrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	UnitPrice   float64
	MinOrderQty int
	IsActive    bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// GormCatalog implements the Catalog port over the products table.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a new GORM-backed catalog.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetProduct retrieves a product by its identifier.
func (c *GormCatalog) GetProduct(ctx context.Context, productID kernel.UUID) (*ports.Product, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", productID.String())
		}
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Product{
		ID:          id,
		Name:        dto.Name,
		UnitPrice:   dto.UnitPrice,
		MinOrderQty: dto.MinOrderQty,
		IsActive:    dto.IsActive,
	}, nil
}
