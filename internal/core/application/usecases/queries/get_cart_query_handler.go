package queries

import (
	"context"
	"math"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves cart contents from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart retrieval queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query, oldest line first.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	if err := accesspolicy.CanAccessCart(query.Actor(), query.BuyerID()); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		BuyerID: query.BuyerID(),
		Lines:   make([]CartLineResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			warehouse_id,
			quantity,
			unit_price
		FROM cart_items
		WHERE buyer_id = ?
		ORDER BY added_at
	`, query.BuyerID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, productID, warehouseID uuid.UUID
		var line CartLineResponse

		if err = rows.Scan(&id, &productID, &warehouseID, &line.Quantity, &line.UnitPrice); err != nil {
			return GetCartQueryResponse{}, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetCartQueryResponse{}, err
		}
		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}
		if line.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}

		line.LineTotal = math.Round(float64(line.Quantity)*line.UnitPrice*100) / 100
		response.Subtotal += line.LineTotal
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response.Subtotal = math.Round(response.Subtotal*100) / 100
	return response, nil
}
