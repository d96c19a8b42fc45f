package consignmentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormConsignmentRepository implements ConsignmentRepository using GORM.
type GormConsignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConsignmentRepository creates a new GORM consignment repository.
func NewGormConsignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormConsignmentRepository {
	return &GormConsignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new consignment with its initial tracking event.
func (r *GormConsignmentRepository) Add(ctx context.Context, aggregate *consignment.Consignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing consignment and appends new events.
// Events carry their position as part of the key, so re-inserting the
// whole trail with a do-nothing conflict clause keeps it append-only.
func (r *GormConsignmentRepository) Update(ctx context.Context, aggregate *consignment.Consignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ConsignmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver_id":             dto.DriverID,
			"status":                dto.Status,
			"estimated_delivery_at": dto.EstimatedDeliveryAt,
			"delivered_at":          dto.DeliveredAt,
			"notes":                 dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consignment", aggregate.ID().String())
	}

	if len(dto.Events) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Events).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a consignment by ID with its event trail.
func (r *GormConsignmentRepository) Get(ctx context.Context, id kernel.UUID) (*consignment.Consignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConsignmentDTO
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all consignments belonging to an order.
func (r *GormConsignmentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*consignment.Consignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "order_id = ?", orderID.Bytes())
}

// GetActiveByDriver retrieves a driver's consignments that are not in a
// terminal status.
func (r *GormConsignmentRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*consignment.Consignment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "driver_id = ? AND status NOT IN ?",
		driverID.Bytes(),
		[]string{consignment.StatusDelivered.String(), consignment.StatusCancelled.String()})
}

// ExistsForOrderAndWarehouse reports whether a non-cancelled consignment
// already covers the (order, warehouse) pair.
func (r *GormConsignmentRepository) ExistsForOrderAndWarehouse(ctx context.Context, orderID, warehouseID kernel.UUID) (bool, error) {
	if err := errors.Join(orderID.Validate(), warehouseID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ConsignmentDTO{}).
		Where("order_id = ? AND warehouse_id = ? AND status <> ?",
			orderID.Bytes(), warehouseID.Bytes(), consignment.StatusCancelled.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormConsignmentRepository) findAll(ctx context.Context, condition string, args ...any) ([]*consignment.Consignment, error) {
	var dtos []ConsignmentDTO
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where(condition, args...).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	consignments := make([]*consignment.Consignment, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		consignments = append(consignments, c)
	}

	return consignments, nil
}
