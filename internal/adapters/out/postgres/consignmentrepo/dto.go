// Package consignmentrepo provides data transfer objects and mapping functions
// for consignment persistence. The tracking trail is stored in a separate
// append-only table keyed by the event's position in the aggregate.
package consignmentrepo

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConsignmentDTO represents the database structure for persisting
// consignment aggregates.
type ConsignmentDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsignmentNumber   string    `gorm:"uniqueIndex"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID         uuid.UUID `gorm:"type:uuid;index"`
	PickupAddressID     uuid.UUID `gorm:"type:uuid"`
	DeliveryAddressID   uuid.UUID `gorm:"type:uuid"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"index"`
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
	Notes               string `gorm:"type:text"`
	CreatedAt           time.Time

	Events []EventDTO `gorm:"foreignKey:ConsignmentID;references:ID"`
}

// TableName specifies the database table name for consignment entities.
func (ConsignmentDTO) TableName() string {
	return "consignments"
}

// EventDTO represents one tracking event. Seq is the event's position in
// the aggregate's trail; rows are only ever inserted, never changed.
type EventDTO struct {
	ConsignmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq           int       `gorm:"primaryKey"`
	Status        string
	Notes         string `gorm:"type:text"`
	Latitude      *float64
	Longitude     *float64
	OccurredAt    time.Time
}

// TableName specifies the database table name for consignment tracking events.
func (EventDTO) TableName() string {
	return "consignment_events"
}

// fromDomain converts a consignment domain aggregate to its database representation.
func fromDomain(aggregate *consignment.Consignment) ConsignmentDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	events := make([]EventDTO, 0, len(aggregate.Events()))
	for seq, event := range aggregate.Events() {
		var latitude, longitude *float64
		if point := event.Point(); point != nil {
			lat, lon := point.Latitude(), point.Longitude()
			latitude, longitude = &lat, &lon
		}
		events = append(events, EventDTO{
			ConsignmentID: aggregate.ID().Bytes(),
			Seq:           seq,
			Status:        event.Status().String(),
			Notes:         event.Notes(),
			Latitude:      latitude,
			Longitude:     longitude,
			OccurredAt:    event.OccurredAt(),
		})
	}

	return ConsignmentDTO{
		ID:                  aggregate.ID().Bytes(),
		ConsignmentNumber:   aggregate.ConsignmentNumber(),
		OrderID:             aggregate.OrderID().Bytes(),
		WarehouseID:         aggregate.WarehouseID().Bytes(),
		PickupAddressID:     aggregate.PickupAddressID().Bytes(),
		DeliveryAddressID:   aggregate.DeliveryAddressID().Bytes(),
		DriverID:            driverID,
		Status:              aggregate.Status().String(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		Notes:               strings.Join(aggregate.Notes(), "\n"),
		CreatedAt:           aggregate.CreatedAt(),
		Events:              events,
	}
}

// toDomain converts a database DTO to a consignment domain aggregate.
// Events must already be ordered by Seq.
func toDomain(dto ConsignmentDTO) (*consignment.Consignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	pickupAddressID, err := kernel.UUIDFromBytes(dto.PickupAddressID[:])
	if err != nil {
		return nil, err
	}
	deliveryAddressID, err := kernel.UUIDFromBytes(dto.DeliveryAddressID[:])
	if err != nil {
		return nil, err
	}
	status, err := consignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &parsed
	}

	events := make([]consignment.Event, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	var notes []string
	if dto.Notes != "" {
		notes = strings.Split(dto.Notes, "\n")
	}

	return consignment.RestoreConsignment(id, dto.ConsignmentNumber, orderID,
		warehouseID, driverID, status, pickupAddressID, deliveryAddressID,
		dto.EstimatedDeliveryAt, dto.DeliveredAt, notes, events, dto.CreatedAt)
}

func eventToDomain(dto EventDTO) (consignment.Event, error) {
	status, err := consignment.StatusFromString(dto.Status)
	if err != nil {
		return consignment.Event{}, err
	}

	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return consignment.Event{}, pointErr
		}
		point = &p
	}

	return consignment.NewEvent(status, dto.Notes, point, dto.OccurredAt)
}
