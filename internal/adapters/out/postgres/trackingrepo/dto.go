// Package trackingrepo persists the append-only order tracking log.
package trackingrepo

import (
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for tracking events.
// Latitude and longitude are nullable; an event without a position snapshot
// stores NULL in both.
type TrackingEventDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	DriverID      uuid.UUID `gorm:"type:uuid"`
	StatusMessage string
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "order_tracking"
}

func fromDomain(event *order.TrackingEvent) TrackingEventDTO {
	dto := TrackingEventDTO{
		ID:            event.ID().Bytes(),
		OrderID:       event.OrderID().Bytes(),
		DriverID:      event.DriverID().Bytes(),
		StatusMessage: event.StatusMessage(),
		CreatedAt:     event.CreatedAt(),
	}

	if loc := event.Location(); loc != nil {
		lat := loc.Latitude()
		lon := loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

func toDomain(dto TrackingEventDTO) (*order.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return order.RestoreTrackingEvent(id, orderID, driverID, dto.StatusMessage, location, dto.CreatedAt)
}
