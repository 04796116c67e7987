package trackingrepo

import (
	"context"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
// The log is append-only; there are no update or delete operations.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Add appends a tracking event.
func (r *GormTrackingRepository) Add(ctx context.Context, event *order.TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves an order's tracking events, oldest first.
func (r *GormTrackingRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.TrackingEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	events := make([]*order.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		events = append(events, event)
	}

	return events, nil
}
