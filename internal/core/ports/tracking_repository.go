package ports

import (
	"context"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
)

// TrackingRepository defines the persistence contract for tracking events.
// The log is append-only: events are never updated or deleted.
type TrackingRepository interface {
	// Add appends a tracking event.
	Add(ctx context.Context, event *order.TrackingEvent) error

	// GetAllForOrder retrieves an order's tracking events, oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.TrackingEvent, error)
}
