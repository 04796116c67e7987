package ports

import (
	"context"

	"laundromart/internal/core/domain/model/hub"
	"laundromart/internal/core/domain/model/kernel"
)

// HubRepository defines the persistence contract for laundry hubs.
type HubRepository interface {
	// Add persists a new hub.
	Add(ctx context.Context, aggregate *hub.Hub) error

	// Get retrieves a hub by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*hub.Hub, error)

	// GetAll retrieves every registered hub.
	GetAll(ctx context.Context) ([]*hub.Hub, error)
}
