package ports

import (
	"context"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
)

// ProfileRepository defines the persistence contract for actor profiles.
// Profiles are written once at signup and read on every authenticated request.
type ProfileRepository interface {
	// Add persists a new profile.
	Add(ctx context.Context, aggregate *profile.Profile) error

	// Get retrieves a profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)
}
