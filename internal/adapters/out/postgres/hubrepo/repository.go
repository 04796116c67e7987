package hubrepo

import (
	"context"
	"errors"

	"laundromart/internal/core/domain/model/hub"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHubRepository implements HubRepository using GORM.
type GormHubRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHubRepository creates a new GORM hub repository.
func NewGormHubRepository(db *gorm.DB, tracker aggregateTracker) *GormHubRepository {
	return &GormHubRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hub to the database.
func (r *GormHubRepository) Add(ctx context.Context, aggregate *hub.Hub) error {
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

// Get retrieves a hub by ID.
func (r *GormHubRepository) Get(ctx context.Context, id kernel.UUID) (*hub.Hub, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HubDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hub", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every hub, sorted by name.
func (r *GormHubRepository) GetAll(ctx context.Context) ([]*hub.Hub, error) {
	var dtos []HubDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	hubs := make([]*hub.Hub, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		hubs = append(hubs, h)
	}

	return hubs, nil
}
