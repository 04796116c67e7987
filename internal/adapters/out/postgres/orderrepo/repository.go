package orderrepo

import (
	"context"
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Status transitions never use a plain UPDATE: every write carries the status
// the caller observed as a WHERE guard, so the row count tells us whether the
// caller acted on fresh state. This is what makes N concurrent claims resolve
// to exactly one winner without explicit locking.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateWithExpectedStatus saves an order only if the stored row still holds
// expectedStatus. A zero row count means another writer moved the order first;
// the caller's view is stale and the write is refused.
func (r *GormOrderRepository) UpdateWithExpectedStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrConcurrentModification
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Claim persists a driver assignment as one conditional write: the row must
// still be approved with no driver. The database serializes concurrent claims
// on the row lock, so exactly one UPDATE matches and every later one sees
// driver_id already set and matches nothing.
func (r *GormOrderRepository) Claim(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Driver() == nil {
		return errs.NewValueIsRequiredError("driverId")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", dto.ID, order.Approved.String()).
		Updates(map[string]any{
			"driver_id":  dto.DriverID,
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewClaimConflictError(aggregate.ID().String(), aggregate.Driver().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
