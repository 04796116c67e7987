package ports

import (
	"context"
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
)

// ErrConcurrentModification is returned by conditional writes when the row no
// longer matches the expected pre-write state: another actor moved the order
// between this caller's read and write. The store's conditional update is the
// sole arbiter of who moved first.
var ErrConcurrentModification = errors.New("order was concurrently modified")

// OrderRepository defines the persistence contract for order aggregates.
// All status mutations go through conditional writes so that no transition
// can be applied on top of a state the caller never observed.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateWithExpectedStatus persists the aggregate only if the stored row
	// is still in expectedStatus. Returns ErrConcurrentModification when the
	// guard fails, leaving the row untouched.
	UpdateWithExpectedStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Claim persists a driver assignment as a single atomic check-and-set:
	// the write applies only if the stored row is still approved with no
	// driver. Exactly one of N concurrent claimants succeeds; the rest get
	// a ClaimConflictError.
	Claim(ctx context.Context, aggregate *order.Order) error
}
