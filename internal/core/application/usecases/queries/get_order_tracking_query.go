package queries

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/pkg/guard"
)

var (
	ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
		"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
	)
)

// GetOrderTrackingQuery retrieves the tracking log of one order, oldest first.
// Visibility follows the order itself: the owning customer, the assigned
// driver, and admins may read it.
type GetOrderTrackingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    profile.Role

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for an order's tracking log.
func NewGetOrderTrackingQuery(
	orderID kernel.UUID,
	actorID kernel.UUID,
	role profile.Role,
) (GetOrderTrackingQuery, error) {
	query := GetOrderTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setActorID(actorID),
		query.setRole(role),
	); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTrackingQueryIsNotConstructed if validation fails.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the acting profile's identifier.
func (q GetOrderTrackingQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns the acting profile's role.
func (q GetOrderTrackingQuery) Role() profile.Role {
	return q.role
}

func (q *GetOrderTrackingQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderTrackingQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrderTrackingQuery) setRole(role profile.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

// GetOrderTrackingQueryResponse is the flat read model of one tracking event.
// Location is nil when the driver reported no position.
type GetOrderTrackingQueryResponse struct {
	ID            kernel.UUID
	DriverID      kernel.UUID
	StatusMessage string
	Location      *kernel.Location
	CreatedAt     time.Time
}
