// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL and return flat read models, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/pkg/guard"
)

var (
	ErrListOrdersForActorQueryIsNotConstructed = errors.New(
		"ListOrdersForActorQuery must be created via NewListOrdersForActorQuery constructor",
	)
)

// ListOrdersForActorQuery retrieves the orders visible to an acting profile.
// Visibility depends on the role:
//
//   - customer: only their own orders
//   - driver: the claimable pool (approved, no driver) plus orders assigned to them
//   - admin: every order
//
// An optional status filter narrows the result within that visibility window.
//
// Example:
//
//	query, err := NewListOrdersForActorQuery(driverID, profile.Driver, nil)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders visible\n", len(orders))
type ListOrdersForActorQuery struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	role         profile.Role
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersForActorQuery creates a query scoped to an acting profile.
// statusFilter may be nil to list all visible orders regardless of status.
func NewListOrdersForActorQuery(
	actorID kernel.UUID,
	role profile.Role,
	statusFilter *order.Status,
) (ListOrdersForActorQuery, error) {
	query := ListOrdersForActorQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActorID(actorID),
		query.setRole(role),
		query.setStatusFilter(statusFilter),
	); err != nil {
		return ListOrdersForActorQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersForActorQueryIsNotConstructed if validation fails.
func (q ListOrdersForActorQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersForActorQueryIsNotConstructed)
}

// ActorID returns the acting profile's identifier.
func (q ListOrdersForActorQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns the acting profile's role.
func (q ListOrdersForActorQuery) Role() profile.Role {
	return q.role
}

// StatusFilter returns the optional status narrowing, or nil.
func (q ListOrdersForActorQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

func (q *ListOrdersForActorQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *ListOrdersForActorQuery) setRole(role profile.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

func (q *ListOrdersForActorQuery) setStatusFilter(statusFilter *order.Status) error {
	if statusFilter == nil {
		return nil
	}
	if err := statusFilter.Validate(); err != nil {
		return err
	}

	q.statusFilter = statusFilter
	return nil
}

// ListOrdersForActorQueryResponse is the flat read model of one order row.
type ListOrdersForActorQueryResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	HubID               kernel.UUID
	DriverID            *kernel.UUID
	ServiceType         order.ServiceType
	GarmentCount        int
	PickupAddress       string
	SpecialInstructions string
	TotalAmount         int
	Status              order.Status
	AdminApprovedAt     *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
