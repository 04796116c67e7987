package queries

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/guard"
)

var (
	ErrGetHubsQueryIsNotConstructed = errors.New(
		"GetHubsQuery must be created via NewGetHubsQuery constructor",
	)
)

// GetHubsQuery retrieves every laundry hub. Hubs are public catalog data, so
// the query carries no actor.
type GetHubsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHubsQuery creates a query to retrieve all hubs.
// This is a parameterless query.
func NewGetHubsQuery() GetHubsQuery {
	return GetHubsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetHubsQueryIsNotConstructed if validation fails.
func (q GetHubsQuery) Validate() error {
	return q.guard.Validate(ErrGetHubsQueryIsNotConstructed)
}

// GetHubsQueryResponse is the flat read model of one hub row.
type GetHubsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Address  string
	Phone    string
	Location kernel.Location
	Services []order.ServiceType
}
