package queries

import (
	"errors"

	"laundromart/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// commissionRatePercent is the platform's cut of delivered revenue, shown on
// the admin dashboard. Purely presentational: nothing is charged here.
const commissionRatePercent = 15

// GetOrderStatsQuery retrieves the aggregate counters behind the admin
// dashboard and the periodic stats job. The HTTP layer restricts it to
// admins; the stats job runs it without an actor.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for order statistics.
// This is a parameterless query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse aggregates the order book:
// per-status counts, total revenue of delivered orders, and the platform
// commission derived from it.
type GetOrderStatsQueryResponse struct {
	StatusCounts     map[string]int
	DeliveredRevenue int
	Commission       int
}
