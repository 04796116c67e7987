package queries

import (
	"context"

	"laundromart/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates the order book in the database.
// Two grouped scans produce the dashboard numbers; no rows are materialized.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the statistics query.
// StatusCounts carries an entry per status present in the table; absent
// statuses are simply missing, not zero.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{
		StatusCounts: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}
		resp.StatusCounts[status] = count
	}
	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status = ?
	`, order.Delivered.String()).Row().Scan(&resp.DeliveredRevenue)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp.Commission = resp.DeliveredRevenue * commissionRatePercent / 100

	return resp, nil
}
