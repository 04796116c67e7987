package jobs

import (
	"context"
	"log/slog"

	"laundromart/internal/core/application/usecases/queries"
	"laundromart/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically refreshes the prometheus gauges that describe
// the order book: order counts per status and revenue across delivered
// orders. The schedule is a six-field cron expression from configuration.
type OrderStatsJob struct {
	handler  queries.GetOrderStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates a job that refreshes order book gauges on the
// given cron schedule.
func NewOrderStatsJob(
	handler queries.GetOrderStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start begins the periodic refresh and primes the gauges once immediately
// so they are populated before the first tick.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.refresh(context.Background())
	})
	if err != nil {
		return err
	}

	j.refresh(context.Background())

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

func (j *OrderStatsJob) refresh(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order stats refresh failed", "error", err)
		return
	}

	// Reset first so statuses that dropped to zero disappear from the gauge.
	metrics.OrdersByStatus.Reset()
	for status, count := range stats.StatusCounts {
		metrics.OrdersByStatus.WithLabelValues(status).Set(float64(count))
	}
	metrics.DeliveredRevenue.Set(float64(stats.DeliveredRevenue))

	j.logger.DebugContext(ctx, "Order stats refreshed",
		"statuses", len(stats.StatusCounts),
		"delivered_revenue", stats.DeliveredRevenue)
}
