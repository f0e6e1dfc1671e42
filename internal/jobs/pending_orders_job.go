package jobs

import (
	"context"
	"log/slog"

	"baleconnect/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically reports how many orders are waiting for a
// farmer. The count gives operators a backlog signal without a metrics
// stack.
type PendingOrdersJob struct {
	handler queries.GetOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a job that watches the pending-order backlog.
// Uses GetOrdersQueryHandler to count orders once a minute.
func NewPendingOrdersJob(handler queries.GetOrdersQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the backlog watch to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		status := "pending"
		query := queries.NewGetOrdersQuery(queries.OrdersFilter{Status: &status})

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		if len(orders) > 0 {
			j.logger.InfoContext(ctx, "Orders waiting for a farmer", "count", len(orders))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the backlog watch.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
