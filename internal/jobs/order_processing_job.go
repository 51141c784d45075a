package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/ports"
	"orderflow/internal/observability/metrics"

	"github.com/robfig/cron/v3"
)

// OrderProcessingJob runs the order processor on a schedule. Each run
// discovers the users that have unprocessed orders and processes one
// batch per user.
type OrderProcessingJob struct {
	handler  commands.ProcessUserOrdersCommandHandler
	orders   ports.OrderRepository
	pipeline *metrics.PipelineMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderProcessingJob creates a scheduled job that processes pending
// orders. The schedule is a six-field cron expression with seconds.
func NewOrderProcessingJob(
	handler commands.ProcessUserOrdersCommandHandler,
	orders ports.OrderRepository,
	pipeline *metrics.PipelineMetrics,
	schedule string,
	logger *slog.Logger,
) *OrderProcessingJob {
	return &OrderProcessingJob{
		handler:  handler,
		orders:   orders,
		pipeline: pipeline,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_processing_job"),
	}
}

// Start begins the order processing job on its schedule.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order processing job.
func (j *OrderProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}

func (j *OrderProcessingJob) run() {
	ctx := context.Background()

	userIDs, err := j.orders.GetUsersWithPendingOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to discover users with pending orders", "error", err)
		return
	}

	for _, userID := range userIDs {
		command, err := commands.NewProcessUserOrdersCommand(userID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to create process command", "user_id", userID, "error", err)
			continue
		}

		started := time.Now()
		processed, err := j.handler.Handle(ctx, command)
		j.pipeline.ObserveBatch(processed, time.Since(started), err)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order processing batch failed", "user_id", userID, "error", err)
			continue
		}
		j.logger.InfoContext(ctx, "Order processing batch finished", "user_id", userID, "orders", len(processed))
	}
}
