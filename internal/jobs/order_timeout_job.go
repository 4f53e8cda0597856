package jobs

import (
	"context"
	"log/slog"

	"takeout/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderTimeoutJob sweeps orders stuck in pending payment and cancels the
// expired ones. Runs once a minute.
type OrderTimeoutJob struct {
	handler commands.CancelTimedOutOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderTimeoutJob creates the pending-payment sweep job.
func NewOrderTimeoutJob(handler commands.CancelTimedOutOrdersCommandHandler, logger *slog.Logger) *OrderTimeoutJob {
	return &OrderTimeoutJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_timeout_job"),
	}
}

// Start begins the sweep at the top of every minute.
func (j *OrderTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCancelTimedOutOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order timeout job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *OrderTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order timeout job stopped")
}
