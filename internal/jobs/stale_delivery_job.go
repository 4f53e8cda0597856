package jobs

import (
	"context"
	"log/slog"

	"takeout/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDeliveryJob completes orders that have been out for delivery past the
// configured age. Runs nightly, after the shop has closed.
type StaleDeliveryJob struct {
	handler commands.CompleteStaleDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleDeliveryJob creates the nightly delivery cleanup job.
func NewStaleDeliveryJob(handler commands.CompleteStaleDeliveriesCommandHandler, logger *slog.Logger) *StaleDeliveryJob {
	return &StaleDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_delivery_job"),
	}
}

// Start begins the cleanup at 01:00 every night.
func (j *StaleDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 1 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteStaleDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery cleanup failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale delivery job started (running nightly at 01:00)")
	return nil
}

// Stop stops the cleanup.
func (j *StaleDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale delivery job stopped")
}
