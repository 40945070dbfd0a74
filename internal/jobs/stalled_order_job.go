package jobs

import (
	"context"
	"log/slog"
	"time"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// stalledOrdersHandler is the query side the job depends on.
type stalledOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetStalledOrdersQuery) ([]queries.GetStalledOrdersQueryResponse, error)
}

// StalledOrderJob periodically sweeps for uncompleted orders whose latest
// status change is older than the configured threshold and logs them for
// the dispatchers. Runs every ten minutes.
type StalledOrderJob struct {
	handler      stalledOrdersHandler
	stalledAfter time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewStalledOrderJob creates a job flagging orders with no status activity
// for longer than stalledAfter.
func NewStalledOrderJob(
	handler stalledOrdersHandler,
	stalledAfter time.Duration,
	logger *slog.Logger,
) *StalledOrderJob {
	return &StalledOrderJob{
		handler:      handler,
		stalledAfter: stalledAfter,
		cron:         cron.New(),
		logger:       logger.With("component", "stalled_order_job"),
	}
}

// Start begins the stalled order sweep on a ten minute schedule.
func (j *StalledOrderJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled order job started",
		"interval", "10m", "stalledAfter", j.stalledAfter.String())
	return nil
}

// Stop stops the stalled order job.
func (j *StalledOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled order job stopped")
}

func (j *StalledOrderJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetStalledOrdersQuery(time.Now().UTC().Add(-j.stalledAfter))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stalled order sweep failed to build query", "error", err)
		return
	}

	stalled, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stalled order sweep failed", "error", err)
		return
	}

	metrics.StalledOrders.Set(float64(len(stalled)))

	for _, o := range stalled {
		j.logger.WarnContext(ctx, "Order stalled",
			"orderId", o.ID.String(),
			"customer", o.Customer,
			"status", o.Status.String(),
			"lastActivity", o.LastActivity,
		)
	}
}
