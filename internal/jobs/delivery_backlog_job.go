package jobs

import (
	"context"
	"log/slog"

	"pizzadelivery/internal/core/domain/model/delivery"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DeliveryBacklogJob periodically reports deliveries that are still waiting
// for an agent. It is observational: nothing is mutated, operators watch the
// log stream for a backlog that keeps growing.
type DeliveryBacklogJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDeliveryBacklogJob creates the backlog monitor. The sweep runs every
// thirty seconds.
func NewDeliveryBacklogJob(db *gorm.DB, logger *slog.Logger) *DeliveryBacklogJob {
	return &DeliveryBacklogJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "delivery_backlog_job"),
	}
}

// Start schedules the backlog sweep.
func (j *DeliveryBacklogJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		var pending int64
		result := j.db.WithContext(ctx).Raw(`
			SELECT count(*)
			FROM deliveries
			WHERE status = ? AND agent_id IS NULL`,
			int(delivery.StatusPending),
		).Scan(&pending)
		if result.Error != nil {
			j.logger.ErrorContext(ctx, "Delivery backlog sweep failed", "error", result.Error)
			return
		}

		if pending > 0 {
			j.logger.WarnContext(ctx, "Deliveries waiting for an agent", "count", pending)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery backlog job started (running every 30 seconds)")
	return nil
}

// Stop stops the backlog sweep.
func (j *DeliveryBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery backlog job stopped")
}
