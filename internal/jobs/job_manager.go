// Package jobs provides scheduled background tasks for the delivery service,
// built on github.com/robfig/cron/v3. Jobs are managed through JobManager,
// which starts and stops them as a group.
package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates the delivery service's scheduled jobs.
type JobManager struct {
	deliveryBacklogJob *DeliveryBacklogJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(db *gorm.DB, logger *slog.Logger) *JobManager {
	return &JobManager{
		deliveryBacklogJob: NewDeliveryBacklogJob(db, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery backlog job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryBacklogJob.Stop()
}
