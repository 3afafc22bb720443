package jobs

import (
	"fmt"
	"log/slog"

	"pressing/internal/core/ports"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs   []Job
	logger *slog.Logger
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the order counter and the metrics recorder to wire up the status report.
func NewJobManager(
	counter OrderCounter,
	metrics ports.MetricsRecorder,
	statusReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerWithJobs(logger, NewStatusReportJob(counter, metrics, statusReportSchedule, logger))
}

// NewJobManagerWithJobs manages the given jobs, started in order.
func NewJobManagerWithJobs(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}

	jm.logger.Info("All jobs started", "count", len(jm.jobs))
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
