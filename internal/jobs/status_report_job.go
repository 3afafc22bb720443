package jobs

import (
	"context"
	"log/slog"

	"pressing/internal/core/application/usecases/queries"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule runs the report at the top of every minute.
const DefaultStatusReportSchedule = "0 * * * * *"

// OrderCounter is the query the report runs.
type OrderCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int, error)
}

// StatusReportJob periodically counts orders per status, publishes the counts
// to the metrics recorder and logs them.
type StatusReportJob struct {
	counter  OrderCounter
	metrics  ports.MetricsRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusReportJob creates the report job. An empty schedule falls back to
// DefaultStatusReportSchedule. Schedules use the six-field cron syntax with
// seconds.
func NewStatusReportJob(
	counter OrderCounter,
	metrics ports.MetricsRecorder,
	schedule string,
	logger *slog.Logger,
) *StatusReportJob {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}
	return &StatusReportJob{
		counter:  counter,
		metrics:  metrics,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_report_job"),
	}
}

// Start schedules the report.
func (j *StatusReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report immediately.
func (j *StatusReportJob) Run(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
		return err
	}

	byCode := make(map[string]int, len(counts))
	attrs := make([]any, 0, 2*len(counts))
	for _, status := range order.AllStatuses() {
		byCode[status.String()] = counts[status]
		attrs = append(attrs, status.String(), counts[status])
	}

	j.metrics.OrdersByStatus(byCode)
	j.logger.InfoContext(ctx, "Orders by status", attrs...)
	return nil
}

// Stop stops the report job.
func (j *StatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}
