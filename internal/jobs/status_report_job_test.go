package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"pressing/internal/core/application/usecases/queries"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/ports"
	"pressing/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderCounter struct {
	mock.Mock
}

func (m *MockOrderCounter) Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int), args.Error(1)
}

type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) TransitionApplied(from, to string) {
	m.Called(from, to)
}

func (m *MockMetricsRecorder) NotificationFailed(kind ports.NotificationKind) {
	m.Called(kind)
}

func (m *MockMetricsRecorder) OrdersByStatus(counts map[string]int) {
	m.Called(counts)
}

func TestStatusReportJob_Run(t *testing.T) {
	t.Run("should publish counts for every status", func(t *testing.T) {
		counter := new(MockOrderCounter)
		metrics := new(MockMetricsRecorder)
		var logs bytes.Buffer
		job := jobs.NewStatusReportJob(counter, metrics, "", slog.New(slog.NewJSONHandler(&logs, nil)))

		counter.On("Handle", mock.Anything, mock.AnythingOfType("queries.CountOrdersByStatusQuery")).
			Return(map[order.Status]int{order.Pending: 3, order.Ready: 1}, nil)
		metrics.On("OrdersByStatus", map[string]int{
			"pending": 3, "in_progress": 0, "ready": 1, "delivered": 0, "cancelled": 0,
		}).Once()

		require.NoError(t, job.Run(t.Context()))

		counter.AssertExpectations(t)
		metrics.AssertExpectations(t)
		assert.Contains(t, logs.String(), `"pending":3`)
		assert.Contains(t, logs.String(), `"component":"status_report_job"`)
	})

	t.Run("should skip metrics when the query fails", func(t *testing.T) {
		counter := new(MockOrderCounter)
		metrics := new(MockMetricsRecorder)
		var logs bytes.Buffer
		job := jobs.NewStatusReportJob(counter, metrics, "", slog.New(slog.NewJSONHandler(&logs, nil)))
		queryErr := errors.New("database is down")

		counter.On("Handle", mock.Anything, mock.Anything).Return(nil, queryErr)

		require.ErrorIs(t, job.Run(t.Context()), queryErr)

		metrics.AssertNotCalled(t, "OrdersByStatus", mock.Anything)
		assert.Contains(t, logs.String(), "Status report job failed")
	})
}

func TestStatusReportJob_Schedule(t *testing.T) {
	t.Run("should run on its schedule", func(t *testing.T) {
		counter := new(MockOrderCounter)
		metrics := new(MockMetricsRecorder)
		job := jobs.NewStatusReportJob(counter, metrics, "* * * * * *", slog.New(slog.DiscardHandler))

		reported := make(chan struct{}, 1)
		counter.On("Handle", mock.Anything, mock.Anything).Return(map[order.Status]int{}, nil)
		metrics.On("OrdersByStatus", mock.Anything).Run(func(mock.Arguments) {
			select {
			case reported <- struct{}{}:
			default:
			}
		})

		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-reported:
		case <-time.After(3 * time.Second):
			t.Fatal("status report did not run")
		}
	})

	t.Run("should refuse an invalid schedule", func(t *testing.T) {
		job := jobs.NewStatusReportJob(new(MockOrderCounter), new(MockMetricsRecorder), "every minute",
			slog.New(slog.DiscardHandler))

		require.Error(t, job.Start())
	})
}

type stubJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (j *stubJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	j.started = true
	return nil
}

func (j *stubJob) Stop() {
	j.stopped = true
}

func TestJobManager(t *testing.T) {
	t.Run("should start and stop every job", func(t *testing.T) {
		first, second := &stubJob{}, &stubJob{}
		manager := jobs.NewJobManagerWithJobs(slog.New(slog.DiscardHandler), first, second)

		require.NoError(t, manager.StartAll())
		assert.True(t, first.started)
		assert.True(t, second.started)

		manager.StopAll()
		assert.True(t, first.stopped)
		assert.True(t, second.stopped)
	})

	t.Run("should stop started jobs when one fails to start", func(t *testing.T) {
		first := &stubJob{}
		failing := &stubJob{startErr: errors.New("bad schedule")}
		manager := jobs.NewJobManagerWithJobs(slog.New(slog.DiscardHandler), first, failing)

		err := manager.StartAll()

		require.ErrorContains(t, err, "bad schedule")
		assert.True(t, first.stopped)
		assert.False(t, failing.stopped)
	})
}
