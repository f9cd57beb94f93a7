package scheduler

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmay4285/Stock-Comparer/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	runs     atomic.Int32
	err      error
}

func (j *fakeJob) Name() string                  { return j.name }
func (j *fakeJob) Schedule() string              { return j.schedule }
func (j *fakeJob) Run(ctx context.Context) error { j.runs.Add(1); return j.err }

func newTestScheduler() *Scheduler {
	s := New(logger.NewWriter(io.Discard, "error"))
	s.retryDelay = time.Millisecond
	return s
}

func TestAddJobRejectsDuplicates(t *testing.T) {
	s := newTestScheduler()

	job := &fakeJob{name: "refresh", schedule: "0 0 * * * *"}
	require.NoError(t, s.AddJob(job))

	err := s.AddJob(&fakeJob{name: "refresh", schedule: "0 0 * * * *"})
	assert.Error(t, err)
	assert.Equal(t, []string{"refresh"}, s.Jobs())
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	s := newTestScheduler()

	err := s.AddJob(&fakeJob{name: "broken", schedule: "not a cron"})
	assert.Error(t, err)
}

func TestRunJobImmediate(t *testing.T) {
	s := newTestScheduler()

	job := &fakeJob{name: "refresh", schedule: "0 0 * * * *"}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunJob("refresh"))

	require.Eventually(t, func() bool {
		return job.runs.Load() == 1
	}, time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		history, err := s.History("refresh")
		return err == nil && len(history.Results) == 1
	}, time.Second, 10*time.Millisecond)

	history, err := s.History("refresh")
	require.NoError(t, err)
	assert.True(t, history.Results[0].Success)
	assert.Equal(t, 1.0, history.SuccessRate())
}

func TestRunJobRetriesOnFailure(t *testing.T) {
	s := newTestScheduler()

	job := &fakeJob{name: "flaky", schedule: "0 0 * * * *", err: errors.New("boom")}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunJob("flaky"))

	// Initial attempt plus two retries
	require.Eventually(t, func() bool {
		return job.runs.Load() == 3
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		history, err := s.History("flaky")
		return err == nil && len(history.Results) == 1
	}, time.Second, 10*time.Millisecond)

	history, err := s.History("flaky")
	require.NoError(t, err)
	assert.False(t, history.Results[0].Success)
	assert.Equal(t, "boom", history.Results[0].Error)
}

func TestRunJobUnknown(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.RunJob("missing"))
}

func TestJobHistoryWindow(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.Add(JobResult{JobName: "x", Success: i%2 == 0})
	}

	assert.Len(t, h.Results, 100)
	assert.Len(t, h.Latest(10), 10)
	assert.InDelta(t, 0.5, h.SuccessRate(), 0.01)
}
