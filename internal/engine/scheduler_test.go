package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhartmann/carwatch/internal/metrics"
	storeMocks "github.com/jhartmann/carwatch/internal/store/mocks"
)

func newTestScheduler(t *testing.T) (*Scheduler, *storeMocks.MockStore) {
	t.Helper()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	sched, err := NewScheduler(eng, ms, 6*time.Hour, 24*time.Hour, 72*time.Hour, quietLogger())
	require.NoError(t, err)
	return sched, ms
}

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t)

	entries := sched.Entries()
	assert.Len(t, entries, 2)
	assert.NotZero(t, sched.scoringEntryID)
	assert.NotZero(t, sched.deactivateEntryID)
	assert.NotEqual(t, sched.scoringEntryID, sched.deactivateEntryID)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	scoringNext := ptestutil.ToFloat64(metrics.SchedulerNextScoringTimestamp)
	deactivateNext := ptestutil.ToFloat64(metrics.SchedulerNextDeactivateTimestamp)
	assert.Greater(t, scoringNext, float64(0), "scoring next timestamp should be set")
	assert.Greater(t, deactivateNext, float64(0), "deactivate next timestamp should be set")
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-1", "succeeded", "", 7).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()

	called := false
	err := sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	jobErr := errors.New("something went wrong")

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "fail-job", sched.holder, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-id-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-2", "failed", jobErr.Error(), 0).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "fail-job", sched.holder).
		Return(nil).Once()

	err := sched.runJob(context.Background(), "fail-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 0, jobErr
	})

	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_LockHeldElsewhere(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "busy-job", sched.holder, mock.Anything).
		Return(false, nil).Once()

	called := false
	err := sched.runJob(context.Background(), "busy-job", 5*time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 0, nil
	})

	require.NoError(t, err)
	assert.False(t, called, "job should not run without the lock")
}

func TestScheduler_RecoverStaleJobRuns(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(3, nil).Once()

	sched.RecoverStaleJobRuns(context.Background())
}
