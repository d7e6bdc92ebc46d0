package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/dealradar/dealradar/internal/store/mocks"
)

func newTestScheduler(t *testing.T, ms *storeMocks.MockStore) *Scheduler {
	t.Helper()

	eng := NewEngine(ms, &stubVerifier{res: acceptedResult()}, &stubHistorian{}, newRecordingNotifier(),
		WithLogger(quietLogger()),
	)
	s, err := NewScheduler(eng, ms, time.Hour, 6*time.Hour, quietLogger())
	require.NoError(t, err)
	return s
}

func TestNewScheduler_RegistersBothJobs(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	assert.Len(t, s.Entries(), 2)
	assert.NotEmpty(t, s.holder)
	assert.Equal(t, 2*time.Hour, s.lockTTL)
}

func TestSchedulerStart_RecoversStaleRuns(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, staleJobAge).Return(2, nil).Once()

	s.Start()
	<-s.Stop().Done()
}

func TestWithLock_RunsAndReleases(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job-a", s.holder, s.lockTTL).Return(true, nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "job-a", s.holder).Return(nil).Once()

	ran := false
	s.withLock(context.Background(), "job-a", func(context.Context) error {
		ran = true
		return nil
	})
	assert.True(t, ran)
}

func TestWithLock_SkipsWhenHeldElsewhere(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job-a", s.holder, s.lockTTL).Return(false, nil).Once()

	s.withLock(context.Background(), "job-a", func(context.Context) error {
		t.Fatal("job ran without holding the lock")
		return nil
	})
}

func TestWithLock_AcquireFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job-a", s.holder, s.lockTTL).
		Return(false, errors.New("connection refused")).Once()

	s.withLock(context.Background(), "job-a", func(context.Context) error {
		t.Fatal("job ran despite lock failure")
		return nil
	})
}

func TestWithLock_ReleasesEvenWhenJobFails(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job-a", s.holder, s.lockTTL).Return(true, nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "job-a", s.holder).Return(nil).Once()

	s.withLock(context.Background(), "job-a", func(context.Context) error {
		return errors.New("sweep exploded")
	})
}
