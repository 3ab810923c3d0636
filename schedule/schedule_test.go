package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRuns(t *testing.T) {
	t.Parallel()

	s := New(10 * time.Millisecond)
	var ran atomic.Bool

	task := s.Schedule(func() { ran.Store(true) })
	assert.True(t, s.Pending())

	require.NoError(t, task.Wait(context.Background()))
	assert.True(t, ran.Load())
	assert.False(t, s.Pending())
}

func TestNewerTaskSupersedesPending(t *testing.T) {
	t.Parallel()

	s := New(50 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	first := s.Schedule(func() { calls.Add(1); last.Store(1) })
	second := s.Schedule(func() { calls.Add(1); last.Store(2) })

	assert.ErrorIs(t, first.Wait(context.Background()), ErrSuperseded)
	require.NoError(t, second.Wait(context.Background()))

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(2), last.Load())
}

func TestOnlyLatestOfManyRuns(t *testing.T) {
	t.Parallel()

	s := New(30 * time.Millisecond)
	var calls atomic.Int32

	var tasks []*Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, s.Schedule(func() { calls.Add(1) }))
	}

	ctx := context.Background()
	for _, task := range tasks[:9] {
		assert.ErrorIs(t, task.Wait(ctx), ErrSuperseded)
	}
	require.NoError(t, tasks[9].Wait(ctx))
	assert.Equal(t, int32(1), calls.Load())
}

func TestCancel(t *testing.T) {
	t.Parallel()

	s := New(time.Hour)
	var ran atomic.Bool

	task := s.Schedule(func() { ran.Store(true) })
	assert.True(t, s.Cancel())
	assert.False(t, s.Cancel())

	assert.ErrorIs(t, task.Wait(context.Background()), ErrCancelled)
	assert.False(t, ran.Load())
	assert.False(t, s.Pending())
}

func TestRunningTaskIsNotInterrupted(t *testing.T) {
	t.Parallel()

	s := New(0)
	started := make(chan struct{})
	release := make(chan struct{})

	first := s.Schedule(func() {
		close(started)
		<-release
	})
	<-started

	second := s.Schedule(func() {})
	close(release)

	ctx := context.Background()
	require.NoError(t, first.Wait(ctx))
	require.NoError(t, second.Wait(ctx))
}

func TestWaitHonoursContext(t *testing.T) {
	t.Parallel()

	s := New(time.Hour)
	task := s.Schedule(func() {})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, task.Wait(ctx), context.DeadlineExceeded)
	assert.True(t, s.Cancel())
}

func TestDoneChannel(t *testing.T) {
	t.Parallel()

	s := New(time.Millisecond)
	task := s.Schedule(func() {})

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}
}

func TestNegativeDelay(t *testing.T) {
	t.Parallel()

	s := New(-time.Second)
	ran := false
	task := s.Schedule(func() { ran = true })
	require.NoError(t, task.Wait(context.Background()))
	assert.True(t, ran)
}

func TestTaskCancelLeavesNewerTask(t *testing.T) {
	t.Parallel()

	s := New(200 * time.Millisecond)
	first := s.Schedule(func() {})
	second := s.Schedule(func() {})

	// first was already superseded, so there is nothing left to cancel
	assert.False(t, first.Cancel())
	assert.True(t, s.Pending())
	require.NoError(t, second.Wait(context.Background()))

	third := s.Schedule(func() {})
	assert.True(t, third.Cancel())
	assert.ErrorIs(t, third.Wait(context.Background()), ErrCancelled)
	assert.False(t, s.Pending())
}
