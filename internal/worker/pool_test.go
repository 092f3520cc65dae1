package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	executed *int32
	err      error
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestPool_ProcessesJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(&countingJob{executed: &executed, err: errors.New("boom")}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 3
	}, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueFull(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)

	assert.True(t, pool.TryEnqueue(&countingJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&countingJob{executed: &executed}))

	pool.Start()
	pool.Stop()
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	job := &blockingJob{started: make(chan struct{})}
	pool.Enqueue(job)
	<-job.started

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the running job")
	}
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, 0)
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.False(t, pool.Enqueue(&countingJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&countingJob{executed: &executed}))
}
