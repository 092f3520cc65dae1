// Package scheduler enqueues recurring jobs onto a worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/worker"
)

// LogMsgTickDropped is logged when a tick finds the queue full
const LogMsgTickDropped = "Scheduled job dropped, worker queue full"

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule runs job every interval until Stop. A non-positive interval disables
// the job and returns false. A tick that finds the queue full is skipped rather
// than piling up behind slow workers.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) bool {
	if interval <= 0 {
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.Info(LogMsgTickDropped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
	return true
}

// Stop stops all scheduled jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
