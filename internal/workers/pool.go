package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-test-prep/internal/logger"
)

// ErrPoolClosed is returned by Submit after Close.
var ErrPoolClosed = errors.New("worker pool is closed")

const defaultTaskTimeout = 30 * time.Second

// Task is a unit of background work.
type Task func(ctx context.Context) error

// Pool runs tasks in the background with at most size of them at a time.
// Tasks are detached from the caller's cancellation but bounded by a
// per-task timeout.
type Pool struct {
	sem     *semaphore.Weighted
	wg      sync.WaitGroup
	timeout time.Duration

	mu     sync.RWMutex
	closed bool

	logger *logger.Logger
}

func NewPool(size int, log *logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(size)),
		timeout: defaultTaskTimeout,
		logger:  log,
	}
}

// Submit schedules task. It blocks while the pool is full and returns the
// ctx error if ctx ends first. Task failures are logged, not returned.
func (p *Pool) Submit(ctx context.Context, name string, task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("submit %s: %w", name, err)
	}

	p.wg.Add(1)
	go func() {
		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		log := logger.FromContextOr(ctx, p.logger)
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Err(fmt.Errorf("%v, stack: %s", r, debug.Stack())).
					Str("task", name).
					Msg("workers: task panic")
			}
			cancel()
			p.sem.Release(1)
			p.wg.Done()
		}()

		if err := task(taskCtx); err != nil {
			log.Error().Err(err).Str("task", name).Msg("workers: task failed")
		}
	}()

	return nil
}

// Wait blocks until every submitted task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Close rejects further tasks and waits for running ones.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.Wait()
}
