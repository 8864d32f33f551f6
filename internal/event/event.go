// Package event is the in-process event bus connecting the test-session
// state machine to the services that react to it.
package event

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/logger"
)

const (
	defaultPoolSize = 64
	defaultTimeout  = 30 * time.Second
)

type Event interface {
	Name() string
}

type Handler func(ctx context.Context, e Event) error

// Bus is an in-memory event bus. Handlers run on their own goroutines, at
// most poolSize at a time.
type Bus struct {
	pool     chan struct{}
	wg       *sync.WaitGroup
	mu       sync.RWMutex
	handlers map[string][]Handler
	timeout  time.Duration
	logger   *logger.Logger
}

type Option func(*Bus)

// WithPoolSize bounds the number of handlers running at once.
func WithPoolSize(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.pool = make(chan struct{}, n)
		}
	}
}

// WithHandlerTimeout bounds the run time of a single handler.
func WithHandlerTimeout(d time.Duration) Option {
	return func(b *Bus) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// NewBus create a new event bus. Caller should call Stop for graceful shutdown the bus.
func NewBus(log *logger.Logger, opts ...Option) *Bus {
	b := &Bus{
		pool:     make(chan struct{}, defaultPoolSize),
		wg:       new(sync.WaitGroup),
		handlers: make(map[string][]Handler),
		timeout:  defaultTimeout,
		logger:   log,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe to an event
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], h)
}

// Publish an event. Handlers outlive the cancellation of ctx.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers[e.Name()] {
		b.dispatch(ctx, h, e)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, e Event) {
	b.wg.Add(1)

	b.pool <- struct{}{}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		log := logger.FromContextOr(ctx, b.logger)
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Err(fmt.Errorf("%v, stack: %s", r, debug.Stack())).
					Str("event", e.Name()).
					Msg("event: handler panic")
			}

			cancel()
			<-b.pool
			b.wg.Done()
		}()

		if err := h(ctx, e); err != nil {
			log.Error().Err(err).Str("event", e.Name()).Msg("event: handle event failed")
		}
	}()
}

// Stop waits for all handlers to finish
func (b *Bus) Stop() {
	b.wg.Wait()
}
