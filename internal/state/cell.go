// Package state provides a broadcast cell holding the latest value of some
// piece of client state.
//
// A new subscriber receives the current value immediately and then every
// later update. Slow subscribers never block writers: each subscription
// channel holds at most one pending value and a newer value replaces it.
package state

import "sync"

// Cell is a concurrency-safe holder of a single value of type T.
// The zero value is not usable; create cells with [NewCell].
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[uint64]chan T
	nextID uint64
	closed bool
}

// NewCell returns a cell initialised with v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{
		value: v,
		subs:  make(map[uint64]chan T),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and delivers it to every active subscriber.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = v
	for _, ch := range c.subs {
		offer(ch, v)
	}
}

// Update applies fn to the current value under the write lock, stores the
// result and broadcasts it. It returns the new value.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = fn(c.value)
	for _, ch := range c.subs {
		offer(ch, c.value)
	}
	return c.value
}

// Subscribe returns a channel that yields the current value right away and
// every subsequent one, plus a cancel func that closes the channel.
// Calling cancel more than once is safe.
func (c *Cell[T]) Subscribe() (<-chan T, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan T, 1)
	if c.closed {
		ch <- c.value
		close(ch)
		return ch, func() {}
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.value

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Close closes every subscription channel. Later Set calls still update the
// stored value but no longer broadcast.
func (c *Cell[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

// offer replaces any undelivered value in ch with v. Callers hold the write
// lock, so ch has a single producer.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
