// Package workers provides abstractions for managing and running
// background work in the client.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and a bounded Pool for fire-and-forget
// I/O such as progress saves.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// worker has finished.
//
// Example implementation:
//
//	type MyWorker struct{ done chan struct{} }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    go w.loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() { <-w.done }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
