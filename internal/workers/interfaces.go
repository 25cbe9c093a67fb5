// Package workers runs the client's background jobs.
//
// A Worker blocks in Run until its context is cancelled. Workers starts a
// set of them in goroutines and stops them together.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// has nothing left to do.
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
