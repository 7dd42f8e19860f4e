// Package workers runs the server's background jobs.
//
// A Worker starts its own goroutine in Run and returns immediately; Stop
// cancels it and waits for it to exit. Workers groups several of them so
// main can start and stop them together.
package workers

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Run starts the job without blocking.
	Run()

	// Stop cancels the job and blocks until it has exited. Calling Stop on
	// a worker that is not running is a no-op.
	Stop()
}
