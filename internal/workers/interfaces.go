package workers

import "context"

// Worker is a background job with explicit lifecycle control.
type Worker interface {
	// Start launches the job. It returns immediately; the job runs until
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop cancels the job and blocks until it has fully exited. Safe to
	// call when the job is not running.
	Stop()
}
