package workers

import "context"

// Workers composes background jobs so process bootstrap can start and stop
// them as one unit.
type Workers struct {
	workers []Worker
}

// New groups the given workers.
func New(list ...Worker) *Workers {
	return &Workers{workers: list}
}

// StartAll starts every worker.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// StopAll stops every worker, blocking until each has exited.
func (w *Workers) StopAll() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
