package concurrent

import (
	"sync"
)

// JobFunc turns one job into one result.
type JobFunc[J any, R any] func(job J) R

// WorkerPool fans a queue of independent jobs over a fixed number of
// workers. Results arrive in completion order; tag jobs with their
// index when the caller needs the original order back. Size the result
// buffer to the job count so Wait cannot deadlock on a full channel.
type WorkerPool[J any, R any] struct {
	numWorkers int
	jobQueue   chan J
	results    chan R
	wg         sync.WaitGroup
}

func NewWorkerPool[J any, R any](numWorkers, queueSize int) *WorkerPool[J, R] {
	return &WorkerPool[J, R]{
		numWorkers: numWorkers,
		jobQueue:   make(chan J, queueSize),
		results:    make(chan R, queueSize),
	}
}

func (wp *WorkerPool[J, R]) worker(jobFunc JobFunc[J, R]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[J, R]) Start(jobFunc JobFunc[J, R]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

func (wp *WorkerPool[J, R]) AddJob(job J) {
	wp.jobQueue <- job
}

// Close signals that no more jobs will be added.
func (wp *WorkerPool[J, R]) Close() {
	close(wp.jobQueue)
}

// Wait blocks until every queued job is done, then closes the result
// channel so CollectResults can be ranged.
func (wp *WorkerPool[J, R]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[J, R]) CollectResults() chan R {
	return wp.results
}
