package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one executed job.
type Result interface {
	GetError() error
}

// Pool fans jobs out across a fixed set of goroutines. A collector
// goroutine drains results while jobs are still being submitted, so a
// caller may enqueue any number of jobs before calling Wait without
// blocking on a full result channel.
type Pool struct {
	workers int
	jobs    chan Job
	results chan Result

	workerWG  sync.WaitGroup
	collectWG sync.WaitGroup
	collected []Result

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool of the given size. The pool stops accepting
// and executing work when ctx is cancelled.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers: workers,
		jobs:    make(chan Job),
		results: make(chan Result, workers),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers and the result collector.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.workerWG.Add(1)
		go p.run()
	}

	p.collectWG.Add(1)
	go func() {
		defer p.collectWG.Done()
		for result := range p.results {
			p.collected = append(p.collected, result)
		}
	}()
}

func (p *Pool) run() {
	defer p.workerWG.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit enqueues a job. It reports false when the pool's context was
// cancelled before a worker could accept the job.
func (p *Pool) Submit(job Job) bool {
	select {
	case <-p.ctx.Done():
		return false
	case p.jobs <- job:
		return true
	}
}

// Wait closes the queue, waits for in-flight jobs to finish, and
// returns every collected result.
func (p *Pool) Wait() []Result {
	close(p.jobs)
	p.workerWG.Wait()
	p.closeResults()
	p.collectWG.Wait()

	return p.collected
}

// Shutdown cancels outstanding work and releases the workers. Jobs
// already running observe the cancellation through their context.
func (p *Pool) Shutdown() {
	p.cancel()
	p.workerWG.Wait()
	p.closeResults()
	p.collectWG.Wait()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
