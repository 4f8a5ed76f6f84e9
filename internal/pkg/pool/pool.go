package pool

import (
	"context"
	"sync"
)

// Pool runs submitted jobs on a fixed number of goroutines.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan func(), n*2),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.jobs {
		if f != nil {
			f()
		}
	}
}

// Submit queues f, blocking while the queue is full. It gives up when ctx is
// done and returns ctx.Err(); f is not run in that case.
func (p *Pool) Submit(ctx context.Context, f func()) error {
	select {
	case p.jobs <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs. Already queued jobs still run.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.jobs) })
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
