package pool

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Fixed is a Pool backed by a fixed set of worker goroutines pulling from an
// unbounded FIFO queue. At most capacity funcs execute concurrently.
//
// Submit after Close is not supported; callers (the futures Manager) are
// expected to guard the pool's lifecycle.
type Fixed struct {
	capacity int

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool

	workers *errgroup.Group
	pending sync.WaitGroup
}

// NewFixed creates a Fixed pool and starts its capacity worker goroutines.
// capacity must be > 0.
func NewFixed(capacity int) *Fixed {
	p := &Fixed{capacity: capacity, workers: &errgroup.Group{}}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < capacity; i++ {
		p.workers.Go(p.run)
	}
	return p
}

// Cap returns the number of worker goroutines.
func (p *Fixed) Cap() int { return p.capacity }

// Submit enqueues fn and returns immediately.
func (p *Fixed) Submit(fn func()) {
	p.pending.Add(1)
	p.mu.Lock()
	p.queue = append(p.queue, fn)
	p.mu.Unlock()
	p.cond.Signal()
}

// Drain blocks until every submitted fn has finished executing. The pool
// remains usable afterwards.
func (p *Fixed) Drain() {
	p.pending.Wait()
}

// Close drains the pool and stops its workers. It must be called at most
// once; after Close the pool must not be used.
func (p *Fixed) Close() {
	p.Drain()
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	_ = p.workers.Wait()
}

// run is a single worker loop: pull from the queue until closed and empty.
func (p *Fixed) run() error {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return nil
		}
		fn := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		fn()
		p.pending.Done()
	}
}
