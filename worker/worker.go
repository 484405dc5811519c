package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"go.uber.org/atomic"
)

// Pool runs submitted tasks on a fixed amount of goroutines. A task that panics is reported to
// sentry and does not take its goroutine down with it.
type Pool struct {
	queue  chan func()
	wg     sync.WaitGroup
	closed atomic.Bool
	once   sync.Once
}

// New starts a pool of n workers. n <= 0 uses one worker per CPU.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for f := range p.queue {
		run(f)
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f, blocking while every worker is busy. It returns false if the pool is closed.
// To be used by a function that may be CPU intensive, such as ticking an entity.
func (p *Pool) Submit(f func()) bool {
	if p.closed.Load() {
		return false
	}
	p.queue <- f
	return true
}

// Close stops accepting tasks and waits for the queued ones to finish. Submit must not be called
// concurrently with Close.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.queue)
	})
	p.wg.Wait()
}
