package odexec

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
)

// PoolConfig configures a [Pool].
type PoolConfig struct {
	// Number of worker goroutines.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultPoolConfig returns default configuration values.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Pool runs submitted tasks on a fixed set of worker goroutines.
// Tasks are started in submission order but may run concurrently.
//
// Every accepted task runs exactly once.
// Tasks still queued when the pool's context is canceled
// run with the canceled context before the workers exit.
type Pool struct {
	log *slog.Logger
	ctx context.Context

	mu      sync.Mutex
	queue   []Task
	stopped bool

	// 1-buffered; a value indicates that the queue may be non-empty.
	ready chan struct{}

	wg sync.WaitGroup
}

// NewPool starts a new Pool whose workers run until ctx is canceled.
func NewPool(ctx context.Context, log *slog.Logger, cfg PoolConfig) *Pool {
	if log == nil {
		log = slog.Default()
	}
	n := cfg.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		log:   log,
		ctx:   ctx,
		ready: make(chan struct{}, 1),
	}

	p.wg.Add(n)
	for range n {
		go p.work()
	}

	return p
}

// Submit enqueues task and returns immediately.
// It reports false, without running task,
// once the workers have drained the queue after cancellation.
func (p *Pool) Submit(task Task) bool {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return false
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()

	p.signal()
	return true
}

// Wait blocks until all workers have stopped,
// which only happens after the pool's context is canceled.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) signal() {
	select {
	case p.ready <- struct{}{}:
	default:
		// Already signaled.
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		if task, ok := p.next(); ok {
			p.run(task)
			continue
		}

		select {
		case <-p.ctx.Done():
			if p.stop() {
				return
			}
		case <-p.ready:
		}
	}
}

// stop marks the pool stopped if the queue is empty,
// and reports whether it did.
func (p *Pool) stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.queue) > 0 {
		return false
	}
	p.stopped = true
	return true
}

func (p *Pool) next() (Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.queue) == 0 {
		return nil, false
	}

	task := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]

	if len(p.queue) > 0 {
		// Wake another worker for the remainder.
		p.signal()
	}

	return task, true
}

func (p *Pool) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("Recovered panic in pool task", "panic", r)
		}
	}()

	task(p.ctx)
}
