package odexec

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"
)

// KeyedExecutorConfig configures a [KeyedExecutor].
type KeyedExecutorConfig struct {
	// Maximum number of keys whose tasks may run at the same time.
	// Zero or negative means unlimited.
	MaxConcurrentKeys int
}

// DefaultKeyedExecutorConfig returns default configuration values.
func DefaultKeyedExecutorConfig() KeyedExecutorConfig {
	return KeyedExecutorConfig{
		MaxConcurrentKeys: 0,
	}
}

// KeyedExecutor serializes tasks per key.
//
// Each key with pending work has exactly one goroutine draining its queue.
// The goroutine exits once the queue is empty.
type KeyedExecutor struct {
	log *slog.Logger
	ctx context.Context

	// Nil when there is no concurrency limit.
	sem *semaphore.Weighted

	mu     sync.Mutex
	queues map[string]*keyQueue

	wg sync.WaitGroup
}

type keyQueue struct {
	tasks []Task
}

// NewKeyedExecutor returns a new KeyedExecutor bound to ctx.
func NewKeyedExecutor(ctx context.Context, log *slog.Logger, cfg KeyedExecutorConfig) *KeyedExecutor {
	if log == nil {
		log = slog.Default()
	}

	e := &KeyedExecutor{
		log:    log,
		ctx:    ctx,
		queues: make(map[string]*keyQueue),
	}
	if cfg.MaxConcurrentKeys > 0 {
		e.sem = semaphore.NewWeighted(int64(cfg.MaxConcurrentKeys))
	}
	return e
}

// ExecuteFor enqueues task to run after every task previously enqueued for key.
// It returns immediately.
//
// If the executor's context has already been canceled, task is dropped.
func (e *KeyedExecutor) ExecuteFor(key string, task Task) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctx.Err() != nil {
		return
	}

	if q, ok := e.queues[key]; ok {
		q.tasks = append(q.tasks, task)
		return
	}

	q := &keyQueue{tasks: []Task{task}}
	e.queues[key] = q

	e.wg.Add(1)
	go e.drain(key, q)
}

// Pending returns the number of queued, not yet started, tasks for key.
func (e *KeyedExecutor) Pending(key string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	q, ok := e.queues[key]
	if !ok {
		return 0
	}
	return len(q.tasks)
}

// Wait blocks until every drain goroutine has exited.
// That happens either when all queues are empty
// or after the executor's context is canceled.
//
// Wait must not be called concurrently with ExecuteFor.
func (e *KeyedExecutor) Wait() {
	e.wg.Wait()
}

func (e *KeyedExecutor) drain(key string, q *keyQueue) {
	defer e.wg.Done()

	for {
		task, ok := e.next(key, q)
		if !ok {
			return
		}

		if e.sem != nil {
			if err := e.sem.Acquire(e.ctx, 1); err != nil {
				// Only fails on context cancellation.
				e.forget(key)
				return
			}
		}

		e.run(key, task)

		if e.sem != nil {
			e.sem.Release(1)
		}
	}
}

// next pops the head of q.
// When q is empty or the executor is stopping,
// the key is removed from the map while still holding the lock,
// so a concurrent ExecuteFor starts a fresh drain goroutine.
func (e *KeyedExecutor) next(key string, q *keyQueue) (Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(q.tasks) == 0 || e.ctx.Err() != nil {
		delete(e.queues, key)
		return nil, false
	}

	task := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return task, true
}

func (e *KeyedExecutor) forget(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.queues, key)
}

func (e *KeyedExecutor) run(key string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Recovered panic in keyed task", "key", key, "panic", r)
		}
	}()

	task(e.ctx)
}
