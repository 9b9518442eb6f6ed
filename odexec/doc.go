// Package odexec contains the two scheduling domains used by the ordering client.
//
// [KeyedExecutor] runs tasks sharing a key strictly in submission order,
// one at a time, while tasks for different keys proceed independently.
// Batch sends to a single peer go through it so that one peer never
// observes its batches reordered or interleaved.
//
// [Pool] is a general-purpose fixed-size worker pool
// with no ordering guarantees, used for proposal requests.
//
// Submitting to either never blocks the caller.
// Both are bound to a context; once it is canceled,
// queued work is dropped and Wait returns after running work finishes.
package odexec

import "context"

// Task is a unit of work scheduled on a [KeyedExecutor] or [Pool].
//
// The context is canceled when the owning executor shuts down.
// A Task is responsible for its own errors;
// a panicking Task is recovered and logged.
type Task func(ctx context.Context)
