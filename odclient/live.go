package odclient

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odproposal"
	"github.com/gordian-engine/godos/odtypes"
)

// collaborators are the values owned by a client
// that scheduled tasks need at run time.
type collaborators struct {
	transport odnet.OrderingClient
	factory   odproposal.Factory
	log       *slog.Logger
	sink      odevents.Sink
	callback  func(odtypes.ProposalEvent)
}

// liveRef is the only path from a scheduled task back to its client's collaborators.
// Tasks hold the liveRef, never the client,
// and must resolve it each time they are about to use a collaborator.
type liveRef struct {
	p atomic.Pointer[collaborators]

	// Held for reading while a callback runs,
	// so that clear does not return while a callback is in progress.
	deliverMu sync.RWMutex
}

func newLiveRef(c *collaborators) *liveRef {
	r := new(liveRef)
	r.p.Store(c)
	return r
}

func (r *liveRef) resolve() (*collaborators, bool) {
	c := r.p.Load()
	return c, c != nil
}

// deliver invokes the callback with e,
// unless the client has been closed.
func (r *liveRef) deliver(e odtypes.ProposalEvent) bool {
	r.deliverMu.RLock()
	defer r.deliverMu.RUnlock()

	c, ok := r.resolve()
	if !ok {
		return false
	}
	c.callback(e)
	return true
}

// clear detaches the collaborators.
// Once clear returns, no callback is running and none will start.
func (r *liveRef) clear() {
	r.deliverMu.Lock()
	defer r.deliverMu.Unlock()
	r.p.Store(nil)
}

// requestHandle is the cancellable representation
// of one outstanding proposal request.
type requestHandle struct {
	round  odtypes.Round
	ctx    context.Context
	cancel context.CancelFunc
}

// requestSlot holds at most one current request handle.
type requestSlot struct {
	mu     sync.Mutex
	cur    *requestHandle
	closed bool
}

// replace cancels the current handle, if any, and installs a new one for round.
// It returns nil if the slot has been closed.
func (s *requestSlot) replace(parent context.Context, round odtypes.Round) *requestHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if s.cur != nil {
		s.cur.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	s.cur = &requestHandle{round: round, ctx: ctx, cancel: cancel}
	return s.cur
}

// finish releases h, clearing the slot if h is still current.
func (s *requestSlot) finish(h *requestHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == h {
		s.cur = nil
	}
	h.cancel()
}

// isCurrent reports whether h is still the installed handle.
func (s *requestSlot) isCurrent(h *requestHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur == h
}

// current returns the round of the current handle.
func (s *requestSlot) current() (odtypes.Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return odtypes.Round{}, false
	}
	return s.cur.round, true
}

// close cancels the current handle and rejects further replacements.
func (s *requestSlot) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cur != nil {
		s.cur.cancel()
		s.cur = nil
	}
}
