package odclient

import (
	"errors"
	"sync"

	"github.com/gordian-engine/godos/odtypes"
)

// Registry tracks the open clients of a node, keyed by peer ID.
//
// It is a convenience for callers that talk to several peers at once.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// Add registers c, closing and replacing any client already registered for the same peer.
func (r *Registry) Add(c *Client) {
	r.mu.Lock()
	prev := r.clients[c.peerID]
	r.clients[c.peerID] = c
	r.mu.Unlock()

	if prev != nil && prev != c {
		_ = prev.Close()
	}
}

// Remove closes and forgets the client for peerID.
// It reports whether a client was registered.
func (r *Registry) Remove(peerID string) bool {
	r.mu.Lock()
	c, ok := r.clients[peerID]
	delete(r.clients, peerID)
	r.mu.Unlock()

	if ok {
		_ = c.Close()
	}
	return ok
}

// Get returns the client registered for peerID.
func (r *Registry) Get(peerID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[peerID]
	return c, ok
}

// Broadcast forwards batches to every registered client.
func (r *Registry) Broadcast(batches []odtypes.Batch) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		c.OnBatches(batches)
	}
}

// RequestProposal requests the proposal for round from every registered client.
func (r *Registry) RequestProposal(round odtypes.Round) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		c.OnRequestProposal(round)
	}
}

// Stats returns a snapshot of every registered client's stats, keyed by peer ID.
func (r *Registry) Stats() map[string]Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Stats, len(r.clients))
	for id, c := range r.clients {
		out[id] = c.Stats()
	}
	return out
}

// Close closes and forgets every registered client.
func (r *Registry) Close() error {
	r.mu.Lock()
	clients := r.clients
	r.clients = make(map[string]*Client)
	r.mu.Unlock()

	var errs []error
	for _, c := range clients {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
