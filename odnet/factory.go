package odnet

import (
	"errors"
	"fmt"

	"github.com/gordian-engine/godos/odtypes"
)

// ClientFactory produces an [OrderingClient] for a peer.
type ClientFactory interface {
	CreateClient(peer odtypes.Peer) (OrderingClient, error)
}

// ClientFactoryFunc allows converting a standalone function into a [ClientFactory].
type ClientFactoryFunc func(peer odtypes.Peer) (OrderingClient, error)

// CreateClient implements [ClientFactory].
func (f ClientFactoryFunc) CreateClient(peer odtypes.Peer) (OrderingClient, error) {
	return f(peer)
}

var _ ClientFactory = (*GRPCClientFactory)(nil)

// GRPCClientFactory is a [ClientFactory] producing [*GRPCClient] values.
// Clients for the same peer share a single connection.
type GRPCClientFactory struct {
	conns *ConnectionStore
}

// NewGRPCClientFactory returns a factory dialing through dialer.
func NewGRPCClientFactory(dialer Dialer) *GRPCClientFactory {
	return &GRPCClientFactory{conns: NewConnectionStore(dialer)}
}

// CreateClient implements [ClientFactory].
func (f *GRPCClientFactory) CreateClient(peer odtypes.Peer) (OrderingClient, error) {
	if peer.Address == "" {
		return nil, errors.New("peer address required")
	}

	cc, err := f.conns.Connection(peer)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", peer, err)
	}
	return NewGRPCClient(cc), nil
}

// Disconnect closes the shared connection to peer.
// Clients previously created for peer fail their subsequent calls.
func (f *GRPCClientFactory) Disconnect(peer odtypes.Peer) {
	f.conns.Disconnect(peer)
}

// Close closes every connection opened by the factory.
func (f *GRPCClientFactory) Close() error {
	return f.conns.Close()
}
