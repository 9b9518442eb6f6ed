package odnet

import (
	"fmt"
	"sync"

	"github.com/gordian-engine/godos/odtypes"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultMaxMessageSize bounds the size of a single gRPC message in either direction.
// Outgoing batch requests stay near [odwire.MaxBatchesRequestSize],
// but proposals can be considerably larger.
const DefaultMaxMessageSize = 32 << 20

// Dialer connects to a remote address.
type Dialer interface {
	Dial(address string) (*grpc.ClientConn, error)
}

// DialerFunc allows converting a standalone function into a [Dialer].
type DialerFunc func(address string) (*grpc.ClientConn, error)

// Dial implements [Dialer].
func (f DialerFunc) Dial(address string) (*grpc.ClientConn, error) {
	return f(address)
}

// InsecureDialer is a [Dialer] creating plaintext gRPC connections.
type InsecureDialer struct {
	// Additional options appended after the defaults.
	Options []grpc.DialOption

	// Zero means DefaultMaxMessageSize.
	MaxMessageSize int
}

// Dial implements [Dialer].
//
// The returned connection is lazy;
// connection failures surface on the first call, not here.
func (d InsecureDialer) Dial(address string) (*grpc.ClientConn, error) {
	maxSize := d.MaxMessageSize
	if maxSize <= 0 {
		maxSize = DefaultMaxMessageSize
	}

	opts := []grpc.DialOption{
		// TODO support TLS once peers advertise certificates.
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxSize),
			grpc.MaxCallSendMsgSize(maxSize),
		),
	}
	opts = append(opts, d.Options...)

	cc, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", address, err)
	}
	return cc, nil
}

// ConnectionStore caches one connection per peer identity.
//
// A peer that shows up with a new address gets a fresh connection;
// the connection to its old address is closed.
type ConnectionStore struct {
	lock   sync.RWMutex
	conns  map[string]storedConn
	dialer Dialer
}

type storedConn struct {
	address string
	cc      *grpc.ClientConn
}

// NewConnectionStore returns an empty store that dials through dialer.
func NewConnectionStore(dialer Dialer) *ConnectionStore {
	return &ConnectionStore{
		conns:  make(map[string]storedConn),
		dialer: dialer,
	}
}

// Connection returns the cached connection to peer, dialing if needed.
func (s *ConnectionStore) Connection(peer odtypes.Peer) (*grpc.ClientConn, error) {
	id := peer.ID()

	s.lock.RLock()
	sc, ok := s.conns[id]
	s.lock.RUnlock()
	if ok && sc.address == peer.Address {
		return sc.cc, nil
	}

	return s.connect(id, peer.Address)
}

func (s *ConnectionStore) connect(id, address string) (*grpc.ClientConn, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	// Another goroutine may have connected while we waited on the lock.
	if sc, ok := s.conns[id]; ok {
		if sc.address == address {
			return sc.cc, nil
		}

		// Stale address.
		_ = sc.cc.Close()
		delete(s.conns, id)
	}

	cc, err := s.dialer.Dial(address)
	if err != nil {
		return nil, err
	}

	s.conns[id] = storedConn{address: address, cc: cc}
	return cc, nil
}

// Disconnect closes and forgets the connection to peer, if any.
func (s *ConnectionStore) Disconnect(peer odtypes.Peer) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := peer.ID()
	sc, ok := s.conns[id]
	if !ok {
		return
	}
	_ = sc.cc.Close()
	delete(s.conns, id)
}

// Size returns the number of cached connections.
func (s *ConnectionStore) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.conns)
}

// Close closes every cached connection.
func (s *ConnectionStore) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	var firstErr error
	for id, sc := range s.conns {
		if err := sc.cc.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close connection to %s: %w", id, err)
		}
		delete(s.conns, id)
	}
	return firstErr
}
