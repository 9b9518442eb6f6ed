package odclient

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odexec"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odproposal"
	"github.com/gordian-engine/godos/odtypes"
)

const (
	// SendBatchesTimeout bounds a single batches request.
	SendBatchesTimeout = 5 * time.Second

	// DefaultProposalTimeout is used when no proposal timeout is configured.
	DefaultProposalTimeout = time.Second
)

// TimeProvider returns the current time.
// Deadlines are computed from it.
type TimeProvider func() time.Time

// Config is the configuration for [NewClient].
// Transport, ProposalFactory, Callback, Executor and Pool are required.
type Config struct {
	Peer odtypes.Peer

	Transport       odnet.OrderingClient
	ProposalFactory odproposal.Factory

	// Called exactly once per proposal request that runs to completion,
	// with a nil Proposal if there was none.
	// It is called from pool goroutines and must not call [Client.Close].
	Callback func(odtypes.ProposalEvent)

	Executor *odexec.KeyedExecutor
	Pool     *odexec.Pool

	// Optional; defaults to time.Now.
	TimeProvider TimeProvider

	// Optional; defaults to DefaultProposalTimeout.
	ProposalTimeout time.Duration

	// Optional; defaults to odevents.NopSink.
	Sink odevents.Sink
}

func (c *Config) validate() error {
	var errs []error
	if c.Transport == nil {
		errs = append(errs, errors.New("transport required"))
	}
	if c.ProposalFactory == nil {
		errs = append(errs, errors.New("proposal factory required"))
	}
	if c.Callback == nil {
		errs = append(errs, errors.New("callback required"))
	}
	if c.Executor == nil {
		errs = append(errs, errors.New("executor required"))
	}
	if c.Pool == nil {
		errs = append(errs, errors.New("pool required"))
	}
	return errors.Join(errs...)
}

func (c *Config) setDefaults() {
	if c.TimeProvider == nil {
		c.TimeProvider = time.Now
	}
	if c.ProposalTimeout <= 0 {
		c.ProposalTimeout = DefaultProposalTimeout
	}
	if c.Sink == nil {
		c.Sink = odevents.NopSink{}
	}
}

// Client talks to the ordering service of a single peer.
// Create one with [NewClient] or [Factory.Create].
type Client struct {
	peer   odtypes.Peer
	peerID string

	now     TimeProvider
	timeout time.Duration

	executor *odexec.KeyedExecutor
	pool     *odexec.Pool

	live  *liveRef
	slot  *requestSlot
	stats *counters

	// Parent of every proposal request context.
	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once
}

// NewClient returns a client for cfg.Peer.
func NewClient(log *slog.Logger, cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	peerID := cfg.Peer.ID()

	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		peer:   cfg.Peer,
		peerID: peerID,

		now:     cfg.TimeProvider,
		timeout: cfg.ProposalTimeout,

		executor: cfg.Executor,
		pool:     cfg.Pool,

		live: newLiveRef(&collaborators{
			transport: cfg.Transport,
			factory:   cfg.ProposalFactory,
			log:       log.With("peer", cfg.Peer.Address, "peer_id", peerID),
			sink:      cfg.Sink,
			callback:  cfg.Callback,
		}),
		slot:  new(requestSlot),
		stats: new(counters),

		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Peer returns the peer this client talks to.
func (c *Client) Peer() odtypes.Peer {
	return c.peer
}

// Stats returns a snapshot of the client's counters.
func (c *Client) Stats() Stats {
	return c.stats.snapshot()
}

// InFlight reports the round of the current proposal request, if any.
func (c *Client) InFlight() (odtypes.Round, bool) {
	return c.slot.current()
}

// Close cancels any outstanding proposal request
// and turns every task still queued for this client into a no-op.
// Once Close returns, the callback is not called again.
//
// Close does not close the underlying connection, which may be shared with other clients.
// It is safe to call Close more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.slot.close()
		c.live.clear()
		c.cancel()
	})
	return nil
}
