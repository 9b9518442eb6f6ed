package odclient

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odexec"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odproposal"
	"github.com/gordian-engine/godos/odtypes"
)

// FactoryConfig is the configuration for [NewFactory].
// Every client created by the factory shares these values.
type FactoryConfig struct {
	Transport       odnet.ClientFactory
	ProposalFactory odproposal.Factory

	TimeProvider    TimeProvider
	ProposalTimeout time.Duration

	Log *slog.Logger

	Callback func(odtypes.ProposalEvent)

	Executor *odexec.KeyedExecutor
	Pool     *odexec.Pool

	Sink odevents.Sink
}

// Factory creates a [Client] per peer.
type Factory struct {
	cfg FactoryConfig
}

// NewFactory validates cfg and returns a factory.
// Optional fields left zero are filled with defaults.
func NewFactory(cfg FactoryConfig) (*Factory, error) {
	var errs []error
	if cfg.Transport == nil {
		errs = append(errs, errors.New("transport required"))
	}
	if cfg.ProposalFactory == nil {
		errs = append(errs, errors.New("proposal factory required"))
	}
	if cfg.Callback == nil {
		errs = append(errs, errors.New("callback required"))
	}
	if cfg.Executor == nil {
		errs = append(errs, errors.New("executor required"))
	}
	if cfg.Pool == nil {
		errs = append(errs, errors.New("pool required"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid factory config: %w", err)
	}

	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = time.Now
	}
	if cfg.ProposalTimeout <= 0 {
		cfg.ProposalTimeout = DefaultProposalTimeout
	}
	if cfg.Sink == nil {
		cfg.Sink = odevents.NopSink{}
	}

	return &Factory{cfg: cfg}, nil
}

// Create returns a new client for peer.
// The only error is a failure to obtain a transport for peer.
func (f *Factory) Create(peer odtypes.Peer) (*Client, error) {
	t, err := f.cfg.Transport.CreateClient(peer)
	if err != nil {
		return nil, fmt.Errorf("create ordering client for %s: %w", peer, err)
	}

	return NewClient(f.cfg.Log, Config{
		Peer: peer,

		Transport:       t,
		ProposalFactory: f.cfg.ProposalFactory,
		Callback:        f.cfg.Callback,

		Executor: f.cfg.Executor,
		Pool:     f.cfg.Pool,

		TimeProvider:    f.cfg.TimeProvider,
		ProposalTimeout: f.cfg.ProposalTimeout,

		Sink: f.cfg.Sink,
	})
}
