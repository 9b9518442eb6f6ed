package godoscmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gordian-engine/godos/internal/glog"
	"github.com/gordian-engine/godos/odclient"
	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odexec"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odproposal"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// node holds everything a command needs to talk to peers.
type node struct {
	log *slog.Logger

	cancel context.CancelFunc

	executor *odexec.KeyedExecutor
	pool     *odexec.Pool

	transport *odnet.GRPCClientFactory
	factory   *odclient.Factory

	clients *odclient.Registry
	metrics *prometheus.Registry
}

func startNode(
	ctx context.Context,
	log *slog.Logger,
	f *rootFlags,
	dialer odnet.Dialer,
	callback func(odtypes.ProposalEvent),
) (*node, error) {
	log = log.With("node", f.NodeName)

	metrics := prometheus.NewRegistry()
	if err := metrics.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	sink, err := odevents.NewPrometheusSink(metrics)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	n := &node{
		log:    log,
		cancel: cancel,

		executor: odexec.NewKeyedExecutor(ctx, log.With("sys", "executor"), odexec.KeyedExecutorConfig{
			MaxConcurrentKeys: f.MaxConcurrentPeers,
		}),
		pool: odexec.NewPool(ctx, log.With("sys", "pool"), odexec.PoolConfig{
			Workers: f.Workers,
		}),

		transport: odnet.NewGRPCClientFactory(dialer),

		clients: odclient.NewRegistry(),
		metrics: metrics,
	}

	n.factory, err = odclient.NewFactory(odclient.FactoryConfig{
		Transport:       n.transport,
		ProposalFactory: odproposal.NewValidatingFactory(odproposal.DefaultConfig()),
		ProposalTimeout: f.Timeout,
		Log:             log.With("sys", "client"),
		Callback:        callback,
		Executor:        n.executor,
		Pool:            n.pool,
		Sink:            sink,
	})
	if err != nil {
		n.stop()
		return nil, err
	}

	return n, nil
}

// connect creates and registers a client for the peer in f.
func (n *node) connect(f *rootFlags) (*odclient.Client, error) {
	p, err := f.peer()
	if err != nil {
		return nil, err
	}

	c, err := n.factory.Create(p)
	if err != nil {
		return nil, err
	}
	n.clients.Add(c)

	n.log.Info("Connected", "peer", p.Address, "peer_id", p.ID())
	return c, nil
}

// drain blocks until every queued send has run.
func (n *node) drain() {
	n.executor.Wait()
}

func (n *node) stop() error {
	err := n.clients.Close()

	n.cancel()
	n.executor.Wait()
	n.pool.Wait()

	return errors.Join(err, n.transport.Close())
}

func logProposal(log *slog.Logger) func(odtypes.ProposalEvent) {
	return func(e odtypes.ProposalEvent) {
		if e.Proposal == nil {
			log.Info("No proposal", "round", e.Round)
			return
		}
		attrs := []any{
			"round", e.Round,
			"height", e.Proposal.Height,
			"tx_count", len(e.Proposal.Transactions),
		}
		if len(e.Proposal.Transactions) > 0 {
			h := e.Proposal.Transactions[0].Hash()
			attrs = append(attrs, "first_tx", glog.Hex(h[:]))
		}
		log.Info("Received proposal", attrs...)
	}
}
