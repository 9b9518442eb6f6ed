package odclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/gordian-engine/godos/internal/gtest"
	"github.com/gordian-engine/godos/odclient"
	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odexec"
	"github.com/gordian-engine/godos/odproposal"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/gordian-engine/godos/odwire"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// fakeTransport is an [odnet.OrderingClient] backed by optional functions.
// A nil function blocks until the call's context is done.
type fakeTransport struct {
	SendBatchesFunc     func(context.Context, *odwire.BatchesRequest) error
	RequestProposalFunc func(context.Context, *odwire.ProposalRequest) (*odwire.ProposalResponse, error)
}

func (f *fakeTransport) SendBatches(ctx context.Context, req *odwire.BatchesRequest, _ ...grpc.CallOption) error {
	if f.SendBatchesFunc == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.SendBatchesFunc(ctx, req)
}

func (f *fakeTransport) RequestProposal(
	ctx context.Context, req *odwire.ProposalRequest, _ ...grpc.CallOption,
) (*odwire.ProposalResponse, error) {
	if f.RequestProposalFunc == nil {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.RequestProposalFunc(ctx, req)
}

// fixture wires a client to a fake transport
// with channels observing its callback and events.
type fixture struct {
	Transport *fakeTransport

	Executor *odexec.KeyedExecutor
	Pool     *odexec.Pool

	Proposals chan odtypes.ProposalEvent
	Events    chan odevents.Event

	Config odclient.Config
}

func newFixture(t *testing.T, ctx context.Context) *fixture {
	t.Helper()

	log := gtest.NewLogger(t)

	e := odexec.NewKeyedExecutor(ctx, log.With("sys", "executor"), odexec.DefaultKeyedExecutorConfig())
	p := odexec.NewPool(ctx, log.With("sys", "pool"), odexec.PoolConfig{Workers: 4})
	t.Cleanup(e.Wait)
	t.Cleanup(p.Wait)

	f := &fixture{
		Transport: new(fakeTransport),

		Executor: e,
		Pool:     p,

		Proposals: make(chan odtypes.ProposalEvent, 16),
		Events:    make(chan odevents.Event, 64),
	}

	f.Config = odclient.Config{
		Peer: odtypes.Peer{Address: "127.0.0.1:50541", PubKey: []byte{0x01, 0x02}},

		Transport:       f.Transport,
		ProposalFactory: odproposal.NewValidatingFactory(odproposal.DefaultConfig()),
		Callback: func(e odtypes.ProposalEvent) {
			f.Proposals <- e
		},

		Executor: e,
		Pool:     p,

		ProposalTimeout: time.Second,

		Sink: odevents.SinkFunc(func(e odevents.Event) {
			f.Events <- e
		}),
	}

	return f
}

func (f *fixture) NewClient(t *testing.T) *odclient.Client {
	t.Helper()

	c, err := odclient.NewClient(gtest.NewLogger(t), f.Config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// NextEvent returns the next event of the given kind, skipping others.
func (f *fixture) NextEvent(t *testing.T, kind odevents.EventKind) odevents.Event {
	t.Helper()

	for {
		e := gtest.ReceiveSoon(t, f.Events)
		if e.Kind == kind {
			return e
		}
	}
}

func validWireProposal(height uint64, payloads ...string) *odwire.Proposal {
	p := &odwire.Proposal{
		Height:      height,
		CreatedTime: uint64(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()),
	}
	for _, pl := range payloads {
		p.Transactions = append(p.Transactions, &odwire.Transaction{
			Payload: []byte(pl),
			Signatures: []*odwire.Signature{
				{PublicKey: []byte("key"), Signature: []byte("sig:" + pl)},
			},
		})
	}
	return p
}

func txWithPayloadSize(n int, fill byte) odtypes.Transaction {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = fill
	}
	return odtypes.Transaction{
		Payload: payload,
		Signatures: []odtypes.Signature{
			{PubKey: []byte("key"), Signature: []byte{fill}},
		},
	}
}
