package odnet_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gordian-engine/godos/internal/gtest"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odnet/odnettest"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/gordian-engine/godos/odwire"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

var testPeer = odtypes.Peer{Address: "bufnet", PubKey: []byte{0xaa, 0xbb}}

func newClient(t *testing.T, ctx context.Context, h odnettest.Handler) odnet.OrderingClient {
	t.Helper()

	srv := odnettest.NewServer(ctx, gtest.NewLogger(t), h)
	t.Cleanup(srv.Wait)

	f := odnet.NewGRPCClientFactory(srv.Dialer())
	t.Cleanup(func() { _ = f.Close() })

	c, err := f.CreateClient(testPeer)
	require.NoError(t, err)
	return c
}

func TestGRPCClient_SendBatches(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	received := make(chan *odwire.BatchesRequest, 1)
	c := newClient(t, ctx, odnettest.HandlerFuncs{
		SendBatchesFunc: func(_ context.Context, req *odwire.BatchesRequest) error {
			received <- req
			return nil
		},
	})

	req := &odwire.BatchesRequest{
		Transactions: []*odwire.Transaction{
			{Payload: []byte("tx1")},
			{Payload: []byte("tx2"), Signatures: []*odwire.Signature{{PublicKey: []byte("k"), Signature: []byte("s")}}},
		},
	}

	var p peer.Peer
	require.NoError(t, c.SendBatches(ctx, req, grpc.Peer(&p)))
	got := gtest.ReceiveSoon(t, received)
	require.True(t, proto.Equal(req, got), "got %v", got)
	require.NotNil(t, p.Addr)
}

func TestGRPCClient_SendBatches_error(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	c := newClient(t, ctx, odnettest.HandlerFuncs{
		SendBatchesFunc: func(context.Context, *odwire.BatchesRequest) error {
			return status.Error(codes.ResourceExhausted, "queue full")
		},
	})

	err := c.SendBatches(ctx, &odwire.BatchesRequest{})
	require.Error(t, err)
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestGRPCClient_RequestProposal(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	want := &odwire.Proposal{
		Height:       6,
		CreatedTime:  1_700_000_000_000,
		Transactions: []*odwire.Transaction{{Payload: []byte("tx")}},
	}
	c := newClient(t, ctx, odnettest.HandlerFuncs{
		RequestProposalFunc: func(_ context.Context, req *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
			if req.Round.BlockRound != 5 {
				return &odwire.ProposalResponse{}, nil
			}
			return &odwire.ProposalResponse{Proposal: want}, nil
		},
	})

	res, err := c.RequestProposal(ctx, odwire.NewProposalRequest(odtypes.Round{BlockRound: 5}))
	require.NoError(t, err)
	require.True(t, res.HasProposal())
	require.True(t, proto.Equal(want, res.Proposal), "got %v", res.Proposal)

	res, err = c.RequestProposal(ctx, odwire.NewProposalRequest(odtypes.Round{BlockRound: 6}))
	require.NoError(t, err)
	require.False(t, res.HasProposal())
}

func TestGRPCClient_RequestProposal_deadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	c := newClient(t, ctx, odnettest.HandlerFuncs{
		RequestProposalFunc: func(ctx context.Context, _ *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})

	callCtx, callCancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer callCancel()

	start := time.Now()
	_, err := c.RequestProposal(callCtx, odwire.NewProposalRequest(odtypes.Round{}))
	require.Error(t, err)
	require.Equal(t, codes.DeadlineExceeded, status.Code(err))
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestGRPCClientFactory_reusesConnections(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	srv := odnettest.NewServer(ctx, gtest.NewLogger(t), odnettest.HandlerFuncs{})
	defer srv.Wait()
	defer cancel()

	var dials atomic.Int32
	f := odnet.NewGRPCClientFactory(odnet.DialerFunc(func(addr string) (*grpc.ClientConn, error) {
		dials.Add(1)
		return srv.Dialer().Dial(addr)
	}))
	defer f.Close()

	_, err := f.CreateClient(testPeer)
	require.NoError(t, err)
	_, err = f.CreateClient(testPeer)
	require.NoError(t, err)
	require.Equal(t, int32(1), dials.Load())

	other := odtypes.Peer{Address: "bufnet", PubKey: []byte{0x01}}
	_, err = f.CreateClient(other)
	require.NoError(t, err)
	require.Equal(t, int32(2), dials.Load())

	f.Disconnect(testPeer)
	_, err = f.CreateClient(testPeer)
	require.NoError(t, err)
	require.Equal(t, int32(3), dials.Load())
}

func TestGRPCClientFactory_redialsOnAddressChange(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	srv := odnettest.NewServer(ctx, gtest.NewLogger(t), odnettest.HandlerFuncs{})
	defer srv.Wait()
	defer cancel()

	var mu sync.Mutex
	var dialed []string
	var conns []*grpc.ClientConn
	f := odnet.NewGRPCClientFactory(odnet.DialerFunc(func(addr string) (*grpc.ClientConn, error) {
		cc, err := srv.Dialer().Dial(addr)
		if err != nil {
			return nil, err
		}
		mu.Lock()
		defer mu.Unlock()
		dialed = append(dialed, addr)
		conns = append(conns, cc)
		return cc, nil
	}))
	defer f.Close()

	moved := testPeer
	moved.Address = "bufnet-moved"

	_, err := f.CreateClient(testPeer)
	require.NoError(t, err)
	_, err = f.CreateClient(moved)
	require.NoError(t, err)
	_, err = f.CreateClient(moved)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"bufnet", "bufnet-moved"}, dialed)

	// The connection to the old address was closed.
	require.Equal(t, connectivity.Shutdown, conns[0].GetState())
	require.NotEqual(t, connectivity.Shutdown, conns[1].GetState())
}

func TestGRPCClientFactory_errors(t *testing.T) {
	t.Parallel()

	dialErr := errors.New("no route to peer")
	f := odnet.NewGRPCClientFactory(odnet.DialerFunc(func(string) (*grpc.ClientConn, error) {
		return nil, dialErr
	}))

	_, err := f.CreateClient(testPeer)
	require.ErrorIs(t, err, dialErr)

	_, err = f.CreateClient(odtypes.Peer{PubKey: []byte{1}})
	require.ErrorContains(t, err, "peer address required")
}

func TestInsecureDialer(t *testing.T) {
	t.Parallel()

	cc, err := odnet.InsecureDialer{}.Dial("127.0.0.1:1")
	require.NoError(t, err)
	require.NoError(t, cc.Close())
}
