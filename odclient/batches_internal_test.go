package odclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gordian-engine/godos/internal/gtest"
	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odwire"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type sendFunc func(context.Context, *odwire.BatchesRequest) error

func (f sendFunc) SendBatches(ctx context.Context, req *odwire.BatchesRequest, _ ...grpc.CallOption) error {
	return f(ctx, req)
}

func (sendFunc) RequestProposal(context.Context, *odwire.ProposalRequest, ...grpc.CallOption) (*odwire.ProposalResponse, error) {
	return nil, errors.New("not supported")
}

var _ odnet.OrderingClient = sendFunc(nil)

func TestBatchSend_run(t *testing.T) {
	t.Parallel()

	now := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
	req := &odwire.BatchesRequest{Transactions: []*odwire.Transaction{{Payload: []byte("p")}}}

	newSend := func(fn sendFunc) batchSend {
		return batchSend{
			peerID: "peer",
			now:    func() time.Time { return now },
			live: newLiveRef(&collaborators{
				transport: fn,
				log:       gtest.NewLogger(t),
				sink:      odevents.NopSink{},
			}),
			stats: new(counters),
			req:   req,
		}
	}

	t.Run("success", func(t *testing.T) {
		s := newSend(func(ctx context.Context, _ *odwire.BatchesRequest) error {
			d, ok := ctx.Deadline()
			require.True(t, ok)
			require.Equal(t, now.Add(SendBatchesTimeout), d)
			return nil
		})
		require.True(t, s.run(t.Context()))
		require.Equal(t, uint64(1), s.stats.txSent.Load())
	})

	t.Run("failure", func(t *testing.T) {
		s := newSend(func(context.Context, *odwire.BatchesRequest) error {
			return errors.New("boom")
		})
		require.False(t, s.run(t.Context()))
		require.Equal(t, uint64(1), s.stats.sendErrors.Load())
	})

	t.Run("closed", func(t *testing.T) {
		s := newSend(func(context.Context, *odwire.BatchesRequest) error {
			t.Error("transport used after close")
			return nil
		})
		s.live.clear()
		require.True(t, s.run(t.Context()))
	})
}
