package odclient

import (
	"context"

	"github.com/google/uuid"
	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/gordian-engine/godos/odwire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// OnBatches forwards the transactions of batches to the peer.
//
// Transactions are packed in order into requests.
// A request is closed off as soon as its encoded size reaches [odwire.MaxBatchesRequestSize],
// so a single request may exceed the limit by its final transaction.
// Requests are sent in order through the client's executor; OnBatches itself does not block.
// Send failures are logged and counted but never reported to the caller.
func (c *Client) OnBatches(batches []odtypes.Batch) {
	if _, ok := c.live.resolve(); !ok {
		return
	}

	chunk := new(odwire.BatchesRequest)
	size := 0
	for _, b := range batches {
		for _, tx := range b.Transactions {
			wtx := odwire.NewTransaction(tx)
			chunk.Transactions = append(chunk.Transactions, wtx)
			size += odwire.TransactionFieldSize(wtx)

			if size >= odwire.MaxBatchesRequestSize {
				c.submitBatches(chunk)
				chunk = new(odwire.BatchesRequest)
				size = 0
			}
		}
	}

	if len(chunk.Transactions) > 0 {
		c.submitBatches(chunk)
	}
}

func (c *Client) submitBatches(req *odwire.BatchesRequest) {
	s := batchSend{
		peerID: c.peerID,
		now:    c.now,
		live:   c.live,
		stats:  c.stats,
		req:    req,
	}
	c.executor.ExecuteFor(c.peerID, func(ctx context.Context) {
		_ = s.run(ctx)
	})
}

// batchSend is a single scheduled batches request.
type batchSend struct {
	peerID string
	now    TimeProvider
	live   *liveRef
	stats  *counters

	req *odwire.BatchesRequest
}

// run sends the request and reports whether it succeeded.
// A send for a closed client is dropped and counts as success.
func (s batchSend) run(ctx context.Context) bool {
	live, ok := s.live.resolve()
	if !ok {
		return true
	}

	ctx, cancel := context.WithDeadline(ctx, s.now().Add(SendBatchesTimeout))
	defer cancel()

	n := uint64(len(s.req.Transactions))
	log := live.log.With("request_id", uuid.NewString())
	log.Info("Sending batches", "tx_count", n)

	var remote peer.Peer
	s.stats.activeSends.Add(1)
	err := live.transport.SendBatches(ctx, s.req, grpc.WaitForReady(false), grpc.Peer(&remote))
	s.stats.activeSends.Add(^uint32(0))

	complete := odevents.Event{
		Kind:  odevents.EventSendBatchComplete,
		Peer:  s.peerID,
		Count: n,
	}

	if err != nil {
		log.Warn(
			"RPC failed",
			"remote", remoteAddr(&remote),
			"code", status.Code(err),
			"err", err,
		)
		s.stats.sendErrors.Add(1)
		live.sink.Notify(complete)
		live.sink.Notify(odevents.Event{
			Kind:  odevents.EventSendBatchFailed,
			Peer:  s.peerID,
			Count: n,
		})
		return false
	}

	log.Info("RPC succeeded", "remote", remoteAddr(&remote))
	s.stats.batchesSent.Add(1)
	s.stats.txSent.Add(n)
	live.sink.Notify(complete)
	return true
}

func remoteAddr(p *peer.Peer) string {
	if p.Addr == nil {
		return ""
	}
	return p.Addr.String()
}
