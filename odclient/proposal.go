package odclient

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/gordian-engine/godos/odwire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// OnRequestProposal asks the peer for its proposal for round.
//
// Any previous request still outstanding is cancelled;
// it will be reported to the callback with a nil proposal.
// The outcome of this request is reported to the callback exactly once,
// from a pool goroutine, unless the client is closed first.
func (c *Client) OnRequestProposal(round odtypes.Round) {
	h := c.slot.replace(c.ctx, round)
	if h == nil {
		// Closed.
		return
	}

	c.stats.proposalRequests.Add(1)

	r := proposalRequest{
		peerID:  c.peerID,
		now:     c.now,
		timeout: c.timeout,
		live:    c.live,
		slot:    c.slot,
		stats:   c.stats,

		handle: h,
		req:    odwire.NewProposalRequest(round),
	}
	if !c.pool.Submit(r.run) {
		// The pool has shut down; nothing will report this round.
		c.slot.finish(h)
	}
}

// proposalRequest is a single scheduled proposal request.
type proposalRequest struct {
	peerID  string
	now     TimeProvider
	timeout time.Duration
	live    *liveRef
	slot    *requestSlot
	stats   *counters

	handle *requestHandle
	req    *odwire.ProposalRequest
}

func (r proposalRequest) run(poolCtx context.Context) {
	defer r.slot.finish(r.handle)

	live, ok := r.live.resolve()
	if !ok {
		return
	}

	// Pool shutdown also ends the request.
	stop := context.AfterFunc(poolCtx, r.handle.cancel)
	defer stop()

	ctx, cancel := context.WithDeadline(r.handle.ctx, r.now().Add(r.timeout))
	defer cancel()

	round := r.handle.round
	log := live.log.With("round", round, "request_id", uuid.NewString())

	live.sink.Notify(odevents.Event{
		Kind: odevents.EventProposalRequested,
		Peer: r.peerID,
	})
	log.Info("Requesting proposal")

	var remote peer.Peer
	resp, err := live.transport.RequestProposal(ctx, r.req, grpc.WaitForReady(true), grpc.Peer(&remote))
	if err != nil {
		log.Warn(
			"RPC failed",
			"remote", remoteAddr(&remote),
			"code", status.Code(err),
			"err", err,
		)
		r.deliver(nil)
		return
	}

	log.Info("RPC succeeded", "remote", remoteAddr(&remote))

	if r.handle.ctx.Err() != nil {
		log.Info("Dropping response to superseded request")
		r.deliver(nil)
		return
	}

	if !resp.HasProposal() {
		r.deliver(nil)
		return
	}

	p, err := live.factory.Build(resp.Proposal)
	if err != nil {
		log.Info("Rejected proposal", "err", err)
		r.deliver(nil)
		return
	}

	r.deliver(&p)
}

// deliver reports the outcome through the callback,
// if the client is still open.
// A proposal for a request that has since been superseded is reported as missing.
func (r proposalRequest) deliver(p *odtypes.Proposal) {
	live, ok := r.live.resolve()
	if !ok {
		return
	}

	if p != nil && !r.slot.isCurrent(r.handle) {
		live.log.Info("Dropping proposal of superseded request", "round", r.handle.round)
		p = nil
	}

	e := odevents.Event{Kind: odevents.EventProposalMissing, Peer: r.peerID}
	if p == nil {
		r.stats.proposalsMissing.Add(1)
	} else {
		e.Kind = odevents.EventProposalReceived
		e.Count = uint64(len(p.Transactions))
		r.stats.proposalsReceived.Add(1)
	}
	live.sink.Notify(e)

	_ = r.live.deliver(odtypes.ProposalEvent{Proposal: p, Round: r.handle.round})
}
