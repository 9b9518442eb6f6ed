package odclient_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gordian-engine/godos/internal/gtest"
	"github.com/gordian-engine/godos/odevents"
	"github.com/gordian-engine/godos/odexec"
	"github.com/gordian-engine/godos/odproposal"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/gordian-engine/godos/odwire"
	"github.com/stretchr/testify/require"
)

func TestClient_OnRequestProposal_roundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	f := newFixture(t, ctx)

	reqs := make(chan *odwire.ProposalRequest, 1)
	f.Transport.RequestProposalFunc = func(_ context.Context, req *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
		reqs <- req
		return &odwire.ProposalResponse{Proposal: validWireProposal(5, "tx1", "tx2")}, nil
	}

	c := f.NewClient(t)
	round := odtypes.Round{BlockRound: 5, RejectRound: 0}
	c.OnRequestProposal(round)

	req := gtest.ReceiveSoon(t, reqs)
	require.Equal(t, round, req.Round.Domain())

	e := gtest.ReceiveSoon(t, f.Proposals)
	require.Equal(t, round, e.Round)
	require.NotNil(t, e.Proposal)
	require.Equal(t, uint64(5), e.Proposal.Height)
	require.Len(t, e.Proposal.Transactions, 2)
	require.Equal(t, []byte("tx1"), e.Proposal.Transactions[0].Payload)

	received := f.NextEvent(t, odevents.EventProposalReceived)
	require.Equal(t, uint64(2), received.Count)

	stats := c.Stats()
	require.Equal(t, uint64(1), stats.ProposalRequests)
	require.Equal(t, uint64(1), stats.ProposalsReceived)
	require.Zero(t, stats.ProposalsMissing)

	require.Eventually(t, func() bool {
		_, ok := c.InFlight()
		return !ok
	}, gtest.ScaleMs(500), gtest.ScaleMs(5))

	gtest.NotSendingSoon(t, f.Proposals)
}

func TestClient_OnRequestProposal_noProposal(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		resp *odwire.ProposalResponse
		err  error
	}{
		"absent": {
			resp: &odwire.ProposalResponse{},
		},
		"rejected by factory": {
			resp: &odwire.ProposalResponse{Proposal: validWireProposal(0, "tx1")},
		},
		"RPC error": {
			err: errors.New("unavailable"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			f := newFixture(t, ctx)
			f.Transport.RequestProposalFunc = func(context.Context, *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
				return tc.resp, tc.err
			}

			c := f.NewClient(t)
			round := odtypes.Round{BlockRound: 9, RejectRound: 2}
			c.OnRequestProposal(round)

			e := gtest.ReceiveSoon(t, f.Proposals)
			require.Nil(t, e.Proposal)
			require.Equal(t, round, e.Round)

			f.NextEvent(t, odevents.EventProposalMissing)
			require.Equal(t, uint64(1), c.Stats().ProposalsMissing)

			gtest.NotSendingSoon(t, f.Proposals)
		})
	}
}

func TestClient_OnRequestProposal_timeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	f := newFixture(t, ctx)

	// Transport never responds.
	f.Transport.RequestProposalFunc = nil

	timeout := gtest.ScaleMs(150)
	f.Config.ProposalTimeout = timeout

	c := f.NewClient(t)
	round := odtypes.Round{BlockRound: 3}

	start := time.Now()
	c.OnRequestProposal(round)

	gtest.NotSendingSoon(t, f.Proposals)

	e := gtest.ReceiveOrTimeout(t, f.Proposals, timeout+gtest.ScaleMs(500))
	require.GreaterOrEqual(t, time.Since(start), timeout)
	require.Nil(t, e.Proposal)
	require.Equal(t, round, e.Round)
}

func TestClient_OnRequestProposal_deadlineFromTimeProvider(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	f := newFixture(t, ctx)

	fixedNow := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	f.Config.TimeProvider = func() time.Time { return fixedNow }
	f.Config.ProposalTimeout = 750 * time.Millisecond

	deadlines := make(chan time.Time, 1)
	f.Transport.RequestProposalFunc = func(ctx context.Context, _ *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
		d, ok := ctx.Deadline()
		if !ok {
			return nil, errors.New("no deadline")
		}
		deadlines <- d
		return &odwire.ProposalResponse{}, nil
	}

	c := f.NewClient(t)
	c.OnRequestProposal(odtypes.Round{BlockRound: 1})

	// The parent context has no earlier deadline,
	// so the call's deadline is exactly the provider's time plus the timeout.
	require.Equal(t, fixedNow.Add(750*time.Millisecond), gtest.ReceiveSoon(t, deadlines))
	gtest.ReceiveSoon(t, f.Proposals)
}

func TestClient_OnRequestProposal_supersededNeverSucceeds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	f := newFixture(t, ctx)

	r1 := odtypes.Round{BlockRound: 10}
	r2 := odtypes.Round{BlockRound: 10, RejectRound: 1}

	r1Started := make(chan struct{})
	r1Canceled := make(chan struct{})
	f.Transport.RequestProposalFunc = func(ctx context.Context, req *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
		if req.Round.Domain() == r1 {
			close(r1Started)
			<-ctx.Done()
			close(r1Canceled)

			// Respond successfully anyway, as a late reply would.
			return &odwire.ProposalResponse{Proposal: validWireProposal(10, "stale")}, nil
		}
		return &odwire.ProposalResponse{Proposal: validWireProposal(10, "fresh")}, nil
	}

	c := f.NewClient(t)
	c.OnRequestProposal(r1)
	_ = gtest.ReceiveSoon(t, r1Started)

	inFlight, ok := c.InFlight()
	require.True(t, ok)
	require.Equal(t, r1, inFlight)
	require.False(t, gtest.IsClosed(r1Canceled))

	c.OnRequestProposal(r2)

	inFlight, ok = c.InFlight()
	require.True(t, ok)
	require.Equal(t, r2, inFlight)

	_ = gtest.ReceiveSoon(t, r1Canceled)

	got := map[odtypes.Round]odtypes.ProposalEvent{}
	for range 2 {
		e := gtest.ReceiveSoon(t, f.Proposals)
		got[e.Round] = e
	}
	gtest.NotSendingSoon(t, f.Proposals)

	require.Contains(t, got, r1)
	require.Nil(t, got[r1].Proposal)

	require.Contains(t, got, r2)
	require.NotNil(t, got[r2].Proposal)
	require.Equal(t, []byte("fresh"), got[r2].Proposal.Transactions[0].Payload)

	require.Equal(t, uint64(2), c.Stats().ProposalRequests)
}

func TestClient_OnRequestProposal_supersededDuringBuild(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	f := newFixture(t, ctx)

	r1 := odtypes.Round{BlockRound: 20}
	r2 := odtypes.Round{BlockRound: 20, RejectRound: 1}

	f.Transport.RequestProposalFunc = func(_ context.Context, req *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
		if req.Round.Domain() == r1 {
			return &odwire.ProposalResponse{Proposal: validWireProposal(20, "stale")}, nil
		}
		return &odwire.ProposalResponse{Proposal: validWireProposal(20, "fresh")}, nil
	}

	// Building the stale proposal stalls until the newer request has been reported,
	// so the RPC of the first request completes before it is superseded.
	buildStarted := make(chan struct{})
	releaseBuild := make(chan struct{})
	inner := odproposal.NewValidatingFactory(odproposal.DefaultConfig())
	f.Config.ProposalFactory = odproposal.FactoryFunc(func(p *odwire.Proposal) (odtypes.Proposal, error) {
		if string(p.Transactions[0].Payload) == "stale" {
			close(buildStarted)
			<-releaseBuild
		}
		return inner.Build(p)
	})

	c := f.NewClient(t)
	c.OnRequestProposal(r1)
	_ = gtest.ReceiveSoon(t, buildStarted)

	c.OnRequestProposal(r2)
	e := gtest.ReceiveSoon(t, f.Proposals)
	require.Equal(t, r2, e.Round)
	require.NotNil(t, e.Proposal)
	require.Equal(t, []byte("fresh"), e.Proposal.Transactions[0].Payload)

	close(releaseBuild)

	e = gtest.ReceiveSoon(t, f.Proposals)
	require.Equal(t, r1, e.Round)
	require.Nil(t, e.Proposal)
	gtest.NotSendingSoon(t, f.Proposals)

	stats := c.Stats()
	require.Equal(t, uint64(1), stats.ProposalsReceived)
	require.Equal(t, uint64(1), stats.ProposalsMissing)
}

func TestClient_OnRequestProposal_poolShutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	f := newFixture(t, ctx)

	poolCtx, poolCancel := context.WithCancel(ctx)
	defer poolCancel()
	pool := odexec.NewPool(poolCtx, gtest.NewLogger(t), odexec.PoolConfig{Workers: 1})
	f.Config.Pool = pool

	// Occupy the only worker so the proposal request stays queued.
	blocked := make(chan struct{})
	release := make(chan struct{})
	require.True(t, pool.Submit(func(context.Context) {
		close(blocked)
		<-release
	}))
	_ = gtest.ReceiveSoon(t, blocked)

	c := f.NewClient(t)

	round := odtypes.Round{BlockRound: 30}
	c.OnRequestProposal(round)
	_, ok := c.InFlight()
	require.True(t, ok)

	poolCancel()
	close(release)
	pool.Wait()

	// The queued request still reports, and frees the slot.
	e := gtest.ReceiveSoon(t, f.Proposals)
	require.Equal(t, round, e.Round)
	require.Nil(t, e.Proposal)
	_, ok = c.InFlight()
	require.False(t, ok)

	// Once the pool has stopped, a new request cannot hold the slot.
	c.OnRequestProposal(odtypes.Round{BlockRound: 31})
	_, ok = c.InFlight()
	require.False(t, ok)
	gtest.NotSendingSoon(t, f.Proposals)
}

func TestClient_OnRequestProposal_callbackMayRequestAgain(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	f := newFixture(t, ctx)
	f.Transport.RequestProposalFunc = func(context.Context, *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
		return &odwire.ProposalResponse{}, nil
	}

	var c interface{ OnRequestProposal(odtypes.Round) }
	rounds := make(chan odtypes.Round, 4)
	f.Config.Callback = func(e odtypes.ProposalEvent) {
		rounds <- e.Round
		if e.Round.RejectRound < 2 {
			c.OnRequestProposal(odtypes.Round{BlockRound: e.Round.BlockRound, RejectRound: e.Round.RejectRound + 1})
		}
	}
	client := f.NewClient(t)
	c = client

	client.OnRequestProposal(odtypes.Round{BlockRound: 4})

	for i := range uint32(3) {
		require.Equal(t, odtypes.Round{BlockRound: 4, RejectRound: i}, gtest.ReceiveSoon(t, rounds))
	}
	gtest.NotSendingSoon(t, rounds)
}
