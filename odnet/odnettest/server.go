// Package odnettest contains an in-process ordering service
// for exercising [odnet] clients in tests.
package odnettest

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odwire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Handler is the server side of the ordering service.
type Handler = odwire.OnDemandOrderingServer

// HandlerFuncs adapts optional functions into a [Handler].
// A nil function responds with codes.Unimplemented.
type HandlerFuncs struct {
	odwire.UnimplementedOnDemandOrderingServer

	SendBatchesFunc     func(context.Context, *odwire.BatchesRequest) error
	RequestProposalFunc func(context.Context, *odwire.ProposalRequest) (*odwire.ProposalResponse, error)
}

func (h HandlerFuncs) SendBatches(ctx context.Context, req *odwire.BatchesRequest) (*emptypb.Empty, error) {
	if h.SendBatchesFunc == nil {
		return h.UnimplementedOnDemandOrderingServer.SendBatches(ctx, req)
	}
	if err := h.SendBatchesFunc(ctx, req); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (h HandlerFuncs) RequestProposal(ctx context.Context, req *odwire.ProposalRequest) (*odwire.ProposalResponse, error) {
	if h.RequestProposalFunc == nil {
		return h.UnimplementedOnDemandOrderingServer.RequestProposal(ctx, req)
	}
	return h.RequestProposalFunc(ctx, req)
}

// Server is an ordering service listening on an in-memory connection.
type Server struct {
	lis *bufconn.Listener
	srv *grpc.Server

	done chan struct{}
}

const bufSize = 8 << 20

// NewServer starts serving h in the background.
// The server stops when ctx is canceled; call Wait to block until it has stopped.
func NewServer(ctx context.Context, log *slog.Logger, h Handler) *Server {
	s := &Server{
		lis: bufconn.Listen(bufSize),
		srv: grpc.NewServer(
			grpc.MaxRecvMsgSize(odnet.DefaultMaxMessageSize),
		),
		done: make(chan struct{}),
	}
	odwire.RegisterOnDemandOrderingServer(s.srv, h)

	go s.serve(log)
	go s.waitForShutdown(ctx)

	return s
}

// Wait blocks until the server has stopped.
func (s *Server) Wait() {
	<-s.done
}

func (s *Server) serve(log *slog.Logger) {
	defer close(s.done)

	if err := s.srv.Serve(s.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		log.Info("Ordering test server shutting down due to error", "err", err)
	}
}

func (s *Server) waitForShutdown(ctx context.Context) {
	select {
	case <-s.done:
		// s.serve returned on its own, nothing left to do here.
		return
	case <-ctx.Done():
		s.srv.Stop()
	}
}

// Dialer returns a dialer whose connections reach this server,
// regardless of the requested address.
func (s *Server) Dialer() odnet.Dialer {
	return odnet.DialerFunc(func(string) (*grpc.ClientConn, error) {
		return grpc.NewClient(
			"passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return s.lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
	})
}
