// Package odnet is the transport layer between a consensus node
// and remote on-demand ordering services.
package odnet

import (
	"context"
	"fmt"

	"github.com/gordian-engine/godos/odwire"
	"google.golang.org/grpc"
)

// OrderingClient is a handle to a single remote ordering service.
//
// Both methods block until the call completes or ctx is done.
type OrderingClient interface {
	SendBatches(ctx context.Context, req *odwire.BatchesRequest, opts ...grpc.CallOption) error
	RequestProposal(ctx context.Context, req *odwire.ProposalRequest, opts ...grpc.CallOption) (*odwire.ProposalResponse, error)
}

var _ OrderingClient = (*GRPCClient)(nil)

// GRPCClient is an [OrderingClient] backed by the generated
// ordering service stub.
type GRPCClient struct {
	stub odwire.OnDemandOrderingClient
}

// NewGRPCClient returns a GRPCClient issuing calls on cc.
// The caller retains ownership of cc.
func NewGRPCClient(cc grpc.ClientConnInterface) *GRPCClient {
	return &GRPCClient{stub: odwire.NewOnDemandOrderingClient(cc)}
}

// SendBatches implements [OrderingClient].
func (c *GRPCClient) SendBatches(
	ctx context.Context, req *odwire.BatchesRequest, opts ...grpc.CallOption,
) error {
	if _, err := c.stub.SendBatches(ctx, req, opts...); err != nil {
		return fmt.Errorf("SendBatches failed: %w", err)
	}
	return nil
}

// RequestProposal implements [OrderingClient].
func (c *GRPCClient) RequestProposal(
	ctx context.Context, req *odwire.ProposalRequest, opts ...grpc.CallOption,
) (*odwire.ProposalResponse, error) {
	res, err := c.stub.RequestProposal(ctx, req, opts...)
	if err != nil {
		return nil, fmt.Errorf("RequestProposal failed: %w", err)
	}
	return res, nil
}
