package odwire

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// TransactionFieldSize reports how many bytes tx adds
// to the encoding of a [BatchesRequest] that carries it.
// Summing it over every transaction gives proto.Size of the request.
func TransactionFieldSize(tx *Transaction) int {
	n := proto.Size(tx)
	return protowire.SizeTag(1) + protowire.SizeBytes(n)
}

// HasProposal reports whether the peer returned a proposal.
// An empty but present proposal still counts.
func (r *ProposalResponse) HasProposal() bool {
	return r.GetProposal() != nil
}
