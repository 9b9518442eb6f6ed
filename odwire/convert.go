package odwire

import (
	"time"

	"github.com/gordian-engine/godos/odtypes"
)

// NewTransaction converts a domain transaction to its wire form.
// The returned value shares byte slices with tx.
func NewTransaction(tx odtypes.Transaction) *Transaction {
	out := &Transaction{Payload: tx.Payload}
	if len(tx.Signatures) > 0 {
		out.Signatures = make([]*Signature, len(tx.Signatures))
		for i, s := range tx.Signatures {
			out.Signatures[i] = &Signature{PublicKey: s.PubKey, Signature: s.Signature}
		}
	}
	return out
}

// Domain converts tx back to a domain transaction.
func (tx *Transaction) Domain() odtypes.Transaction {
	out := odtypes.Transaction{Payload: tx.Payload}
	if len(tx.Signatures) > 0 {
		out.Signatures = make([]odtypes.Signature, len(tx.Signatures))
		for i, s := range tx.Signatures {
			out.Signatures[i] = odtypes.Signature{PubKey: s.PublicKey, Signature: s.Signature}
		}
	}
	return out
}

// NewProposalRequest returns a request for the proposal of round.
func NewProposalRequest(round odtypes.Round) *ProposalRequest {
	return &ProposalRequest{
		Round: &ProposalRound{
			BlockRound:  round.BlockRound,
			RejectRound: round.RejectRound,
		},
	}
}

// Domain converts r to a domain round.
func (r *ProposalRound) Domain() odtypes.Round {
	return odtypes.Round{BlockRound: r.BlockRound, RejectRound: r.RejectRound}
}

// NewProposal converts a domain proposal to its wire form.
// CreatedTime is truncated to milliseconds.
func NewProposal(p odtypes.Proposal) *Proposal {
	out := &Proposal{
		Height: p.Height,
	}
	if !p.CreatedTime.IsZero() {
		out.CreatedTime = uint64(p.CreatedTime.UnixMilli())
	}
	if len(p.Transactions) > 0 {
		out.Transactions = make([]*Transaction, len(p.Transactions))
		for i, tx := range p.Transactions {
			out.Transactions[i] = NewTransaction(tx)
		}
	}
	return out
}

// CreatedAt returns the proposal creation time.
func (p *Proposal) CreatedAt() time.Time {
	return time.UnixMilli(int64(p.CreatedTime)).UTC()
}
