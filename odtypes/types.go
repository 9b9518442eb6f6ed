// Package odtypes contains the domain values exchanged between a consensus node
// and a remote on-demand ordering service.
package odtypes

import (
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Peer identifies a remote ordering service.
// A Peer must not be modified after it is handed to a client.
type Peer struct {
	// Network address to dial, e.g. "10.0.0.5:10001".
	Address string

	// Public key of the peer.
	// The hex encoding of the key is the peer's stable identity.
	PubKey []byte
}

// ID returns the stable identifier of the peer:
// the lowercase hex encoding of its public key.
//
// If the peer has no public key, the address is used instead.
func (p Peer) ID() string {
	if len(p.PubKey) == 0 {
		return p.Address
	}
	return hex.EncodeToString(p.PubKey)
}

func (p Peer) String() string {
	return fmt.Sprintf("%s@%s", p.ID(), p.Address)
}

// Signature is a single signature over a transaction payload.
type Signature struct {
	PubKey    []byte
	Signature []byte
}

// Transaction is an opaque, already-serialized transaction payload
// along with its signatures.
type Transaction struct {
	Payload    []byte
	Signatures []Signature
}

// Hash returns the BLAKE2b-256 hash of the transaction payload.
func (tx Transaction) Hash() [blake2b.Size256]byte {
	return blake2b.Sum256(tx.Payload)
}

// Batch is an ordered group of transactions that must stay together.
type Batch struct {
	Transactions []Transaction
}

// TransactionCount returns the total number of transactions in batches.
func TransactionCount(batches []Batch) int {
	n := 0
	for _, b := range batches {
		n += len(b.Transactions)
	}
	return n
}

// Round identifies the consensus round for which a proposal is requested.
//
// Rounds are not compared by value when requesting proposals;
// the most recently requested round is always the current one.
type Round struct {
	BlockRound  uint64
	RejectRound uint32
}

func (r Round) String() string {
	return fmt.Sprintf("(%d, %d)", r.BlockRound, r.RejectRound)
}

// Proposal is the ordering service's proposed set of transactions for a round.
type Proposal struct {
	Height       uint64
	CreatedTime  time.Time
	Transactions []Transaction
}

// ProposalEvent is the result of a single proposal request.
// A nil Proposal means no usable proposal was obtained.
type ProposalEvent struct {
	Proposal *Proposal
	Round    Round
}
