// Package odproposal turns wire proposals received from an ordering service
// into validated domain proposals.
package odproposal

import (
	"fmt"
	"strings"

	"github.com/gordian-engine/godos/odtypes"
	"github.com/gordian-engine/godos/odwire"
)

// Factory builds a domain proposal from its wire form.
//
// Build returns a [*ValidationError] when the proposal is well-formed on the wire
// but not acceptable as a proposal.
type Factory interface {
	Build(*odwire.Proposal) (odtypes.Proposal, error)
}

// FactoryFunc allows converting a standalone function into a [Factory].
type FactoryFunc func(*odwire.Proposal) (odtypes.Proposal, error)

// Build implements [Factory].
func (f FactoryFunc) Build(p *odwire.Proposal) (odtypes.Proposal, error) {
	return f(p)
}

// ValidationError lists every reason a proposal was rejected.
type ValidationError struct {
	Height  uint64
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"invalid proposal at height %d: %s",
		e.Height, strings.Join(e.Reasons, "; "),
	)
}

// Config configures a [ValidatingFactory].
type Config struct {
	// Maximum number of transactions in a single proposal.
	// Zero means unlimited.
	MaxTransactions int
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		MaxTransactions: 10_000,
	}
}

var _ Factory = ValidatingFactory{}

// ValidatingFactory is a [Factory] that checks structural validity
// before converting the proposal.
// It does not verify signatures.
type ValidatingFactory struct {
	cfg Config
}

// NewValidatingFactory returns a ValidatingFactory using cfg.
func NewValidatingFactory(cfg Config) ValidatingFactory {
	return ValidatingFactory{cfg: cfg}
}

// Build implements [Factory].
func (f ValidatingFactory) Build(p *odwire.Proposal) (odtypes.Proposal, error) {
	if p == nil {
		return odtypes.Proposal{}, &ValidationError{Reasons: []string{"missing proposal"}}
	}

	var reasons []string
	if p.Height == 0 {
		reasons = append(reasons, "height must be positive")
	}
	if p.CreatedTime == 0 {
		reasons = append(reasons, "created time must be set")
	}
	if limit := f.cfg.MaxTransactions; limit > 0 && len(p.Transactions) > limit {
		reasons = append(reasons, fmt.Sprintf(
			"too many transactions: %d > %d", len(p.Transactions), limit,
		))
	}

	txs := make([]odtypes.Transaction, len(p.Transactions))
	seen := make(map[[32]byte]int, len(p.Transactions))
	for i, wtx := range p.Transactions {
		tx := wtx.Domain()
		txs[i] = tx

		if len(tx.Payload) == 0 {
			reasons = append(reasons, fmt.Sprintf("transaction %d: empty payload", i))
			continue
		}
		if len(tx.Signatures) == 0 {
			reasons = append(reasons, fmt.Sprintf("transaction %d: no signatures", i))
		}

		h := tx.Hash()
		if j, dup := seen[h]; dup {
			reasons = append(reasons, fmt.Sprintf("transaction %d duplicates transaction %d", i, j))
			continue
		}
		seen[h] = i
	}

	if len(reasons) > 0 {
		return odtypes.Proposal{}, &ValidationError{Height: p.Height, Reasons: reasons}
	}

	return odtypes.Proposal{
		Height:       p.Height,
		CreatedTime:  p.CreatedAt(),
		Transactions: txs,
	}, nil
}
