package odclient

import "sync/atomic"

// Stats is a point-in-time snapshot of a client's counters.
type Stats struct {
	BatchesSent uint64 `json:"batches_sent"`
	TxSent      uint64 `json:"tx_sent"`
	SendErrors  uint64 `json:"send_errors"`
	ActiveSends uint32 `json:"active_sends"`

	ProposalRequests  uint64 `json:"proposal_requests"`
	ProposalsReceived uint64 `json:"proposals_received"`
	ProposalsMissing  uint64 `json:"proposals_missing"`
}

// counters is shared between a client and its scheduled tasks.
type counters struct {
	batchesSent atomic.Uint64
	txSent      atomic.Uint64
	sendErrors  atomic.Uint64
	activeSends atomic.Uint32

	proposalRequests  atomic.Uint64
	proposalsReceived atomic.Uint64
	proposalsMissing  atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		BatchesSent: c.batchesSent.Load(),
		TxSent:      c.txSent.Load(),
		SendErrors:  c.sendErrors.Load(),
		ActiveSends: c.activeSends.Load(),

		ProposalRequests:  c.proposalRequests.Load(),
		ProposalsReceived: c.proposalsReceived.Load(),
		ProposalsMissing:  c.proposalsMissing.Load(),
	}
}
