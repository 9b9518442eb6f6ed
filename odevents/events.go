// Package odevents carries notifications from the ordering client
// to whoever is interested in them, typically a metrics backend.
package odevents

import "fmt"

// EventKind distinguishes events.
type EventKind uint8

const (
	_ EventKind = iota // Zero value reserved.

	// A batch send call has completed, successfully or not.
	// Count is the number of transactions in the request.
	EventSendBatchComplete

	// A batch send call failed.
	// Count is the number of transactions that were dropped.
	EventSendBatchFailed

	// A proposal request was issued.
	EventProposalRequested

	// A valid proposal was received.
	// Count is the number of transactions in the proposal.
	EventProposalReceived

	// A proposal request produced no usable proposal.
	EventProposalMissing
)

func (k EventKind) String() string {
	switch k {
	case EventSendBatchComplete:
		return "send_batch_complete"
	case EventSendBatchFailed:
		return "send_batch_failed"
	case EventProposalRequested:
		return "proposal_requested"
	case EventProposalReceived:
		return "proposal_received"
	case EventProposalMissing:
		return "proposal_missing"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a single notification.
type Event struct {
	Kind EventKind

	// ID of the peer the event concerns.
	Peer string

	Count uint64
}

// Sink receives events.
// Notify is called from worker goroutines and must not block for long.
type Sink interface {
	Notify(Event)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Notify(Event) {}

// SinkFunc allows converting a standalone function into a [Sink].
type SinkFunc func(Event)

// Notify implements [Sink].
func (f SinkFunc) Notify(e Event) {
	f(e)
}

// MultiSink forwards each event to every contained sink, in order.
type MultiSink []Sink

// Notify implements [Sink].
func (m MultiSink) Notify(e Event) {
	for _, s := range m {
		s.Notify(e)
	}
}
