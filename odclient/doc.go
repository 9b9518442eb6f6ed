// Package odclient is the consensus-side client of a remote on-demand ordering service.
//
// A [Client] is bound to a single peer. It does two things:
//
//   - [Client.OnBatches] forwards transaction batches to the peer,
//     split into requests no larger than [odwire.MaxBatchesRequestSize].
//     Sends to the same peer are delivered in order, one at a time,
//     through a shared [odexec.KeyedExecutor].
//   - [Client.OnRequestProposal] asks the peer for its proposal of a round.
//     Only the most recent request is live; requesting a new round
//     cancels the previous request.
//     Each request results in exactly one call to the configured callback,
//     unless the client is closed first.
//
// Neither method blocks. All network calls happen on executor or pool goroutines.
//
// Scheduled work never keeps a closed client's collaborators usable:
// each task re-resolves them when it runs, and does nothing if [Client.Close]
// has been called in the meantime.
package odclient
