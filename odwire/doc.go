// Package odwire contains the wire messages and gRPC stubs
// of the on-demand ordering service, generated from ordering.proto,
// plus conversions to and from the [odtypes] domain types.
package odwire

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ordering.proto

// MaxBatchesRequestSize is the encoded size at which an outgoing
// [BatchesRequest] must be flushed.
const MaxBatchesRequestSize = 2 << 20
