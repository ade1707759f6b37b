// Package resp implements a streaming RESP2 (REdis Serialization
// Protocol) codec: an incremental parser that turns arbitrary byte
// fragments from a transport into fully-formed replies, plus a set of
// pure encoders for building outbound command frames.
//
// The parser is resumable: Feed appends bytes, and each Gets call
// decodes and returns the next complete top-level reply. A
// reply that is only partially present does not block or error — Gets
// simply reports there is nothing ready yet, and the next Feed+Gets
// pair picks up exactly where parsing left off, however deeply nested
// the suspended frame was.
//
// The package does no I/O of its own and is not safe for concurrent
// use by multiple goroutines; a single Reader is meant to be owned by
// whichever goroutine is pulling bytes off one connection.
package resp
