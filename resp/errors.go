package resp

import "fmt"

// TypeInvalidError is returned at construction time when an option is
// given a value of a kind the package does not know how to use as a
// factory (spec.md §7's TypeInvalid kind, for the one case Go's static
// typing cannot already rule out: the class-form/callable-form
// duality of the error factories).
type TypeInvalidError struct {
	Message string
}

func (e *TypeInvalidError) Error() string {
	return "resp: type invalid: " + e.Message
}

// RangeInvalidError is returned by Feed when offset/length fall
// outside the supplied data.
type RangeInvalidError struct {
	Message string
}

func (e *RangeInvalidError) Error() string {
	return "resp: range invalid: " + e.Message
}

// ProtocolError is the default protocol-error value: it is what the
// built-in protocol-error factory produces when the wire violates
// RESP framing (bad prefix, non-numeric length, missing trailing CRLF,
// out-of-range integer).
type ProtocolError struct {
	Payload []byte
	Reason  string
}

func (e *ProtocolError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("resp: protocol error: %q", e.Payload)
	}
	return fmt.Sprintf("resp: protocol error: %s (%q)", e.Reason, e.Payload)
}

// ReplyError is the default reply-error value: it is what the
// built-in reply-error factory produces when a "-"-prefixed frame is
// decoded, whether at the top level or nested inside an Array.
type ReplyError struct {
	Payload []byte
}

func (e *ReplyError) Error() string { return string(e.Payload) }

// Args mirrors the single-element argument tuple the Python reader
// this package was modeled on attaches to its reply errors.
func (e *ReplyError) Args() []string { return []string{string(e.Payload)} }

// errIncomplete is parseOne's internal "need more bytes" signal. It
// never escapes the package: Gets translates it into the false/no-op
// return spec.md §4.4 describes.
var errIncomplete = fmt.Errorf("resp: incomplete frame")

// protocolFault is panicked by leaf-level frame decoding when the wire
// violates RESP framing. Reader.Gets is the sole recovery point,
// mirroring how the teacher's ParseRedisClientRequest recovers panics
// raised by its leaf parsers (assertNonEmptyStream, assertStartSymbol)
// into a single returned error.
type protocolFault struct {
	payload []byte
	reason  string
}

func failProtocol(reason string, payload []byte) {
	panic(protocolFault{payload: cloneBytes(payload), reason: reason})
}
