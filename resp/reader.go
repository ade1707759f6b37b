package resp

import "fmt"

// Reader incrementally decodes a RESP2 byte stream. It is
// single-owner and not safe for concurrent use: Feed and Gets are
// meant to be called from whichever goroutine is shuttling bytes off
// one connection (spec.md §5).
type Reader struct {
	buf   buffer
	stack []pendingFrame

	protocolErrorFactory ProtocolErrorFactory
	replyErrorFactory    ReplyErrorFactory
	decode               func([]byte) (Reply, error)
	maxBuffered          int

	// AcceptInline enables the legacy human-typed command form for
	// lines that don't start with one of the five RESP sigils
	// (spec.md §4.3). It is a plain mutable field, not a constructor
	// option, because the original reader exposes it the same way.
	AcceptInline bool
}

// Option configures a Reader at construction time.
type Option func(*Reader) error

// WithProtocolErrorFactory sets the factory used to build the error
// Gets returns for a malformed frame. factory must be a
// func([]byte) error or a value implementing ErrorClass; anything
// else makes NewReader fail with a *TypeInvalidError.
func WithProtocolErrorFactory(factory interface{}) Option {
	return func(r *Reader) error {
		f, err := resolveProtocolErrorFactory(factory)
		if err != nil {
			return err
		}
		r.protocolErrorFactory = f
		return nil
	}
}

// WithReplyErrorFactory sets the factory used to build the reply value
// for a "-"-prefixed frame. factory must be a func([]byte) Reply or a
// value implementing ReplyErrorClass (an ErrorClass also qualifies);
// anything else makes NewReader fail with a *TypeInvalidError.
func WithReplyErrorFactory(factory interface{}) Option {
	return func(r *Reader) error {
		f, err := resolveReplyErrorFactory(factory)
		if err != nil {
			return err
		}
		r.replyErrorFactory = f
		return nil
	}
}

// WithEncoding makes bulk string payloads pass through decode before
// being handed back as the reply value. A nil decode (the default)
// means "deliver raw bytes" (spec.md §3). Any error decode returns
// surfaces from Gets unwrapped, per spec.md §7.
func WithEncoding(decode func(payload []byte) (string, error)) Option {
	return func(r *Reader) error {
		if decode == nil {
			r.decode = nil
			return nil
		}
		r.decode = func(payload []byte) (Reply, error) {
			s, err := decode(payload)
			if err != nil {
				return nil, err
			}
			return s, nil
		}
		return nil
	}
}

// WithMaxBufferedBytes bounds how many unconsumed bytes Feed will
// accept before reporting a protocol error, guarding against a peer
// that announces a huge frame and never completes it (spec.md §5's
// optional byte-limit guard). 0 (the default) means unlimited.
func WithMaxBufferedBytes(n int) Option {
	return func(r *Reader) error {
		if n < 0 {
			return &RangeInvalidError{Message: "max buffered bytes must be >= 0"}
		}
		r.maxBuffered = n
		return nil
	}
}

// NewReader constructs a Reader, applying opts in order. It fails only
// when an option itself fails validation (spec.md §9: "validate at
// construction, don't defer to first use").
func NewReader(opts ...Option) (*Reader, error) {
	r := &Reader{
		protocolErrorFactory: defaultProtocolErrorFactory,
		replyErrorFactory:    defaultReplyErrorFactory,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Feed appends data[offset:offset+length] to the Reader's buffer.
// With no extra arguments the whole of data is fed; one extra argument
// is treated as offset (through the end of data); two are offset and
// length. Feed never advances parsing; it only makes more bytes
// available to the next Gets call.
func (r *Reader) Feed(data []byte, offsetLength ...int) error {
	offset, length := 0, len(data)
	switch len(offsetLength) {
	case 0:
	case 1:
		offset = offsetLength[0]
		length = len(data) - offset
	case 2:
		offset = offsetLength[0]
		length = offsetLength[1]
	default:
		return &RangeInvalidError{Message: "Feed accepts at most (offset, length)"}
	}
	if offset < 0 || offset > len(data) || length < 0 || offset+length > len(data) {
		return &RangeInvalidError{
			Message: fmt.Sprintf("offset %d length %d out of range for %d-byte input", offset, length, len(data)),
		}
	}
	if r.maxBuffered > 0 && r.buf.len()+length > r.maxBuffered {
		return r.protocolErrorFactory([]byte(fmt.Sprintf("feed would exceed max buffered bytes (%d)", r.maxBuffered)))
	}
	r.buf.append(data[offset : offset+length])
	return nil
}

// Gets returns the next fully-parsed top-level reply. ok is false
// when there is not yet enough input for one (the "no complete reply"
// sentinel of spec.md §4.4/§6); this is not an error and the Reader
// remains fully usable afterwards. err is non-nil only when the wire
// violated RESP framing, in which case the Reader's further behavior
// is unspecified (spec.md §4.4) and callers are expected to discard
// it.
//
// Gets drives parseOne exactly once per call, so no separate reply
// queue is materialized: with a single frame decoded per call there is
// nothing for a FIFO to hold that the cursor/stack state doesn't
// already represent between calls.
func (r *Reader) Gets() (reply Reply, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			fault, isFault := rec.(protocolFault)
			if !isFault {
				panic(rec)
			}
			err = r.protocolErrorFactory(fault.payload)
			reply, ok = nil, false
		}
	}()

	value, perr := r.parseOne()
	if perr == errIncomplete {
		return nil, false, nil
	}
	if perr != nil {
		return nil, false, perr
	}
	if len(r.stack) == 0 {
		r.buf.maybeCompact()
	}
	return value, true, nil
}
