package resp

import "fmt"

// ProtocolErrorFactory turns the payload behind a synchronous parse
// failure into the error Gets returns.
type ProtocolErrorFactory func(payload []byte) error

// ReplyErrorFactory turns the payload of a "-"-prefixed frame into the
// reply value Gets returns for it. The result need not implement
// error: spec.md §4.5 allows any callable whose return value is used
// verbatim.
type ReplyErrorFactory func(payload []byte) Reply

// ErrorClass models spec.md §4.5's "class form" factory: a
// constructible type whose zero value can build a populated error for
// a payload. Passing a value implementing ErrorClass to
// WithProtocolErrorFactory mirrors passing a class (rather than a
// plain function) as the protocolError option of the original reader.
type ErrorClass interface {
	NewFromPayload(payload []byte) error
}

// ReplyErrorClass is the ErrorClass analog for reply-error factories,
// whose result need not implement error.
type ReplyErrorClass interface {
	NewFromPayload(payload []byte) Reply
}

func resolveProtocolErrorFactory(v interface{}) (ProtocolErrorFactory, error) {
	switch f := v.(type) {
	case nil:
		return defaultProtocolErrorFactory, nil
	case ProtocolErrorFactory:
		return f, nil
	case func([]byte) error:
		return f, nil
	case ErrorClass:
		return f.NewFromPayload, nil
	default:
		return nil, &TypeInvalidError{
			Message: fmt.Sprintf("protocol error factory must be a func([]byte) error or an ErrorClass, got %T", v),
		}
	}
}

func resolveReplyErrorFactory(v interface{}) (ReplyErrorFactory, error) {
	switch f := v.(type) {
	case nil:
		return defaultReplyErrorFactory, nil
	case ReplyErrorFactory:
		return f, nil
	case func([]byte) Reply:
		return f, nil
	case ReplyErrorClass:
		return f.NewFromPayload, nil
	case ErrorClass:
		// An error-producing class doubles as a reply-error class: its
		// result already satisfies Reply, it just also happens to
		// implement error.
		return func(payload []byte) Reply { return f.NewFromPayload(payload) }, nil
	default:
		return nil, &TypeInvalidError{
			Message: fmt.Sprintf("reply error factory must be a func([]byte) Reply or a ReplyErrorClass, got %T", v),
		}
	}
}

func defaultProtocolErrorFactory(payload []byte) error {
	return &ProtocolError{Payload: cloneBytes(payload)}
}

func defaultReplyErrorFactory(payload []byte) Reply {
	return &ReplyError{Payload: cloneBytes(payload)}
}
