package resp

// Reply is the value model returned by Gets: an Integer, a
// SimpleString, a BulkString, BulkNull, an Array, ArrayNull, a
// factory-built error value, or — when inline commands are enabled —
// a plain Go string token inside an Array. Reply carries no methods of
// its own; callers type-switch on the concrete value, the same way a
// caller of a dynamically-typed reader would inspect whatever gets()
// handed back.
type Reply = interface{}

// Integer is the decoded value of a ":"-prefixed frame.
type Integer int64

// SimpleString is the raw payload of a "+"-prefixed frame.
type SimpleString []byte

// BulkString is the payload of a "$"-prefixed frame. It never
// represents the null bulk string; see BulkNull.
type BulkString []byte

// Array is the decoded value of a "*"-prefixed frame. Elements may be
// of any Reply kind, including nested Arrays and error values. It
// never represents the null array; see ArrayNull.
type Array []Reply

type nullBulk struct{}

func (nullBulk) String() string { return "(nil)" }

// BulkNull is the sentinel value for "$-1\r\n". Its concrete type
// differs from BulkString, so it is never equal to an empty
// BulkString even under reflect.DeepEqual.
var BulkNull Reply = nullBulk{}

type nullArray struct{}

func (nullArray) String() string { return "(nil)" }

// ArrayNull is the sentinel value for "*-1\r\n". Its concrete type
// differs from Array, so it is never equal to an empty Array even
// under reflect.DeepEqual.
var ArrayNull Reply = nullArray{}
