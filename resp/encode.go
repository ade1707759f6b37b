package resp

import (
	"bytes"
	"strconv"
)

// Int encodes an integer reply: ":<n>\r\n".
func Int(n int64) []byte {
	return []byte(":" + strconv.FormatInt(n, 10) + "\r\n")
}

// SimpleStringFrame encodes a simple string reply: "+<b>\r\n". The
// caller is responsible for b not containing a CRLF.
func SimpleStringFrame(b []byte) []byte {
	out := make([]byte, 0, len(b)+3)
	out = append(out, '+')
	out = append(out, b...)
	out = append(out, '\r', '\n')
	return out
}

// ErrorFrame encodes an error reply: "-<b>\r\n".
func ErrorFrame(b []byte) []byte {
	out := make([]byte, 0, len(b)+3)
	out = append(out, '-')
	out = append(out, b...)
	out = append(out, '\r', '\n')
	return out
}

// BulkStringFrame encodes a bulk string reply: "$<len(b)>\r\n<b>\r\n".
func BulkStringFrame(b []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(b) + 16)
	buf.WriteByte('$')
	buf.WriteString(strconv.Itoa(len(b)))
	buf.WriteString("\r\n")
	buf.Write(b)
	buf.WriteString("\r\n")
	return buf.Bytes()
}

// ArrayFrame encodes an array reply from already-encoded element
// frames: "*<count>\r\n" followed by the frames, concatenated in
// order.
func ArrayFrame(frames ...[]byte) []byte {
	size := 1 + len(strconv.Itoa(len(frames))) + 2
	for _, f := range frames {
		size += len(f)
	}
	var buf bytes.Buffer
	buf.Grow(size)
	buf.WriteByte('*')
	buf.WriteString(strconv.Itoa(len(frames)))
	buf.WriteString("\r\n")
	for _, f := range frames {
		buf.Write(f)
	}
	return buf.Bytes()
}

// BuildCommand encodes a client command as an array of bulk strings —
// the canonical client-to-server command framing.
func BuildCommand(args ...[]byte) []byte {
	frames := make([][]byte, len(args))
	for i, a := range args {
		frames[i] = BulkStringFrame(a)
	}
	return ArrayFrame(frames...)
}
