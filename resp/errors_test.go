package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolErrorMessage(t *testing.T) {
	e := &ProtocolError{Payload: []byte("x"), Reason: "unknown type prefix"}
	assert.Contains(t, e.Error(), "unknown type prefix")
	assert.Contains(t, e.Error(), "x")
}

func TestReplyErrorArgsAndMessage(t *testing.T) {
	e := &ReplyError{Payload: []byte("ERR nope")}
	assert.Equal(t, "ERR nope", e.Error())
	assert.Equal(t, []string{"ERR nope"}, e.Args())
}

func TestTypeInvalidErrorMessage(t *testing.T) {
	e := &TypeInvalidError{Message: "bad factory"}
	assert.Contains(t, e.Error(), "bad factory")
}

func TestRangeInvalidErrorMessage(t *testing.T) {
	e := &RangeInvalidError{Message: "out of range"}
	assert.Contains(t, e.Error(), "out of range")
}
