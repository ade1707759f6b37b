package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProtocolErrorFactoryDefault(t *testing.T) {
	f, err := resolveProtocolErrorFactory(nil)
	require.NoError(t, err)
	got := f([]byte("boom"))
	var pe *ProtocolError
	require.ErrorAs(t, got, &pe)
	assert.Equal(t, "boom", string(pe.Payload))
}

func TestResolveReplyErrorFactoryDefault(t *testing.T) {
	f, err := resolveReplyErrorFactory(nil)
	require.NoError(t, err)
	got := f([]byte("boom"))
	re, ok := got.(*ReplyError)
	require.True(t, ok)
	assert.Equal(t, []string{"boom"}, re.Args())
}

func TestResolveProtocolErrorFactoryRejectsUnknownType(t *testing.T) {
	_, err := resolveProtocolErrorFactory(3.14)
	var te *TypeInvalidError
	assert.ErrorAs(t, err, &te)
}

func TestResolveReplyErrorFactoryAcceptsErrorClass(t *testing.T) {
	f, err := resolveReplyErrorFactory(customProtocolErrClass{})
	require.NoError(t, err)
	got := f([]byte("x"))
	_, ok := got.(error)
	assert.True(t, ok)
}
