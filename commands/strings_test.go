package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang-resp-reader/resp"
	"golang-resp-reader/storage"
)

func bulkArgs(args ...string) resp.Array {
	out := make(resp.Array, len(args))
	for i, a := range args {
		out[i] = resp.BulkString(a)
	}
	return out
}

func TestExecuteGetMissingKeyReturnsBulkNull(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("GET", "missing"))
	assert.Equal(t, resp.BulkNull, reply)
}

func TestExecuteSetThenGet(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("SET", "foo", "bar"))
	assert.Equal(t, okReply, reply)

	reply = Execute(store, bulkArgs("GET", "foo"))
	assert.Equal(t, resp.BulkString("bar"), reply)
}

func TestExecuteGetSetReturnsPreviousValue(t *testing.T) {
	store := storage.New()
	defer store.Close()

	Execute(store, bulkArgs("SET", "foo", "old"))
	reply := Execute(store, bulkArgs("GETSET", "foo", "new"))
	assert.Equal(t, resp.BulkString("old"), reply)

	reply = Execute(store, bulkArgs("GET", "foo"))
	assert.Equal(t, resp.BulkString("new"), reply)
}

func TestExecuteGetSetOnMissingKeyReturnsBulkNull(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("GETSET", "foo", "new"))
	assert.Equal(t, resp.BulkNull, reply)
}

func TestExecuteSetnxOnlySetsOnce(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("SETNX", "foo", "first"))
	assert.Equal(t, resp.Integer(1), reply)

	reply = Execute(store, bulkArgs("SETNX", "foo", "second"))
	assert.Equal(t, resp.Integer(0), reply)

	reply = Execute(store, bulkArgs("GET", "foo"))
	assert.Equal(t, resp.BulkString("first"), reply)
}

func TestExecuteDeleteCountsRemovedKeys(t *testing.T) {
	store := storage.New()
	defer store.Close()

	Execute(store, bulkArgs("SET", "a", "1"))
	Execute(store, bulkArgs("SET", "b", "2"))

	reply := Execute(store, bulkArgs("DEL", "a", "b", "c"))
	assert.Equal(t, resp.Integer(2), reply)
}

func TestExecuteAppendOnMissingKey(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("APPEND", "foo", "hello"))
	assert.Equal(t, resp.Integer(5), reply)

	reply = Execute(store, bulkArgs("APPEND", "foo", " world"))
	assert.Equal(t, resp.Integer(11), reply)

	reply = Execute(store, bulkArgs("GET", "foo"))
	assert.Equal(t, resp.BulkString("hello world"), reply)
}

func TestExecuteStrLen(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("STRLEN", "missing"))
	assert.Equal(t, resp.Integer(0), reply)

	Execute(store, bulkArgs("SET", "foo", "hello"))
	reply = Execute(store, bulkArgs("STRLEN", "foo"))
	assert.Equal(t, resp.Integer(5), reply)
}

func TestExecuteSetAndExpireSchedulesTTL(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("SETEX", "foo", "100", "bar"))
	assert.Equal(t, okReply, reply)

	reply = Execute(store, bulkArgs("GET", "foo"))
	assert.Equal(t, resp.BulkString("bar"), reply)
}

func TestExecuteSetAndExpireRejectsBadTTL(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("SETEX", "foo", "notanumber", "bar"))
	_, isErr := reply.(*resp.ReplyError)
	assert.True(t, isErr)
}

func TestExecuteWrongArgumentCounts(t *testing.T) {
	store := storage.New()
	defer store.Close()

	cases := []resp.Array{
		bulkArgs("GET"),
		bulkArgs("GET", "a", "b"),
		bulkArgs("SET", "a"),
		bulkArgs("DEL"),
		bulkArgs("APPEND", "a"),
		bulkArgs("STRLEN"),
		bulkArgs("SETEX", "a", "1"),
	}
	for _, c := range cases {
		reply := Execute(store, c)
		_, isErr := reply.(*resp.ReplyError)
		assert.True(t, isErr, "expected error reply for %v", c)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, bulkArgs("NOPE"))
	_, isErr := reply.(*resp.ReplyError)
	assert.True(t, isErr)
}

func TestExecuteEmptyCommand(t *testing.T) {
	store := storage.New()
	defer store.Close()

	reply := Execute(store, resp.Array{})
	_, isErr := reply.(*resp.ReplyError)
	assert.True(t, isErr)
}
