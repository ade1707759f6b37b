// Package commands dispatches parsed client requests to the demo
// key/value store. Uses a subset of commands from
// https://redis.io/commands#string, plus DEL.
package commands

import (
	"fmt"
	"strconv"

	"golang-resp-reader/resp"
	"golang-resp-reader/storage"
)

const (
	getCommand          = "GET"
	setCommand          = "SET"
	getSetCommand       = "GETSET"
	deleteCommand       = "DEL"
	strLengthCommand    = "STRLEN"
	appendCommand       = "APPEND"
	setnxCommand        = "SETNX"
	setAndExpireCommand = "SETEX"
)

var okReply resp.Reply = resp.SimpleString("OK")

// argString extracts an argument's textual value. Bulk and simple
// strings are the two Reply kinds a wire-framed command's arguments
// arrive as; plain string is what an inline command's tokens decode to
// (resp.Reader.AcceptInline).
func argString(item resp.Reply) (string, bool) {
	switch v := item.(type) {
	case resp.BulkString:
		return string(v), true
	case resp.SimpleString:
		return string(v), true
	case string:
		return v, true
	default:
		return "", false
	}
}

func wrongArgs(command string) resp.Reply {
	return &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR wrong number of arguments for '%s' command", command))}
}

func guardedKey(command string, item resp.Reply) (string, resp.Reply) {
	key, ok := argString(item)
	if !ok {
		return "", &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR %s expects a string key value", command))}
	}
	return key, nil
}

func executeGet(store *storage.Store, args []resp.Reply) resp.Reply {
	if len(args) != 1 {
		return wrongArgs(getCommand)
	}
	key, errReply := guardedKey(getCommand, args[0])
	if errReply != nil {
		return errReply
	}
	value, ok := store.Get(key)
	if !ok {
		return resp.BulkNull
	}
	return resp.BulkString(value)
}

// executeSet backs SET, GETSET (returnPreviousValue) and SETNX
// (onlyIfAbsent). At most one of those two modifiers is ever set by a
// caller; SET sets neither.
func executeSet(store *storage.Store, args []resp.Reply, returnPreviousValue, onlyIfAbsent bool) resp.Reply {
	if len(args) != 2 {
		return wrongArgs(setCommand)
	}
	key, errReply := guardedKey(setCommand, args[0])
	if errReply != nil {
		return errReply
	}
	value, ok := argString(args[1])
	if !ok {
		return &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR %s expects a string value", setCommand))}
	}

	if onlyIfAbsent {
		if store.SetIfAbsent(key, value) {
			return resp.Integer(1)
		}
		return resp.Integer(0)
	}

	var previous string
	var hadPrevious bool
	if returnPreviousValue {
		previous, hadPrevious = store.Get(key)
	}
	store.Set(key, value)
	if returnPreviousValue {
		if !hadPrevious {
			return resp.BulkNull
		}
		return resp.BulkString(previous)
	}
	return okReply
}

func executeDelete(store *storage.Store, args []resp.Reply) resp.Reply {
	if len(args) == 0 {
		return wrongArgs(deleteCommand)
	}
	var deleted int64
	for _, a := range args {
		key, errReply := guardedKey(deleteCommand, a)
		if errReply != nil {
			return errReply
		}
		if store.Delete(key) {
			deleted++
		}
	}
	return resp.Integer(deleted)
}

func executeAppend(store *storage.Store, args []resp.Reply) resp.Reply {
	if len(args) != 2 {
		return wrongArgs(appendCommand)
	}
	key, errReply := guardedKey(appendCommand, args[0])
	if errReply != nil {
		return errReply
	}
	value, ok := argString(args[1])
	if !ok {
		return &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR %s expects a string value", appendCommand))}
	}
	return resp.Integer(store.Append(key, value))
}

func executeStrLen(store *storage.Store, args []resp.Reply) resp.Reply {
	if len(args) != 1 {
		return wrongArgs(strLengthCommand)
	}
	key, errReply := guardedKey(strLengthCommand, args[0])
	if errReply != nil {
		return errReply
	}
	return resp.Integer(store.Len(key))
}

func executeSetAndExpire(store *storage.Store, args []resp.Reply) resp.Reply {
	if len(args) != 3 {
		return wrongArgs(setAndExpireCommand)
	}
	key, errReply := guardedKey(setAndExpireCommand, args[0])
	if errReply != nil {
		return errReply
	}
	ttlText, ok := argString(args[1])
	if !ok {
		return &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR %s expects an integer TTL", setAndExpireCommand))}
	}
	ttl, err := strconv.ParseInt(ttlText, 10, 64)
	if err != nil {
		return &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR invalid TTL specified '%s'", ttlText))}
	}
	value, ok := argString(args[2])
	if !ok {
		return &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR %s expects a string value", setAndExpireCommand))}
	}
	store.Set(key, value)
	store.Expire(key, ttl)
	return okReply
}

// Execute inspects a parsed command array and dispatches it to a
// matching string command, returning the Reply to encode back to the
// client. The first element is the command name; the rest are its
// arguments.
func Execute(store *storage.Store, command resp.Array) resp.Reply {
	if len(command) == 0 {
		return &resp.ReplyError{Payload: []byte("ERR empty command")}
	}
	name, ok := argString(command[0])
	if !ok {
		return &resp.ReplyError{Payload: []byte("ERR malformed command name")}
	}
	args := command[1:]

	switch name {
	case getCommand:
		return executeGet(store, args)
	case setCommand:
		return executeSet(store, args, false, false)
	case getSetCommand:
		return executeSet(store, args, true, false)
	case deleteCommand:
		return executeDelete(store, args)
	case strLengthCommand:
		return executeStrLen(store, args)
	case appendCommand:
		return executeAppend(store, args)
	case setnxCommand:
		return executeSet(store, args, false, true)
	case setAndExpireCommand:
		return executeSetAndExpire(store, args)
	default:
		return &resp.ReplyError{Payload: []byte(fmt.Sprintf("ERR unknown command '%s'", name))}
	}
}
