// Command respserver is a minimal demonstration of the resp codec: a
// TCP server that feeds arbitrarily-chunked socket reads into a
// resp.Reader and dispatches completed commands through the commands
// package.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"golang-resp-reader/commands"
	"golang-resp-reader/resp"
	"golang-resp-reader/storage"
)

func main() {
	addr := flag.String("addr", "localhost:6382", "address to listen on")
	flag.Parse()

	l, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen: %s", err)
	}
	defer l.Close()
	log.Printf("listening on %s", *addr)

	store := storage.New()
	defer store.Close()

	for {
		conn, err := l.Accept()
		if err != nil {
			log.Printf("accept: %s", err)
			continue
		}
		go handleConnection(conn, store)
	}
}

// handleConnection reads whatever the kernel hands back on each Read
// call — never a whole command, sometimes several — and lets the
// Reader reassemble frames across those boundaries.
func handleConnection(conn net.Conn, store *storage.Store) {
	defer conn.Close()

	reader, err := resp.NewReader()
	if err != nil {
		log.Printf("new reader: %s", err)
		return
	}
	reader.AcceptInline = true

	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			if feedErr := reader.Feed(chunk[:n]); feedErr != nil {
				conn.Write(resp.ErrorFrame([]byte(feedErr.Error())))
				return
			}
			if !drain(conn, reader, store) {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// drain writes every reply currently available from reader, stopping
// (and closing the connection) on the first protocol error.
func drain(conn net.Conn, reader *resp.Reader, store *storage.Store) bool {
	for {
		reply, ok, err := reader.Gets()
		if err != nil {
			conn.Write(resp.ErrorFrame([]byte(err.Error())))
			return false
		}
		if !ok {
			return true
		}
		conn.Write(encodeReply(store, reply))
	}
}

// encodeReply dispatches a parsed top-level reply to the command
// table when it is a client command (an Array of arguments), and
// otherwise answers with an error frame — inline commands surface as a
// plain-string Array already, the same shape as a RESP array command.
func encodeReply(store *storage.Store, reply resp.Reply) []byte {
	command, isCommand := asCommand(reply)
	if !isCommand {
		return resp.ErrorFrame([]byte(fmt.Sprintf("ERR expected an array of bulk strings, got %T", reply)))
	}
	return encodeResult(commands.Execute(store, command))
}

func asCommand(reply resp.Reply) (resp.Array, bool) {
	switch v := reply.(type) {
	case resp.Array:
		return v, true
	default:
		return nil, false
	}
}

func encodeResult(reply resp.Reply) []byte {
	switch v := reply.(type) {
	case resp.Integer:
		return resp.Int(int64(v))
	case resp.SimpleString:
		return resp.SimpleStringFrame([]byte(v))
	case resp.BulkString:
		return resp.BulkStringFrame([]byte(v))
	case *resp.ReplyError:
		return resp.ErrorFrame(v.Payload)
	default:
		if v == resp.BulkNull {
			return []byte("$-1\r\n")
		}
		return resp.ErrorFrame([]byte(fmt.Sprintf("ERR unencodable reply %T", reply)))
	}
}
