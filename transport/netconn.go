// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package transport implements the net.Conn-backed transport collaborator.
// It is the production counterpart of the fake loopback: it drains the
// session's pending-write queue onto the wire and feeds inbound bytes and
// lifecycle events into the session's filter chain.
package transport

import (
	"errors"
	"io"
	"log"
	"net"
	"sync"

	"github.com/momentics/hioload-chain/api"
)

// defaultReadBufferSize is used when no explicit size is configured.
const defaultReadBufferSize = 4096

// NetConn adapts one net.Conn into an api.Transport.
type NetConn struct {
	conn        net.Conn
	readBufSize int
	writeMu     sync.Mutex
}

var _ api.Transport = (*NetConn)(nil)

// NewNetConn wraps conn; readBufSize <= 0 selects the default.
func NewNetConn(conn net.Conn, readBufSize int) *NetConn {
	if readBufSize <= 0 {
		readBufSize = defaultReadBufferSize
	}
	return &NetConn{conn: conn, readBufSize: readBufSize}
}

// Write drains the session's pending queue onto the wire in FIFO order.
// Each finished request gets its future completed and messageSent fired in
// order. Messages must be []byte at this point; a codec filter upstream is
// responsible for getting them there.
func (t *NetConn) Write(s api.Session, _ *api.WriteRequest) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	for {
		wr, ok := s.PendingWrites().Poll()
		if !ok {
			return nil
		}
		data, isBytes := wr.Message().([]byte)
		if !isBytes {
			wr.Future().Complete(api.ErrInvalidMessage)
			return api.ErrInvalidMessage
		}
		if _, err := t.conn.Write(data); err != nil {
			wr.Future().Complete(err)
			return err
		}
		s.TouchWrite()
		wr.Future().Complete(nil)
		if err := s.FilterChain().FireMessageSent(wr); err != nil {
			return err
		}
	}
}

// Close shuts the connection down; the read loop observes it and fires
// sessionClosed exactly once.
func (t *NetConn) Close(s api.Session) error {
	return t.conn.Close()
}

// ReadLoop pumps inbound bytes into the chain until the connection dies.
// Runs on its own goroutine per connection; read errors other than a plain
// close are reported through exceptionCaught before sessionClosed fires.
func (t *NetConn) ReadLoop(s api.Session) {
	buf := make([]byte, t.readBufSize)
	for {
		n, err := t.conn.Read(buf)
		if n > 0 {
			s.TouchRead()
			msg := make([]byte, n)
			copy(msg, buf[:n])
			if ferr := s.FilterChain().FireMessageReceived(msg); ferr != nil {
				log.Printf("[Transport] session=%s messageReceived: %v", s.ID(), ferr)
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.ErrClosedPipe) {
				if ferr := s.FilterChain().FireExceptionCaught(err); ferr != nil {
					log.Printf("[Transport] session=%s exceptionCaught: %v", s.ID(), ferr)
				}
			}
			s.SetConnected(false)
			if ferr := s.FilterChain().FireSessionClosed(); ferr != nil {
				log.Printf("[Transport] session=%s sessionClosed: %v", s.ID(), ferr)
			}
			return
		}
	}
}
