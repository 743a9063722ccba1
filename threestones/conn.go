// Package threestones provides a client for playing Three Stones against a remote server over TCP
// conn.go implements sending and receiving messages over a byte stream
package threestones

import (
	"context"
	"io"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Conn frames messages over a stream connection. It is not safe for
// concurrent Send or Receive calls; Close may be called from any goroutine.
type Conn struct {
	rwc       io.ReadWriteCloser
	closeOnce sync.Once
	closeErr  error
}

// NewConn wraps an established stream
func NewConn(rwc io.ReadWriteCloser) *Conn {
	return &Conn{rwc: rwc}
}

// Dial opens a TCP connection to the server
func Dial(ctx context.Context, addr string, timeout time.Duration) (*Conn, error) {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &ConnectionError{Op: "dial", Err: err}
	}
	return NewConn(conn), nil
}

// Send writes the encoded message, blocking until it is fully written
func (c *Conn) Send(m Message) error {
	if _, err := c.rwc.Write(m.Encode()); err != nil {
		return &ConnectionError{Op: "send", Err: err}
	}
	return nil
}

// Receive blocks until a whole message has been read. There is no read
// deadline: an unresponsive server blocks the caller until the connection
// is closed.
func (c *Conn) Receive() (Message, error) {
	var buf [MESSAGE_SIZE]byte
	n, err := io.ReadFull(c.rwc, buf[:])
	if err != nil {
		if n > 0 && errors.Is(err, io.ErrUnexpectedEOF) {
			return Message{}, &MalformedMessageError{Got: n}
		}
		return Message{}, &ConnectionError{Op: "receive", Err: err}
	}
	return Decode(buf[:])
}

// Close closes the underlying stream. Only the first call reaches the stream;
// later calls return the same result.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.rwc.Close()
	})
	return c.closeErr
}

//!--
