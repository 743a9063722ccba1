package threestones

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnSendReceive(t *testing.T) {
	client, server := net.Pipe()
	c := NewConn(client)
	defer c.Close()
	s := NewConn(server)
	defer s.Close()

	go func() {
		s.Send(Message{Opcode: OpGameStarted})
	}()
	got, err := c.Receive()
	require.NoError(t, err)
	assert.Equal(t, Message{Opcode: OpGameStarted}, got)

	go func() {
		c.Send(moveMessage(Position{Row: 2, Col: 5}, 0, 0))
	}()
	got, err = s.Receive()
	require.NoError(t, err)
	assert.Equal(t, Message{Opcode: OpMove, Arg1: 2, Arg2: 5}, got)
}

func TestConnReceiveAfterPeerCloses(t *testing.T) {
	client, server := net.Pipe()
	c := NewConn(client)
	defer c.Close()
	server.Close()

	_, err := c.Receive()
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr), "got %v", err)
	assert.Equal(t, "receive", connErr.Op)
	assert.True(t, IsFatal(err))
}

func TestConnReceiveTruncatedMessage(t *testing.T) {
	client, server := net.Pipe()
	c := NewConn(client)
	defer c.Close()
	go func() {
		server.Write([]byte{5, 3, 5})
		server.Close()
	}()

	_, err := c.Receive()
	var malformed *MalformedMessageError
	require.True(t, errors.As(err, &malformed), "got %v", err)
	assert.Equal(t, 3, malformed.Got)
	assert.True(t, IsFatal(err))
}

func TestConnSendAfterPeerCloses(t *testing.T) {
	client, server := net.Pipe()
	c := NewConn(client)
	defer c.Close()
	server.Close()

	err := c.Send(quitMessage())
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr), "got %v", err)
	assert.Equal(t, "send", connErr.Op)
}

func TestConnCloseIsIdempotent(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	c := NewConn(client)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.Receive()
	assert.True(t, IsFatal(err))
}

func TestDialRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	_, err = Dial(context.Background(), addr, time.Second)
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr), "got %v", err)
	assert.Equal(t, "dial", connErr.Op)
}
