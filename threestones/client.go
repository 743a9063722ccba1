// Package threestones provides a client for playing Three Stones against a remote server over TCP
// client.go implements a game client that connects to the server
package threestones

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const (
	DIAL_TIMEOUT = 5 * time.Second // Default time allowed to connect
)

type Client struct {
	addr        string         // The server's address
	presenter   Presenter      // The human side of the game
	opts        SessionOptions // Passed to every session the client opens
	dialTimeout time.Duration  // How long Connect waits for the server
	session     *Session       // The session opened by Connect
}

// NewClient creates and returns a new client
func NewClient(addr string, presenter Presenter, opts SessionOptions) *Client {
	return &Client{
		addr:        addr,
		presenter:   presenter,
		opts:        opts,
		dialTimeout: DIAL_TIMEOUT,
	}
}

// SetDialTimeout changes how long Connect waits for the server
func (c *Client) SetDialTimeout(d time.Duration) {
	if d > 0 {
		c.dialTimeout = d
	}
}

// Connect attempts to connect the client to the server
func (c *Client) Connect(ctx context.Context) error {
	conn, err := Dial(ctx, c.addr, c.dialTimeout)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", c.addr)
	}
	c.session = NewSession(conn, c.presenter, c.opts)
	c.presenter.Connected(c.addr)
	return nil
}

// Session returns the session opened by Connect
func (c *Client) Session() *Session {
	return c.session
}

// Start plays games of Three Stones until the player quits
func (c *Client) Start(ctx context.Context) error {
	if c.session == nil {
		return errors.New("client is not connected")
	}
	return c.session.Run(ctx)
}

//!--
