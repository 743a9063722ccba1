// Package threestones provides a client for playing Three Stones against a remote server over TCP
// errors.go defines the errors that end a session
package threestones

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInputClosed     = errors.New("input closed")
	ErrScriptExhausted = errors.New("script has no more steps")
)

// ConnectionError reports a transport failure. A server that closes the
// connection between messages shows up as a failed receive.
type ConnectionError struct {
	Op  string // "dial", "send" or "receive"
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("connection %s failed", e.Op)
	}
	return fmt.Sprintf("connection %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// MalformedMessageError reports a message cut short before MESSAGE_SIZE bytes
type MalformedMessageError struct {
	Got int
}

func (e *MalformedMessageError) Error() string {
	return fmt.Sprintf("malformed message: got %d of %d bytes", e.Got, MESSAGE_SIZE)
}

// UnexpectedResponseError reports a reply the client cannot follow from its
// current phase. The client and server are out of sync after one.
type UnexpectedResponseError struct {
	Phase  Phase
	Got    Message
	Reason string
}

func (e *UnexpectedResponseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unexpected response %v while %v", e.Got, e.Phase)
	}
	return fmt.Sprintf("unexpected response %v while %v: %s", e.Got, e.Phase, e.Reason)
}

// IsFatal reports whether err is one of the protocol errors that terminate a session
func IsFatal(err error) bool {
	var connErr *ConnectionError
	var malformed *MalformedMessageError
	var unexpected *UnexpectedResponseError
	return errors.As(err, &connErr) || errors.As(err, &malformed) || errors.As(err, &unexpected)
}

//!--
