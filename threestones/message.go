// Package threestones provides a client for playing Three Stones against a remote server over TCP
// message.go defines the fixed-width messages passed between client and server
package threestones

import "fmt"

const (
	MESSAGE_SIZE = 5 // Every message is exactly this many bytes on the wire
)

// Opcode identifies the purpose of a message
type Opcode uint8

const (
	OpRequestPlay Opcode = 1 // client -> server: start a game
	OpQuit        Opcode = 2 // client -> server: end the session
	OpGameStarted Opcode = 3 // server -> client: the game has started
	OpMove        Opcode = 4 // client -> server: place a stone
	OpInvalidMove Opcode = 6 // server -> client: the move was rejected

	// OpMoveAccepted is the opcode reference servers use for the reply
	// carrying the counter-move and scores. The client only insists on it
	// when SessionOptions.AcceptedOpcode says so.
	OpMoveAccepted Opcode = 5
)

func (op Opcode) String() string {
	switch op {
	case OpRequestPlay:
		return "request-play"
	case OpQuit:
		return "quit"
	case OpGameStarted:
		return "game-started"
	case OpMove:
		return "move"
	case OpMoveAccepted:
		return "move-accepted"
	case OpInvalidMove:
		return "invalid-move"
	default:
		return fmt.Sprintf("opcode(%d)", uint8(op))
	}
}

// Message is the only record exchanged with the server. The meaning of the
// arguments depends on the opcode: Arg1 and Arg2 hold a 0-indexed row and
// column, Arg3 and Arg4 hold the player and opponent scores.
type Message struct {
	Opcode Opcode
	Arg1   uint8
	Arg2   uint8
	Arg3   uint8
	Arg4   uint8
}

// Encode serializes the message in field order
func (m Message) Encode() []byte {
	return []byte{byte(m.Opcode), m.Arg1, m.Arg2, m.Arg3, m.Arg4}
}

// Decode parses a message from exactly MESSAGE_SIZE bytes
func Decode(b []byte) (Message, error) {
	if len(b) != MESSAGE_SIZE {
		return Message{}, &MalformedMessageError{Got: len(b)}
	}
	return Message{
		Opcode: Opcode(b[0]),
		Arg1:   b[1],
		Arg2:   b[2],
		Arg3:   b[3],
		Arg4:   b[4],
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler
func (m Message) MarshalBinary() ([]byte, error) {
	return m.Encode(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (m *Message) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func (m Message) String() string {
	return fmt.Sprintf("%v[%d %d %d %d]", m.Opcode, m.Arg1, m.Arg2, m.Arg3, m.Arg4)
}

//!--
