package threestones

import (
	"fmt"
	"io"
	"net"
	"testing"
)

// turn is one request the fake server expects and what it writes back.
// A turn with neither reply nor raw writes nothing.
type turn struct {
	expect Message
	reply  *Message
	raw    []byte
}

func reply(m Message) *Message {
	return &m
}

// startPeer runs a fake server on one end of a pipe. The server checks each
// request against the script, answers it, and hangs up after the last turn.
// The returned channel yields nil when the whole script was played.
func startPeer(t *testing.T, script []turn) (*Conn, <-chan error) {
	t.Helper()
	client, server := net.Pipe()
	done := make(chan error, 1)
	go func() {
		defer server.Close()
		done <- handleClientConn(server, script)
	}()
	conn := NewConn(client)
	t.Cleanup(func() { conn.Close() })
	return conn, done
}

// handleClientConn plays the server's side of the script
func handleClientConn(conn net.Conn, script []turn) error {
	buf := make([]byte, MESSAGE_SIZE)
	for i, tr := range script {
		if _, err := io.ReadFull(conn, buf); err != nil {
			return fmt.Errorf("turn %d: reading request: %v", i, err)
		}
		got, err := Decode(buf)
		if err != nil {
			return fmt.Errorf("turn %d: %v", i, err)
		}
		if got != tr.expect {
			return fmt.Errorf("turn %d: expected %v, got %v", i, tr.expect, got)
		}
		out := tr.raw
		if tr.reply != nil {
			out = tr.reply.Encode()
		}
		if len(out) == 0 {
			continue
		}
		if _, err := conn.Write(out); err != nil {
			return fmt.Errorf("turn %d: writing reply: %v", i, err)
		}
	}
	return nil
}

// stubPresenter answers prompts from fixed lists and records what it was shown
type stubPresenter struct {
	answers []bool
	moves   [][2]int

	connected  string
	prompts    int
	moveAsks   int
	rendered   []View
	rejected   []Position
	placed     [][2]Position
	results    []Result
	onPrompt   func()
	onRejected func(Position)
}

func (p *stubPresenter) Connected(addr string) {
	p.connected = addr
}

func (p *stubPresenter) PromptPlayAgain(Stats) (bool, error) {
	p.prompts++
	if p.onPrompt != nil {
		p.onPrompt()
	}
	if len(p.answers) == 0 {
		return false, nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *stubPresenter) PromptMove() (int, int, error) {
	p.moveAsks++
	if len(p.moves) == 0 {
		return 0, 0, ErrInputClosed
	}
	move := p.moves[0]
	p.moves = p.moves[1:]
	return move[0], move[1], nil
}

func (p *stubPresenter) Render(view View) {
	p.rendered = append(p.rendered, view)
}

func (p *stubPresenter) MoveRejected(move Position) {
	p.rejected = append(p.rejected, move)
	if p.onRejected != nil {
		p.onRejected(move)
	}
}

func (p *stubPresenter) MovesPlaced(player, opponent Position) {
	p.placed = append(p.placed, [2]Position{player, opponent})
}

func (p *stubPresenter) GameOver(result Result, stats Stats) {
	p.results = append(p.results, result)
}
