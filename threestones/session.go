// Package threestones provides a client for playing Three Stones against a remote server over TCP
// session.go implements the client side of the session protocol
package threestones

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hlin91/CS3800_threestones/threestones"

// Phase is where a session is in its lifecycle
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseAwaitingGameStart
	PhaseInGame
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhaseAwaitingGameStart:
		return "awaiting game start"
	case PhaseInGame:
		return "in game"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown phase"
	}
}

// Game is the state of the game in progress
type Game struct {
	Board           Board
	PlayerScore     int
	OpponentScore   int
	StonesRemaining int
}

func newGame() *Game {
	return &Game{
		Board:           NewBoard(),
		StonesRemaining: STONES_PER_GAME,
	}
}

// SessionOptions tunes how a session reads the server's replies
type SessionOptions struct {
	ID uuid.UUID // Generated when zero

	// AcceptedOpcode, when set, is the only reply opcode taken as an
	// accepted move; anything else but OpInvalidMove is then unexpected.
	// When zero every reply other than OpInvalidMove is accepted.
	AcceptedOpcode Opcode

	Logger *log.Logger // Discards when nil
}

// Session is one connection to the server. It may span several games.
type Session struct {
	ID        uuid.UUID
	conn      *Conn
	presenter Presenter
	accepted  Opcode
	logger    *log.Logger
	tracer    trace.Tracer
	phase     Phase
	stats     Stats
	game      *Game
}

// NewSession creates a session in the lobby. The session owns conn from now on.
func NewSession(conn *Conn, presenter Presenter, opts SessionOptions) *Session {
	s := &Session{
		ID:        opts.ID,
		conn:      conn,
		presenter: presenter,
		accepted:  opts.AcceptedOpcode,
		logger:    opts.Logger,
		tracer:    otel.Tracer(tracerName),
		phase:     PhaseLobby,
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Stats returns the win tally so far
func (s *Session) Stats() Stats {
	return s.stats
}

// Game returns the game in progress, or nil outside of a game
func (s *Session) Game() *Game {
	return s.game
}

// Run plays games until the human declines another one or the session fails.
// The connection is closed on every return. Cancelling ctx closes the
// connection, which unblocks a pending receive.
func (s *Session) Run(ctx context.Context) error {
	defer s.Close()
	stop := context.AfterFunc(ctx, func() {
		s.conn.Close()
	})
	defer stop()

	for {
		play, err := s.presenter.PromptPlayAgain(s.stats)
		if err != nil {
			return s.fail(ctx, err)
		}
		if !play {
			if err := s.Quit(ctx); err != nil {
				return s.fail(ctx, err)
			}
			return nil
		}
		if err := s.StartGame(ctx); err != nil {
			return s.fail(ctx, err)
		}
		if err := s.playGame(ctx); err != nil {
			return s.fail(ctx, err)
		}
	}
}

// StartGame asks the server for a new game and sets up a fresh board
func (s *Session) StartGame(ctx context.Context) error {
	if s.phase != PhaseLobby {
		return errors.Errorf("cannot start a game while %v", s.phase)
	}
	s.phase = PhaseAwaitingGameStart
	reply, err := s.exchange(ctx, requestPlayMessage())
	if err != nil {
		return err
	}
	if reply.Opcode != OpGameStarted {
		return &UnexpectedResponseError{Phase: PhaseAwaitingGameStart, Got: reply}
	}
	s.game = newGame()
	s.phase = PhaseInGame
	s.logger.Printf("session %s: game started", s.ID)
	return nil
}

// playGame plays turns until the stones run out, then tallies the winner
func (s *Session) playGame(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "threestones.game",
		trace.WithAttributes(attribute.String("threestones.session_id", s.ID.String())))
	defer span.End()

	for s.game.StonesRemaining > 0 {
		s.presenter.Render(s.view())
		if err := s.PlayTurn(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	result, err := s.FinishGame()
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("threestones.result", result.String()))
	return nil
}

// PlayTurn sends the human's move, asking again for as long as the server
// rejects it, and mirrors the accepted move and the server's counter-move.
func (s *Session) PlayTurn(ctx context.Context) error {
	if s.phase != PhaseInGame || s.game == nil {
		return errors.Errorf("cannot move while %v", s.phase)
	}
	for {
		row, col, err := s.presenter.PromptMove()
		if err != nil {
			return err
		}
		if !InBounds(row-1, col-1) {
			return errors.Errorf("move %d, %d is outside 1..%d", row, col, BOARD_SIZE)
		}
		move := Position{Row: row - 1, Col: col - 1}
		reply, err := s.exchange(ctx, moveMessage(move, s.game.PlayerScore, s.game.OpponentScore))
		if err != nil {
			return err
		}
		if reply.Opcode == OpInvalidMove {
			s.presenter.MoveRejected(move)
			continue
		}
		if s.accepted != 0 && reply.Opcode != s.accepted {
			return &UnexpectedResponseError{Phase: PhaseInGame, Got: reply}
		}
		return s.applyMove(move, reply)
	}
}

// applyMove places both stones or neither
func (s *Session) applyMove(move Position, reply Message) error {
	opponent := counterMove(reply)
	board := s.game.Board
	if err := board.Place(move.Row, move.Col, CellPlayer); err != nil {
		return &UnexpectedResponseError{Phase: PhaseInGame, Got: reply, Reason: err.Error()}
	}
	if err := board.Place(opponent.Row, opponent.Col, CellOpponent); err != nil {
		return &UnexpectedResponseError{Phase: PhaseInGame, Got: reply, Reason: err.Error()}
	}
	s.game.Board = board
	s.game.PlayerScore = int(reply.Arg3)
	s.game.OpponentScore = int(reply.Arg4)
	s.game.StonesRemaining--
	s.presenter.MovesPlaced(move, opponent)
	return nil
}

// FinishGame credits the winner of a game with no stones left and returns to
// the lobby. A tie goes to the player.
func (s *Session) FinishGame() (Result, error) {
	if s.phase != PhaseInGame || s.game == nil {
		return ResultLoss, errors.Errorf("no game to finish while %v", s.phase)
	}
	if s.game.StonesRemaining > 0 {
		return ResultLoss, errors.Errorf("game still has %d stones to play", s.game.StonesRemaining)
	}
	result := ResultLoss
	if s.game.PlayerScore >= s.game.OpponentScore {
		result = ResultWin
		s.stats.PlayerWins++
	} else {
		s.stats.OpponentWins++
	}
	s.presenter.Render(s.view())
	s.logger.Printf("session %s: game over (%v, %d-%d)", s.ID, result, s.game.PlayerScore, s.game.OpponentScore)
	s.game = nil
	s.phase = PhaseLobby
	s.presenter.GameOver(result, s.stats)
	return result, nil
}

// Quit tells the server the player is leaving and closes the connection
func (s *Session) Quit(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "threestones.quit",
		trace.WithAttributes(attribute.String("threestones.session_id", s.ID.String())))
	defer span.End()

	err := s.send(quitMessage())
	if closeErr := s.Close(); err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "close connection")
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Close ends the session. It is safe to call more than once.
func (s *Session) Close() error {
	s.phase = PhaseTerminated
	s.game = nil
	return s.conn.Close()
}

// exchange sends one message and blocks for the reply
func (s *Session) exchange(ctx context.Context, m Message) (Message, error) {
	_, span := s.tracer.Start(ctx, "threestones.exchange",
		trace.WithAttributes(
			attribute.String("threestones.session_id", s.ID.String()),
			attribute.String("threestones.request", m.Opcode.String()),
		))
	defer span.End()

	reply, err := s.roundTrip(m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Message{}, err
	}
	span.SetAttributes(attribute.String("threestones.reply", reply.Opcode.String()))
	return reply, nil
}

func (s *Session) roundTrip(m Message) (Message, error) {
	if err := s.send(m); err != nil {
		return Message{}, err
	}
	reply, err := s.conn.Receive()
	if err != nil {
		return Message{}, err
	}
	s.logger.Printf("session %s: received %v", s.ID, reply)
	return reply, nil
}

func (s *Session) send(m Message) error {
	s.logger.Printf("session %s: sending %v", s.ID, m)
	return s.conn.Send(m)
}

// fail terminates the session. An error caused by cancellation is reported
// as the context's error.
func (s *Session) fail(ctx context.Context, err error) error {
	s.Close()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	s.logger.Printf("session %s: %v", s.ID, err)
	return err
}

func (s *Session) view() View {
	return View{
		Board:           s.game.Board,
		StonesRemaining: s.game.StonesRemaining,
		PlayerScore:     s.game.PlayerScore,
		OpponentScore:   s.game.OpponentScore,
		Stats:           s.stats,
	}
}

//!--
