// Package threestones provides a client for playing Three Stones against a remote server over TCP
// presenter.go defines what the session needs from the user interface
package threestones

// Position is a 0-indexed board coordinate
type Position struct {
	Row int
	Col int
}

// Stats is the win tally of a session. It survives from one game to the next.
type Stats struct {
	PlayerWins   int
	OpponentWins int
}

// View is the state shown to the player before each move
type View struct {
	Board           Board
	StonesRemaining int
	PlayerScore     int
	OpponentScore   int
	Stats
}

// Result is the outcome of a finished game from the player's side
type Result int

const (
	ResultWin Result = iota
	ResultLoss
)

func (r Result) String() string {
	if r == ResultWin {
		return "win"
	}
	return "loss"
}

// Presenter is the human side of a session. Prompts block until the human
// answers. PromptMove returns 1-indexed coordinates already checked to be
// numbers in [1, BOARD_SIZE]; whether the move is legal is up to the server.
type Presenter interface {
	Connected(addr string)
	PromptPlayAgain(stats Stats) (bool, error)
	PromptMove() (row, col int, err error)
	Render(view View)
	MoveRejected(move Position)
	MovesPlaced(player, opponent Position)
	GameOver(result Result, stats Stats)
}

var (
	_ Presenter = (*ConsolePresenter)(nil)
	_ Presenter = (*ScriptPresenter)(nil)
)

//!--
