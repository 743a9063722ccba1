// Package threestones provides a client for playing Three Stones against a remote server over TCP
// board.go implements the game board
package threestones

import (
	"github.com/pkg/errors"
)

const (
	BOARD_SIZE      = 11
	STONES_PER_GAME = 15
)

// Cell is the state of a single board position
type Cell uint8

const (
	CellBlocked Cell = iota
	CellEmpty
	CellPlayer
	CellOpponent
)

func (c Cell) String() string {
	switch c {
	case CellBlocked:
		return "BLOCK"
	case CellEmpty:
		return "EMPTY"
	case CellPlayer:
		return "WHITE"
	case CellOpponent:
		return "BLACK"
	default:
		return "?"
	}
}

// ErrCellUnavailable is returned when a stone cannot go where it was asked to
var ErrCellUnavailable = errors.New("cell unavailable")

// layout is the starting board: '#' cells are blocked for the whole game,
// '.' cells start empty.
var layout = [BOARD_SIZE]string{
	"###########",
	"###########",
	"####...####",
	"###.....###",
	"##.......##",
	"##...#...##",
	"##.......##",
	"###.....###",
	"####...####",
	"###########",
	"###########",
}

// Board is the client's mirror of the server's board. Rows and columns are 0-indexed.
type Board [BOARD_SIZE][BOARD_SIZE]Cell

// NewBoard creates and returns a board in its starting layout
func NewBoard() Board {
	var b Board
	for i, row := range layout {
		for j := 0; j < BOARD_SIZE; j++ {
			if row[j] == '.' {
				b[i][j] = CellEmpty
			} else {
				b[i][j] = CellBlocked
			}
		}
	}
	return b
}

// InBounds checks if the position lies on the 11x11 grid
func InBounds(row, col int) bool {
	return row >= 0 && row < BOARD_SIZE && col >= 0 && col < BOARD_SIZE
}

// Playable checks if the position is part of the playing field. It does not
// look at whether a stone is already there.
func Playable(row, col int) bool {
	return InBounds(row, col) && layout[row][col] == '.'
}

// Cell returns the state at the position. Positions off the grid are blocked.
func (b Board) Cell(row, col int) Cell {
	if !InBounds(row, col) {
		return CellBlocked
	}
	return b[row][col]
}

// Place puts a stone on an empty cell. Cells never go back to empty and are
// never overwritten.
func (b *Board) Place(row, col int, owner Cell) error {
	if owner != CellPlayer && owner != CellOpponent {
		return errors.Errorf("cannot place %v: not a stone", owner)
	}
	if !InBounds(row, col) {
		return errors.Wrapf(ErrCellUnavailable, "(%d,%d) is off the board", row, col)
	}
	if current := b[row][col]; current != CellEmpty {
		return errors.Wrapf(ErrCellUnavailable, "(%d,%d) is %v", row, col, current)
	}
	b[row][col] = owner
	return nil
}

// Count returns how many cells are in the given state
func (b Board) Count(c Cell) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

//!--
