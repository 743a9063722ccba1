package threestones

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playableRanges lists the inclusive column ranges that start empty on each row
var playableRanges = map[int][][2]int{
	2: {{4, 6}},
	3: {{3, 7}},
	4: {{2, 8}},
	5: {{2, 4}, {6, 8}},
	6: {{2, 8}},
	7: {{3, 7}},
	8: {{4, 6}},
}

func expectedPlayable(row, col int) bool {
	for _, r := range playableRanges[row] {
		if col >= r[0] && col <= r[1] {
			return true
		}
	}
	return false
}

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()
	for row := 0; row < BOARD_SIZE; row++ {
		for col := 0; col < BOARD_SIZE; col++ {
			want := CellBlocked
			if expectedPlayable(row, col) {
				want = CellEmpty
			}
			assert.Equal(t, want, b[row][col], "cell (%d,%d)", row, col)
			assert.Equal(t, want == CellEmpty, Playable(row, col), "playable (%d,%d)", row, col)
		}
	}
	assert.Equal(t, 36, b.Count(CellEmpty))
	assert.Equal(t, BOARD_SIZE*BOARD_SIZE-36, b.Count(CellBlocked))
}

func TestPlace(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Place(2, 5, CellPlayer))
	require.NoError(t, b.Place(3, 5, CellOpponent))
	assert.Equal(t, CellPlayer, b.Cell(2, 5))
	assert.Equal(t, CellOpponent, b.Cell(3, 5))
	assert.Equal(t, 1, b.Count(CellPlayer))
	assert.Equal(t, 1, b.Count(CellOpponent))
}

func TestPlaceRefusesUnavailableCells(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Place(4, 4, CellPlayer))

	tests := []struct {
		name     string
		row, col int
	}{
		{"occupied", 4, 4},
		{"blocked", 0, 0},
		{"center", 5, 5},
		{"negative", -1, 3},
		{"past edge", 3, BOARD_SIZE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b
			err := b.Place(tt.row, tt.col, CellOpponent)
			assert.True(t, errors.Is(err, ErrCellUnavailable), "got %v", err)
			assert.Equal(t, before, b)
		})
	}
}

func TestPlaceRequiresAStone(t *testing.T) {
	b := NewBoard()
	assert.Error(t, b.Place(4, 4, CellEmpty))
	assert.Error(t, b.Place(4, 4, CellBlocked))
	assert.Equal(t, CellEmpty, b.Cell(4, 4))
}

func TestCellOffBoardIsBlocked(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, CellBlocked, b.Cell(-1, 0))
	assert.Equal(t, CellBlocked, b.Cell(0, 11))
	assert.False(t, Playable(11, 5))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "BLOCK", CellBlocked.String())
	assert.Equal(t, "EMPTY", CellEmpty.String())
	assert.Equal(t, "WHITE", CellPlayer.String())
	assert.Equal(t, "BLACK", CellOpponent.String())
}
