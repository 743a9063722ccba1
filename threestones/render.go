// Package threestones provides a client for playing Three Stones against a remote server over TCP
// render.go draws the board and the game messages
package threestones

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"
)

const (
	ansiRed   = "\u001B[31m"
	ansiBlue  = "\u001B[34m"
	ansiReset = "\u001B[0m"
)

var separator = strings.Repeat("-", 90)

// RenderOptions controls the look of the output
type RenderOptions struct {
	Color       bool // Draw stones in color
	ClearScreen bool // Clear the terminal before each board
}

// Renderer writes everything the player sees. It provides the output half of
// a Presenter.
type Renderer struct {
	out     io.Writer
	printer *message.Printer
	opts    RenderOptions
}

// NewRenderer creates a renderer writing to out in the printer's language
func NewRenderer(out io.Writer, printer *message.Printer, opts RenderOptions) *Renderer {
	return &Renderer{out: out, printer: printer, opts: opts}
}

// Connected reports a successful connection
func (r *Renderer) Connected(addr string) {
	r.line(msgConnected, addr)
}

// Stats prints the session's win tally
func (r *Renderer) Stats(stats Stats) {
	r.line(msgWins, stats.PlayerWins)
	r.line(msgLosses, stats.OpponentWins)
}

// Render draws the board followed by the stones left and both scores
func (r *Renderer) Render(view View) {
	if r.opts.ClearScreen {
		r.clear()
	}
	width := r.cellWidth()
	var sb strings.Builder
	fmt.Fprintln(&sb, separator)
	for i := 1; i <= BOARD_SIZE; i++ {
		fmt.Fprintf(&sb, "%*d", width+3, i)
	}
	sb.WriteString("\n")
	for i, row := range view.Board {
		fmt.Fprintf(&sb, "%-3d", i+1)
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(r.cell(cell, width))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintln(r.out, sb.String())
	fmt.Fprintln(r.out, separator)
	r.line(msgStonesLeft, view.StonesRemaining)
	r.line(msgPlayerScore, view.PlayerScore)
	r.line(msgComputerScore, view.OpponentScore)
}

// MoveRejected tells the player to try another move
func (r *Renderer) MoveRejected(move Position) {
	r.line(msgInvalidMove)
}

// MovesPlaced reports where both stones went, 1-indexed
func (r *Renderer) MovesPlaced(player, opponent Position) {
	r.line(msgWhitePlaced, player.Row+1, player.Col+1)
	r.line(msgBlackPlaced, opponent.Row+1, opponent.Col+1)
}

// GameOver announces the winner
func (r *Renderer) GameOver(result Result, stats Stats) {
	fmt.Fprintln(r.out)
	if result == ResultWin {
		r.line(msgYouWin)
	} else {
		r.line(msgYouLose)
	}
}

// cell pads the translated label to width display columns. Padding goes
// after the color reset so escape codes don't count toward the width.
func (r *Renderer) cell(c Cell, width int) string {
	label := r.printer.Sprintf(cellLabel(c))
	pad := strings.Repeat(" ", width-runewidth.StringWidth(label))
	if r.opts.Color {
		switch c {
		case CellPlayer:
			label = ansiBlue + label + ansiReset
		case CellOpponent:
			label = ansiRed + label + ansiReset
		}
	}
	return label + pad
}

// cellWidth is the display width of the widest translated cell label
func (r *Renderer) cellWidth() int {
	width := 0
	for _, c := range []Cell{CellBlocked, CellEmpty, CellPlayer, CellOpponent} {
		if w := runewidth.StringWidth(r.printer.Sprintf(cellLabel(c))); w > width {
			width = w
		}
	}
	return width
}

func (r *Renderer) line(key message.Reference, args ...interface{}) {
	fmt.Fprintln(r.out, r.printer.Sprintf(key, args...))
}

// clear clears the screen
func (r *Renderer) clear() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux", "darwin":
		cmd = exec.Command("clear")
	case "windows":
		cmd = exec.Command("cmd", "/c", "cls")
	default:
		return
	}
	cmd.Stdout = r.out
	cmd.Run()
}

//!--
