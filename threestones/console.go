// Package threestones provides a client for playing Three Stones against a remote server over TCP
// console.go reads the player's choices from a terminal
package threestones

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ConsolePresenter prompts on the renderer's output and reads whitespace
// separated answers from in
type ConsolePresenter struct {
	*Renderer
	input *bufio.Scanner
}

// NewConsolePresenter creates a presenter reading from in
func NewConsolePresenter(in io.Reader, r *Renderer) *ConsolePresenter {
	input := bufio.NewScanner(in)
	input.Split(bufio.ScanWords)
	return &ConsolePresenter{Renderer: r, input: input}
}

// PromptPlayAgain shows the tally and asks until it gets a lowercase y or n.
// Running out of input counts as n.
func (c *ConsolePresenter) PromptPlayAgain(stats Stats) (bool, error) {
	c.Stats(stats)
	for {
		c.line(msgPlayPrompt)
		answer, err := c.next()
		if errors.Is(err, ErrInputClosed) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

// PromptMove asks for a row and then a column, each from 1 to BOARD_SIZE
func (c *ConsolePresenter) PromptMove() (int, int, error) {
	row, err := c.readCoordinate(msgSelectRow)
	if err != nil {
		return 0, 0, err
	}
	col, err := c.readCoordinate(msgSelectColumn)
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// readCoordinate asks until it gets a number on the board
func (c *ConsolePresenter) readCoordinate(prompt string) (int, error) {
	for {
		c.line(prompt)
		tok, err := c.next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			c.line(msgNotANumber)
			continue
		}
		if n < 1 || n > BOARD_SIZE {
			c.line(msgOutOfRange, BOARD_SIZE)
			continue
		}
		return n, nil
	}
}

// next returns the next word of input
func (c *ConsolePresenter) next() (string, error) {
	if c.input.Scan() {
		return c.input.Text(), nil
	}
	if err := c.input.Err(); err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return "", ErrInputClosed
}

//!--
