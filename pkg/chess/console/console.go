// Package console implements a line-oriented debugging driver for a game:
// reset/undo/print/move commands over an in/out string channel pair, in the
// same shape as a protocol driver even though there is exactly one protocol.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/solchess/castle/pkg/chess"
	"github.com/solchess/castle/pkg/chess/fen"
	"github.com/solchess/castle/pkg/chess/san"
)

// Driver reads command lines from in and writes board/result text to the
// channel it returns. It owns one GameState for its lifetime.
type Driver struct {
	iox.AsyncCloser

	g     *chess.GameState
	mover chess.MoveSelector
	out   chan<- string
}

// NewDriver starts a Driver against a fresh standard game.
func NewDriver(ctx context.Context, mover chess.MoveSelector, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		g:           chess.NewGame(),
		mover:       mover,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console driver initialized")
	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}
			cmd, args := strings.ToLower(parts[0]), parts[1:]

			switch cmd {
			case "reset", "r":
				pos := fen.Initial
				if len(args) > 0 {
					pos = strings.Join(args, " ")
				}
				g, err := fen.Decode(pos)
				if err != nil {
					d.out <- fmt.Sprintf("invalid position: %v", err)
					break
				}
				d.g = g
				d.printBoard()

			case "undo", "u":
				if err := d.g.UndoMove(); err != nil {
					d.out <- fmt.Sprintf("nothing to undo: %v", err)
					break
				}
				d.printBoard()

			case "print", "p":
				d.printBoard()

			case "random", "go":
				m, ok := d.mover.SelectMove(ctx, d.g)
				if !ok {
					d.out <- "no legal moves"
					break
				}
				if err := d.g.ApplyMove(m); err != nil {
					logw.Errorf(ctx, "Selected move rejected as illegal: %v", err)
					return
				}
				d.out <- fmt.Sprintf("move %v", m)
				d.printBoard()

			case "quit", "exit", "q":
				return

			default:
				// Assume a SAN move if not a recognized command.
				m, err := san.Parse(parts[0], d.g)
				if err != nil {
					d.out <- fmt.Sprintf("invalid move: %q: %v", parts[0], err)
					break
				}
				if err := d.g.ApplyMove(m); err != nil {
					d.out <- fmt.Sprintf("illegal move: %q: %v", parts[0], err)
					break
				}
				d.printBoard()
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	b := d.g.Board()

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d", rank+1))
		sb.WriteString(vertical)
		for file := 0; file < chess.NumFiles; file++ {
			if p, ok := b.Occupant(chess.NewSquare(file, rank)); ok {
				sb.WriteString(printPiece(p))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen:    %v", fen.Encode(d.g))
	if outcome, ok := d.g.Finished(); ok {
		d.out <- fmt.Sprintf("result: %v", outcome)
	} else {
		d.out <- fmt.Sprintf("to move: %v", d.g.SideToMove())
	}
	d.out <- ""
}

func printPiece(p chess.Piece) string {
	return string(p.Letter())
}
