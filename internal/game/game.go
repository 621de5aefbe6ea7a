// Package game holds the turn/capture/win state machine. All board mutation
// funnels through ApplyMove.
package game

import (
	"fmt"

	"github.com/mvntahax/chess/internal/board"
	"github.com/mvntahax/chess/internal/rules"
)

// Status is the game lifecycle state.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusWon        Status = "WON"
)

// WinMarker is the substring that marks a win announcement in the rendered
// capture log. Snapshot loading scans for it to reconstruct a finished game.
const WinMarker = "wins by checkmate"

// CaptureEvent records one capture, oldest first in the log.
type CaptureEvent struct {
	By       board.Color
	Captured board.Kind
}

// Line renders the event in its persisted form.
func (e CaptureEvent) Line() string {
	return fmt.Sprintf("%s eliminated %s", e.By, e.Captured)
}

func winLine(by board.Color) string {
	return fmt.Sprintf("%s %s!", by, WinMarker)
}

// Outcome reports what a move application did.
type Outcome struct {
	Applied bool
	Capture *CaptureEvent
	Won     bool
}

// Game owns the board, the side to move, the lifecycle status, and the
// rendered capture log. The log is append-only; it is cleared only by Reset.
type Game struct {
	Board  board.Board
	Turn   board.Color
	Status Status
	Winner board.Color // set when Status == StatusWon
	Log    []string
}

// New returns a fresh game: standard opening position, White to move.
func New() *Game {
	return &Game{
		Board:  board.NewBoard(),
		Turn:   board.White,
		Status: StatusInProgress,
	}
}

// Restore rebuilds a game from snapshot parts. won freezes the game as a win
// for the restored side to move (the winning move never flips the turn, so the
// stored side is the winner).
func Restore(b board.Board, turn board.Color, log []string, won bool) *Game {
	g := &Game{Board: b, Turn: turn, Status: StatusInProgress, Log: log}
	if won {
		g.Status = StatusWon
		g.Winner = turn
	}
	return g
}

// Destinations returns the pseudo-legal destinations for the piece on sq.
func (g *Game) Destinations(sq board.Square) []board.Square {
	return rules.Destinations(&g.Board, sq)
}

// ApplyMove relocates the piece on from to to and advances the state machine.
// A call that violates the contract (game over, wrong side, destination not in
// the generated set) applies nothing and reports Applied=false; no error is
// raised for illegal input.
func (g *Game) ApplyMove(from, to board.Square) Outcome {
	if g.Status != StatusInProgress {
		return Outcome{}
	}
	if !from.InBounds() || !to.InBounds() {
		return Outcome{}
	}
	mover := g.Board.At(from)
	if mover.IsEmpty() || mover.Color != g.Turn {
		return Outcome{}
	}
	if !rules.Contains(rules.Destinations(&g.Board, from), to) {
		return Outcome{}
	}

	target := g.Board.At(to)
	g.Board.Set(to, mover)
	g.Board.Set(from, board.Piece{})

	out := Outcome{Applied: true}
	if !target.IsEmpty() {
		ev := CaptureEvent{By: g.Turn, Captured: target.Kind}
		g.Log = append(g.Log, ev.Line())
		out.Capture = &ev
		if target.Kind == board.King {
			// Terminal: the capturing piece lands, the turn does not flip,
			// and no further move is accepted.
			g.Status = StatusWon
			g.Winner = g.Turn
			g.Log = append(g.Log, winLine(g.Turn))
			out.Won = true
			return out
		}
	}

	g.Turn = g.Turn.Other()
	return out
}

// Reset returns the game to the fresh initial state and clears the log.
func (g *Game) Reset() {
	*g = *New()
}
