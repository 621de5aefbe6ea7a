// Package snapshot persists the resumable game as three independently keyed
// values: the board as an 8x8 array of piece codes, the side to move, and the
// capture log in its rendered form.
package snapshot

import (
	"strings"

	"github.com/mvntahax/chess/internal/board"
	"github.com/mvntahax/chess/internal/game"
)

// Record is the persisted form of a game.
type Record struct {
	Board    [board.Size][board.Size]string
	Turn     string
	Captures []string
}

// Encode renders a game into its persisted form.
func Encode(g *game.Game) *Record {
	return &Record{
		Board:    g.Board.Codes(),
		Turn:     string(g.Turn),
		Captures: append([]string(nil), g.Log...),
	}
}

// Decode reconstructs a game from a record. It returns false when any part is
// malformed; callers degrade to a fresh game in that case.
//
// Terminal status is inferred by scanning the restored log for the win
// announcement marker. The winning move never flips the turn, so a finished
// game is restored as won by the stored side to move.
func Decode(rec *Record) (*game.Game, bool) {
	if rec == nil {
		return nil, false
	}
	b, ok := board.FromCodes(rec.Board)
	if !ok {
		return nil, false
	}
	turn := board.Color(rec.Turn)
	if turn != board.White && turn != board.Black {
		return nil, false
	}
	won := false
	for _, line := range rec.Captures {
		if strings.Contains(line, game.WinMarker) {
			won = true
			break
		}
	}
	return game.Restore(b, turn, append([]string(nil), rec.Captures...), won), true
}
