// Package archive records finished games. Only the terminal summary is kept;
// there is no move history.
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/mvntahax/chess/internal/board"
)

var ErrDuplicateGame = errors.New("finished game already archived")

// FinishedGame is the terminal summary persisted when a king is captured.
type FinishedGame struct {
	GameID    string
	Winner    board.Color
	Moves     int
	Captures  []string // the rendered capture log, win line included
	StartedAt time.Time
	EndedAt   time.Time
}

// Repository stores finished-game summaries.
type Repository interface {
	SaveResult(ctx context.Context, g *FinishedGame) error
	RecentResults(ctx context.Context, limit int) ([]*FinishedGame, error)
	Close() error
}
