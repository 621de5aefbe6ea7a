package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/mvntahax/chess/internal/board"
)

type repository struct {
	db *sql.DB
}

// NewRepository opens a Postgres-backed repository and pings it before
// returning.
func NewRepository(databaseURL string) (Repository, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database URL required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &repository{db: db}, nil
}

func (r *repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *repository) SaveResult(ctx context.Context, g *FinishedGame) error {
	if g == nil {
		return fmt.Errorf("nil finished game payload")
	}
	capturesRaw, err := json.Marshal(g.Captures)
	if err != nil {
		return fmt.Errorf("marshal captures: %w", err)
	}

	const query = `
		INSERT INTO finished_games (
			game_id,
			winner,
			moves,
			captures,
			started_at,
			ended_at
		)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6)
		ON CONFLICT (game_id) DO NOTHING
		RETURNING game_id`

	var id sql.NullString
	err = r.db.QueryRowContext(
		ctx,
		query,
		g.GameID,
		string(g.Winner),
		g.Moves,
		capturesRaw,
		g.StartedAt,
		g.EndedAt,
	).Scan(&id)
	if err == sql.ErrNoRows || (err == nil && !id.Valid) {
		return ErrDuplicateGame
	}
	if err != nil {
		return fmt.Errorf("insert finished game: %w", err)
	}
	return nil
}

func (r *repository) RecentResults(ctx context.Context, limit int) ([]*FinishedGame, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
		SELECT
			game_id,
			winner,
			moves,
			captures,
			started_at,
			ended_at
		FROM finished_games
		ORDER BY ended_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select finished games: %w", err)
	}
	defer rows.Close()

	games := make([]*FinishedGame, 0, limit)
	for rows.Next() {
		var (
			g           FinishedGame
			winner      string
			capturesRaw []byte
		)
		if err := rows.Scan(&g.GameID, &winner, &g.Moves, &capturesRaw, &g.StartedAt, &g.EndedAt); err != nil {
			return nil, fmt.Errorf("scan finished game: %w", err)
		}
		g.Winner = board.Color(winner)
		if err := json.Unmarshal(capturesRaw, &g.Captures); err != nil {
			return nil, fmt.Errorf("unmarshal captures: %w", err)
		}
		games = append(games, &g)
	}
	return games, rows.Err()
}
