// Package session is the interactive layer over the game core. It owns the
// transient selection and keyboard cursor, drives the generator and executor,
// persists a snapshot after every applied move, and reports everything to the
// presentation collaborator.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mvntahax/chess/internal/archive"
	"github.com/mvntahax/chess/internal/board"
	"github.com/mvntahax/chess/internal/game"
	"github.com/mvntahax/chess/internal/msgcat"
	"github.com/mvntahax/chess/internal/obslog"
	"github.com/mvntahax/chess/internal/snapshot"
)

// SoundKind names the audio cues the presenter may play.
type SoundKind string

const (
	SoundMove    SoundKind = "move"
	SoundCapture SoundKind = "capture"
	SoundReset   SoundKind = "reset"
)

// Presenter is the outward collaborator surface. Implementations render, play
// sounds and show status text; the session never reaches into presentation
// state.
type Presenter interface {
	RenderBoard(b board.Board, selected *board.Square, destinations []board.Square)
	PlaySound(kind SoundKind)
	UpdateStatus(text string)
	FreezeInput()
	FocusCursor(sq board.Square)
}

// Manager owns one game and its selection. All methods run to completion on
// the caller's goroutine; the session expects exactly one caller at a time.
type Manager struct {
	gameID    string
	game      *game.Game
	store     snapshot.Store
	repo      archive.Repository
	presenter Presenter
	cat       *msgcat.Catalog

	selected *board.Square
	dests    []board.Square
	cursor   board.Square

	startedAt time.Time
	moves     int
	archived  bool
}

// NewManager restores the saved game when a snapshot exists and starts fresh
// otherwise. A malformed snapshot degrades to a fresh game.
func NewManager(ctx context.Context, store snapshot.Store, repo archive.Repository, presenter Presenter, cat *msgcat.Catalog) *Manager {
	m := &Manager{
		gameID:    uuid.NewString(),
		store:     store,
		repo:      repo,
		presenter: presenter,
		cat:       cat,
		cursor:    board.Square{Row: 6, Col: 4},
		startedAt: time.Now(),
	}

	rec, err := store.Load(ctx)
	if err != nil {
		obslog.L().Warn("snapshot_load_error", zap.Error(err))
	}
	if rec != nil {
		if g, ok := snapshot.Decode(rec); ok {
			m.game = g
			m.archived = g.Status == game.StatusWon
			obslog.L().Info("session_resume",
				zap.String("game_id", m.gameID),
				zap.String("turn", string(g.Turn)),
				zap.String("status", string(g.Status)),
				zap.Int("captures", len(g.Log)),
			)
			m.announceResume()
			m.render()
			return m
		}
		obslog.L().Warn("snapshot_decode_error", zap.String("game_id", m.gameID))
	}

	m.game = game.New()
	obslog.L().Info("session_start", zap.String("game_id", m.gameID))
	m.presenter.UpdateStatus(m.message("status.turn", map[string]any{"Color": m.game.Turn}))
	m.render()
	return m
}

// Game exposes the owned game state for read-only display.
func (m *Manager) Game() *game.Game { return m.game }

// Select picks the piece on (row, col) and caches its legal destinations.
// Selecting an empty square, an opponent piece, or anything after the game has
// ended clears the selection instead.
func (m *Manager) Select(row, col int) {
	m.clearSelection()
	sq := board.Square{Row: row, Col: col}

	switch {
	case m.game.Status != game.StatusInProgress:
		m.presenter.UpdateStatus(m.message("status.game_over", nil))
	case !sq.InBounds() || m.game.Board.At(sq).IsEmpty():
		m.presenter.UpdateStatus(m.message("status.empty_square", map[string]any{"Row": row, "Col": col}))
	case m.game.Board.At(sq).Color != m.game.Turn:
		m.presenter.UpdateStatus(m.message("status.not_your_piece", map[string]any{"Color": m.game.Turn}))
	default:
		m.selected = &sq
		m.dests = m.game.Destinations(sq)
		m.presenter.UpdateStatus(m.message("status.selected", map[string]any{
			"Piece": m.game.Board.At(sq).Kind,
			"Row":   row,
			"Col":   col,
			"Count": len(m.dests),
		}))
	}
	m.render()
}

// Deselect drops the current selection.
func (m *Manager) Deselect() {
	m.clearSelection()
	m.render()
}

// AttemptMove applies from -> to. The selection is cleared whether or not the
// move applies. Illegal attempts are rejected silently: status text only, no
// state mutation.
func (m *Manager) AttemptMove(ctx context.Context, fromRow, fromCol, toRow, toCol int) bool {
	m.clearSelection()
	from := board.Square{Row: fromRow, Col: fromCol}
	to := board.Square{Row: toRow, Col: toCol}

	out := m.game.ApplyMove(from, to)
	if !out.Applied {
		obslog.L().Debug("move_reject",
			zap.String("game_id", m.gameID),
			zap.Int("from_row", fromRow), zap.Int("from_col", fromCol),
			zap.Int("to_row", toRow), zap.Int("to_col", toCol),
		)
		if m.game.Status != game.StatusInProgress {
			m.presenter.UpdateStatus(m.message("status.game_over", nil))
		} else {
			m.presenter.UpdateStatus(m.message("status.illegal_move", nil))
		}
		m.render()
		return false
	}

	fields := []zap.Field{
		zap.String("game_id", m.gameID),
		zap.Int("from_row", fromRow), zap.Int("from_col", fromCol),
		zap.Int("to_row", toRow), zap.Int("to_col", toCol),
		zap.String("turn", string(m.game.Turn)),
	}
	if out.Capture != nil {
		fields = append(fields, zap.String("captured", string(out.Capture.Captured)))
	}
	obslog.L().Info("move_apply", fields...)
	m.moves++

	if out.Capture != nil {
		m.presenter.PlaySound(SoundCapture)
	} else {
		m.presenter.PlaySound(SoundMove)
	}

	m.persist(ctx)

	if out.Won {
		m.presenter.UpdateStatus(m.message("status.win", map[string]any{"Color": m.game.Winner}))
		m.presenter.FreezeInput()
		m.archiveResult(ctx)
	} else {
		m.presenter.UpdateStatus(m.message("status.turn", map[string]any{"Color": m.game.Turn}))
	}
	m.render()
	return true
}

// MoveCursor shifts the keyboard focus cursor one square, clamped to the
// board.
func (m *Manager) MoveCursor(direction string) {
	next := m.cursor
	switch direction {
	case "up":
		next.Row--
	case "down":
		next.Row++
	case "left":
		next.Col--
	case "right":
		next.Col++
	}
	if next.InBounds() {
		m.cursor = next
	}
	m.presenter.FocusCursor(m.cursor)
}

// Cursor returns the current focus square.
func (m *Manager) Cursor() board.Square { return m.cursor }

// Reset clears the persisted snapshot and returns the session to a fresh
// game.
func (m *Manager) Reset(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		obslog.L().Warn("snapshot_clear_error", zap.String("game_id", m.gameID), zap.Error(err))
	}
	m.game.Reset()
	m.clearSelection()
	m.gameID = uuid.NewString()
	m.startedAt = time.Now()
	m.moves = 0
	m.archived = false

	obslog.L().Info("session_reset", zap.String("game_id", m.gameID))
	m.presenter.PlaySound(SoundReset)
	m.presenter.UpdateStatus(m.message("status.reset", map[string]any{"Color": m.game.Turn}))
	m.render()
}

func (m *Manager) clearSelection() {
	m.selected = nil
	m.dests = nil
}

func (m *Manager) render() {
	m.presenter.RenderBoard(m.game.Board, m.selected, m.dests)
}

func (m *Manager) persist(ctx context.Context) {
	if err := m.store.Save(ctx, snapshot.Encode(m.game)); err != nil {
		// Persistence is a failure-tolerant side effect; the move stands.
		obslog.L().Warn("snapshot_save_error", zap.String("game_id", m.gameID), zap.Error(err))
	}
}

func (m *Manager) archiveResult(ctx context.Context) {
	if m.repo == nil || m.archived {
		return
	}
	m.archived = true
	rec := &archive.FinishedGame{
		GameID:    m.gameID,
		Winner:    m.game.Winner,
		Moves:     m.moves,
		Captures:  append([]string(nil), m.game.Log...),
		StartedAt: m.startedAt,
		EndedAt:   time.Now(),
	}
	if err := m.repo.SaveResult(ctx, rec); err != nil {
		obslog.L().Error("archive_save_error", zap.String("game_id", m.gameID), zap.Error(err))
		return
	}
	obslog.L().Info("archive_save", zap.String("game_id", m.gameID), zap.String("winner", string(m.game.Winner)))
}

func (m *Manager) announceResume() {
	if m.game.Status == game.StatusWon {
		m.presenter.UpdateStatus(m.message("status.win", map[string]any{"Color": m.game.Winner}))
		m.presenter.FreezeInput()
		return
	}
	m.presenter.UpdateStatus(m.message("status.resumed", map[string]any{"Color": m.game.Turn}))
}

func (m *Manager) message(key string, data map[string]any) string {
	s, err := m.cat.Render(key, data)
	if err != nil {
		obslog.L().Warn("msgcat_render_error", zap.String("key", key), zap.Error(err))
		return key
	}
	return s
}
