package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mvntahax/chess/internal/board"
)

func TestMemoryRepositorySaveAndList(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	now := time.Now()
	for i, id := range []string{"g1", "g2", "g3"} {
		g := &FinishedGame{
			GameID:    id,
			Winner:    board.White,
			Moves:     10 + i,
			Captures:  []string{"white eliminated king", "white wins by checkmate!"},
			StartedAt: now.Add(-time.Hour),
			EndedAt:   now.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.SaveResult(ctx, g); err != nil {
			t.Fatalf("SaveResult(%s): %v", id, err)
		}
	}

	got, err := repo.RecentResults(ctx, 2)
	if err != nil {
		t.Fatalf("RecentResults: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit not applied: got %d results", len(got))
	}
	if got[0].GameID != "g3" || got[1].GameID != "g2" {
		t.Fatalf("results not newest-first: %s, %s", got[0].GameID, got[1].GameID)
	}
}

func TestMemoryRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	g := &FinishedGame{GameID: "g1", Winner: board.Black, EndedAt: time.Now()}

	if err := repo.SaveResult(ctx, g); err != nil {
		t.Fatalf("first SaveResult: %v", err)
	}
	if err := repo.SaveResult(ctx, g); !errors.Is(err, ErrDuplicateGame) {
		t.Fatalf("expected ErrDuplicateGame, got %v", err)
	}
}
