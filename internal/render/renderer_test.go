package render

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/mvntahax/chess/internal/board"
)

func TestRenderPNGOpeningPosition(t *testing.T) {
	r := NewPNGRenderer()
	b := board.NewBoard()

	data, err := r.RenderPNG(context.Background(), b, Options{SquareSize: 32})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	want := 32*board.Size + 2*24
	if img.Bounds().Dx() != want || img.Bounds().Dy() != want {
		t.Fatalf("unexpected image size: %v", img.Bounds())
	}
}

func TestRenderPNGWithHighlights(t *testing.T) {
	r := NewPNGRenderer()
	b := board.NewBoard()
	sel := board.Square{Row: 6, Col: 4}

	data, err := r.RenderPNG(context.Background(), b, Options{
		Selected:     &sel,
		Destinations: []board.Square{{Row: 5, Col: 4}, {Row: 4, Col: 4}},
		SquareSize:   32,
	})
	if err != nil {
		t.Fatalf("RenderPNG with highlights: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty PNG output")
	}
}

func TestRenderPNGHonoursCancelledContext(t *testing.T) {
	r := NewPNGRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RenderPNG(ctx, board.NewBoard(), Options{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestEveryPieceGlyphLoads(t *testing.T) {
	kinds := []board.Kind{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King}
	for _, k := range kinds {
		for _, c := range []board.Color{board.White, board.Black} {
			if _, err := renderPieceImage(board.Piece{Kind: k, Color: c}, 32); err != nil {
				t.Fatalf("glyph %s %s: %v", c, k, err)
			}
		}
	}
}
