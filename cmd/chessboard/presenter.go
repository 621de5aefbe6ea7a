package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mvntahax/chess/internal/board"
	appcfg "github.com/mvntahax/chess/internal/config"
	"github.com/mvntahax/chess/internal/msgcat"
	"github.com/mvntahax/chess/internal/obslog"
	"github.com/mvntahax/chess/internal/render"
	"github.com/mvntahax/chess/internal/session"
)

var glyphs = map[string]string{
	"K": "♔", "Q": "♕", "R": "♖", "B": "♗", "N": "♘", "P": "♙",
	"k": "♚", "q": "♛", "r": "♜", "b": "♝", "n": "♞", "p": "♟",
}

// terminalPresenter is the presentation collaborator for the interactive
// host: unicode board on stdout, sound cues as text, optional PNG dump.
type terminalPresenter struct {
	cat      *msgcat.Catalog
	renderer *render.PNGRenderer
	imageDir string
	square   int
	frozen   bool
}

func newTerminalPresenter(cfg *appcfg.AppConfig, cat *msgcat.Catalog) *terminalPresenter {
	p := &terminalPresenter{cat: cat, imageDir: cfg.BoardImageDir, square: cfg.BoardImageSquare}
	if p.imageDir != "" {
		p.renderer = render.NewPNGRenderer()
	}
	return p
}

func (p *terminalPresenter) RenderBoard(b board.Board, selected *board.Square, dests []board.Square) {
	destSet := make(map[board.Square]bool, len(dests))
	for _, d := range dests {
		destSet[d] = true
	}

	var sb strings.Builder
	sb.WriteString("    0  1  2  3  4  5  6  7\n")
	for r := 0; r < board.Size; r++ {
		fmt.Fprintf(&sb, " %d ", r)
		for c := 0; c < board.Size; c++ {
			sq := board.Square{Row: r, Col: c}
			cell := " "
			if g, ok := glyphs[b.At(sq).Code()]; ok {
				cell = g
			}
			switch {
			case selected != nil && *selected == sq:
				fmt.Fprintf(&sb, "[%s]", cell)
			case destSet[sq]:
				fmt.Fprintf(&sb, "(%s)", cell)
			default:
				fmt.Fprintf(&sb, " %s ", cell)
			}
		}
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())

	p.dumpImage(b, selected, dests)
}

// ShowBoard redraws without any highlight.
func (p *terminalPresenter) ShowBoard(b board.Board) {
	p.RenderBoard(b, nil, nil)
}

func (p *terminalPresenter) dumpImage(b board.Board, selected *board.Square, dests []board.Square) {
	if p.renderer == nil {
		return
	}
	data, err := p.renderer.RenderPNG(context.Background(), b, render.Options{
		Selected:     selected,
		Destinations: dests,
		SquareSize:   p.square,
	})
	if err != nil {
		obslog.L().Warn("board_image_render_error", zap.Error(err))
		return
	}
	path := filepath.Join(p.imageDir, "board.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		obslog.L().Warn("board_image_write_error", zap.String("path", path), zap.Error(err))
	}
}

func (p *terminalPresenter) PlaySound(kind session.SoundKind) {
	// No audio device in a terminal; the bell plus a cue line stands in.
	fmt.Printf("\a[%s]\n", kind)
}

func (p *terminalPresenter) UpdateStatus(text string) {
	fmt.Println(text)
}

func (p *terminalPresenter) FreezeInput() {
	p.frozen = true
}

func (p *terminalPresenter) FocusCursor(sq board.Square) {
	fmt.Printf("cursor at (%d,%d)\n", sq.Row, sq.Col)
}

func (p *terminalPresenter) message(key string) string {
	s, err := p.cat.Render(key, nil)
	if err != nil {
		return key
	}
	return s
}
