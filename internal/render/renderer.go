// Package render draws the board as a PNG from embedded SVG piece glyphs.
// It implements the render-board collaborator for hosts that want an image.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mvntahax/chess/internal/board"
)

// Options controls highlighting of the rendered board.
type Options struct {
	Selected     *board.Square
	Destinations []board.Square
	SquareSize   int // pixels per square, defaults to 72
}

var (
	lightSquare     = color.RGBA{R: 0xf0, G: 0xd9, B: 0xb5, A: 0xff}
	darkSquare      = color.RGBA{R: 0xb5, G: 0x88, B: 0x63, A: 0xff}
	selectedOverlay = color.RGBA{R: 0xf6, G: 0xf6, B: 0x69, A: 0x90}
	destOverlay     = color.RGBA{R: 0x2a, G: 0x70, B: 0x3c, A: 0x80}
	labelColor      = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	marginColor     = color.RGBA{R: 0xe8, G: 0xe2, B: 0xd8, A: 0xff}
)

const margin = 24

// PNGRenderer rasterizes boards. The zero value is ready to use.
type PNGRenderer struct{}

func NewPNGRenderer() *PNGRenderer { return &PNGRenderer{} }

// RenderPNG draws the board with the given highlights and returns PNG bytes.
func (r *PNGRenderer) RenderPNG(ctx context.Context, b board.Board, opts Options) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	square := opts.SquareSize
	if square <= 0 {
		square = 72
	}
	boardPx := square * board.Size
	total := boardPx + margin*2

	img := image.NewRGBA(image.Rect(0, 0, total, total))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(marginColor), image.Point{}, imagedraw.Src)

	origin := image.Point{X: margin, Y: margin}
	drawSquares(img, square, origin)
	drawHighlights(img, square, origin, opts)
	if err := drawPieces(img, &b, square, origin); err != nil {
		return nil, err
	}
	drawCoordinates(img, square, origin)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode board png: %w", err)
	}
	return buf.Bytes(), nil
}

func squareRect(square int, origin image.Point, sq board.Square) image.Rectangle {
	x := origin.X + sq.Col*square
	y := origin.Y + sq.Row*square
	return image.Rect(x, y, x+square, y+square)
}

func drawSquares(img *image.RGBA, square int, origin image.Point) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			fill := lightSquare
			if (r+c)%2 == 1 {
				fill = darkSquare
			}
			rect := squareRect(square, origin, board.Square{Row: r, Col: c})
			imagedraw.Draw(img, rect, image.NewUniform(fill), image.Point{}, imagedraw.Src)
		}
	}
}

func drawHighlights(img *image.RGBA, square int, origin image.Point, opts Options) {
	if opts.Selected != nil && opts.Selected.InBounds() {
		rect := squareRect(square, origin, *opts.Selected)
		imagedraw.Draw(img, rect, image.NewUniform(selectedOverlay), image.Point{}, imagedraw.Over)
	}
	// Destination markers: a centered dot-sized overlay.
	dot := square / 3
	for _, d := range opts.Destinations {
		if !d.InBounds() {
			continue
		}
		rect := squareRect(square, origin, d)
		inset := rect.Inset(dot)
		imagedraw.Draw(img, inset, image.NewUniform(destOverlay), image.Point{}, imagedraw.Over)
	}
}

func drawPieces(img *image.RGBA, b *board.Board, square int, origin image.Point) error {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			p := b.At(board.Square{Row: r, Col: c})
			if p.IsEmpty() {
				continue
			}
			glyph, err := renderPieceImage(p, square)
			if err != nil {
				return err
			}
			rect := squareRect(square, origin, board.Square{Row: r, Col: c})
			imagedraw.Draw(img, rect, glyph, image.Point{}, imagedraw.Over)
		}
	}
	return nil
}

func drawCoordinates(img *image.RGBA, square int, origin image.Point) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}
	boardPx := square * board.Size
	for c := 0; c < board.Size; c++ {
		label := string(rune('a' + c))
		w := d.MeasureString(label).Ceil()
		d.Dot = fixed.P(origin.X+c*square+(square-w)/2, origin.Y+boardPx+16)
		d.DrawString(label)
	}
	for r := 0; r < board.Size; r++ {
		label := fmt.Sprintf("%d", board.Size-r)
		d.Dot = fixed.P(origin.X-14, origin.Y+r*square+square/2+4)
		d.DrawString(label)
	}
}
