package board

// Color identifies a side. The string values are the persisted form.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Kind names a piece type. The string values are the persisted form used in
// rendered capture lines.
type Kind string

const (
	Pawn   Kind = "pawn"
	Rook   Kind = "rook"
	Knight Kind = "knight"
	Bishop Kind = "bishop"
	Queen  Kind = "queen"
	King   Kind = "king"
)

// Piece is a tagged value; the zero Piece is an empty square.
type Piece struct {
	Kind  Kind
	Color Color
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool { return p.Kind == "" }

var kindCodes = map[Kind]string{
	Pawn:   "P",
	Rook:   "R",
	Knight: "N",
	Bishop: "B",
	Queen:  "Q",
	King:   "K",
}

var codeKinds = map[string]Kind{
	"P": Pawn,
	"R": Rook,
	"N": Knight,
	"B": Bishop,
	"Q": Queen,
	"K": King,
}

// Code returns the snapshot code for the piece: uppercase letter for White,
// lowercase for Black, empty string for an empty square.
func (p Piece) Code() string {
	if p.IsEmpty() {
		return ""
	}
	c := kindCodes[p.Kind]
	if p.Color == Black {
		// A-Z to a-z
		c = string(c[0] + ('a' - 'A'))
	}
	return c
}

// PieceFromCode parses a snapshot code. The second return is false for any
// string that is not one of the twelve live piece codes or the empty string.
func PieceFromCode(code string) (Piece, bool) {
	if code == "" {
		return Piece{}, true
	}
	if len(code) != 1 {
		return Piece{}, false
	}
	color := White
	b := code[0]
	if b >= 'a' && b <= 'z' {
		color = Black
		b -= 'a' - 'A'
	}
	kind, ok := codeKinds[string(b)]
	if !ok {
		return Piece{}, false
	}
	return Piece{Kind: kind, Color: color}, true
}

// Square addresses a board cell. Row 0 is the top rank (Black's back rank),
// col 0 is the leftmost file.
type Square struct {
	Row int
	Col int
}

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// Size is the board edge length.
const Size = 8

// Board is an 8x8 grid of pieces, indexed [row][col].
type Board [Size][Size]Piece

// At returns the piece on sq. Callers must pass in-bounds squares.
func (b *Board) At(sq Square) Piece { return b[sq.Row][sq.Col] }

// Set places p on sq.
func (b *Board) Set(sq Square, p Piece) { b[sq.Row][sq.Col] = p }

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard opening arrangement: Black on rows 0-1,
// White on rows 6-7.
func NewBoard() Board {
	var b Board
	for col := 0; col < Size; col++ {
		b[0][col] = Piece{Kind: backRank[col], Color: Black}
		b[1][col] = Piece{Kind: Pawn, Color: Black}
		b[6][col] = Piece{Kind: Pawn, Color: White}
		b[7][col] = Piece{Kind: backRank[col], Color: White}
	}
	return b
}

// Codes returns the snapshot form of the board: an 8x8 array of piece codes.
func (b *Board) Codes() [Size][Size]string {
	var out [Size][Size]string
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = b[r][c].Code()
		}
	}
	return out
}

// FromCodes rebuilds a board from its snapshot form. It fails on any cell that
// is not a valid piece code.
func FromCodes(codes [Size][Size]string) (Board, bool) {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p, ok := PieceFromCode(codes[r][c])
			if !ok {
				return Board{}, false
			}
			b[r][c] = p
		}
	}
	return b, true
}
