// Package rules holds the static per-piece movement tables and the
// pseudo-legal destination generator built on them. Moves are validated by
// geometry and blocking only; whether a move exposes a king is never
// considered.
package rules

import "github.com/mvntahax/chess/internal/board"

type offset struct{ dr, dc int }

// Fixed single-step offsets.
var (
	knightSteps = [8]offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingSteps = [8]offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Ray directions for sliding pieces.
var (
	rookDirs   = [4]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = [4]offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// forward returns the row delta of a single pawn advance. White moves toward
// row 0, Black toward row 7.
func forward(c board.Color) int {
	if c == board.White {
		return -1
	}
	return 1
}

// startRow is the rank a pawn double-steps from.
func startRow(c board.Color) int {
	if c == board.White {
		return 6
	}
	return 1
}

// Destinations returns the pseudo-legal destination squares for the piece on
// from. The result is empty when the square is empty. It does not consult
// whose turn it is.
func Destinations(b *board.Board, from board.Square) []board.Square {
	if !from.InBounds() {
		return nil
	}
	p := b.At(from)
	if p.IsEmpty() {
		return nil
	}

	switch p.Kind {
	case board.Pawn:
		return pawnDestinations(b, from, p.Color)
	case board.Knight:
		return stepDestinations(b, from, p.Color, knightSteps[:])
	case board.King:
		return stepDestinations(b, from, p.Color, kingSteps[:])
	case board.Rook:
		return rayDestinations(b, from, p.Color, rookDirs[:])
	case board.Bishop:
		return rayDestinations(b, from, p.Color, bishopDirs[:])
	case board.Queen:
		dests := rayDestinations(b, from, p.Color, rookDirs[:])
		return append(dests, rayDestinations(b, from, p.Color, bishopDirs[:])...)
	}
	return nil
}

func pawnDestinations(b *board.Board, from board.Square, c board.Color) []board.Square {
	var dests []board.Square
	fwd := forward(c)

	one := board.Square{Row: from.Row + fwd, Col: from.Col}
	if one.InBounds() && b.At(one).IsEmpty() {
		dests = append(dests, one)
		// Double step only from the starting rank, and only when both the
		// passed-through square and the destination are empty.
		if from.Row == startRow(c) {
			two := board.Square{Row: from.Row + 2*fwd, Col: from.Col}
			if two.InBounds() && b.At(two).IsEmpty() {
				dests = append(dests, two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := board.Square{Row: from.Row + fwd, Col: from.Col + dc}
		if !diag.InBounds() {
			continue
		}
		if t := b.At(diag); !t.IsEmpty() && t.Color != c {
			dests = append(dests, diag)
		}
	}
	return dests
}

func stepDestinations(b *board.Board, from board.Square, c board.Color, steps []offset) []board.Square {
	var dests []board.Square
	for _, s := range steps {
		to := board.Square{Row: from.Row + s.dr, Col: from.Col + s.dc}
		if !to.InBounds() {
			continue
		}
		if t := b.At(to); t.IsEmpty() || t.Color != c {
			dests = append(dests, to)
		}
	}
	return dests
}

func rayDestinations(b *board.Board, from board.Square, c board.Color, dirs []offset) []board.Square {
	var dests []board.Square
	for _, d := range dirs {
		to := board.Square{Row: from.Row + d.dr, Col: from.Col + d.dc}
		for to.InBounds() {
			t := b.At(to)
			if t.IsEmpty() {
				dests = append(dests, to)
				to = board.Square{Row: to.Row + d.dr, Col: to.Col + d.dc}
				continue
			}
			// First occupant ends the ray; an opponent is a capture
			// destination, an own piece only blocks.
			if t.Color != c {
				dests = append(dests, to)
			}
			break
		}
	}
	return dests
}

// Contains reports whether sq is among dests.
func Contains(dests []board.Square, sq board.Square) bool {
	for _, d := range dests {
		if d == sq {
			return true
		}
	}
	return false
}
