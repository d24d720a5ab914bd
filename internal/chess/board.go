package chess

import (
	"strconv"
	"strings"
)

const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is the 8x8 grid. A nil cell is empty; no piece is referenced from two cells.
type Board struct {
	cells [8][8]*Piece
}

// NewBoard returns the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	for col := 1; col <= 8; col++ {
		b.set(Sq(1, col), &Piece{Kind: backRank[col-1], Color: White})
		b.set(Sq(2, col), &Piece{Kind: Pawn, Color: White})
		b.set(Sq(7, col), &Piece{Kind: Pawn, Color: Black})
		b.set(Sq(8, col), &Piece{Kind: backRank[col-1], Color: Black})
	}
	return b
}

// At returns the piece on sq, or nil for an empty or off-board square.
func (b *Board) At(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.cells[sq.Row-1][sq.Col-1]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq) == nil
}

func (b *Board) set(sq Square, p *Piece) {
	b.cells[sq.Row-1][sq.Col-1] = p
}

// Symbol returns the piece letter on sq, or ' ' when empty.
func (b *Board) Symbol(sq Square) byte {
	p := b.At(sq)
	if p == nil {
		return ' '
	}
	return p.Symbol()
}

// Clone returns a deep copy that shares no pieces with b.
func (b *Board) Clone() *Board {
	c := &Board{}
	for r := range b.cells {
		for f, p := range b.cells[r] {
			if p != nil {
				cp := *p
				c.cells[r][f] = &cp
			}
		}
	}
	return c
}

// Count returns how many pieces of the kind and colour are on the board.
func (b *Board) Count(kind Kind, color Color) int {
	n := 0
	for r := range b.cells {
		for _, p := range b.cells[r] {
			if p != nil && p.Kind == kind && p.Color == color {
				n++
			}
		}
	}
	return n
}

// Placement encodes the board as a FEN piece-placement field, rank 8 first.
// Falcons and hunters use F/f and H/h.
func (b *Board) Placement() string {
	var sb strings.Builder

	for row := 8; row >= 1; row-- {
		empty := 0
		for col := 1; col <= 8; col++ {
			p := b.At(Sq(row, col))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
