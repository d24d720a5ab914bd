package chess

import "fmt"

type Kind uint8

const (
	Pawn Kind = iota + 1
	Rook
	Knight
	Bishop
	Queen
	King
	// Falcon moves forward like a bishop and backward like a rook.
	Falcon
	// Hunter moves forward like a rook and backward like a bishop.
	Hunter
)

var kindNames = map[Kind]string{
	Pawn:   "pawn",
	Rook:   "rook",
	Knight: "knight",
	Bishop: "bishop",
	Queen:  "queen",
	King:   "king",
	Falcon: "falcon",
	Hunter: "hunter",
}

var kindLetters = map[Kind]byte{
	Pawn:   'P',
	Rook:   'R',
	Knight: 'N',
	Bishop: 'B',
	Queen:  'Q',
	King:   'K',
	Falcon: 'F',
	Hunter: 'H',
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsMajor reports whether losing a piece of this kind earns a reinforcement credit.
func (k Kind) IsMajor() bool {
	switch k {
	case Rook, Knight, Bishop, Queen:
		return true
	}
	return false
}

// IsReinforcement reports whether the kind enters mid-game instead of starting on the board.
func (k Kind) IsReinforcement() bool {
	return k == Falcon || k == Hunter
}

// ParseKind maps a piece letter to its kind and colour; upper case is White.
func ParseKind(letter byte) (Kind, Color, bool) {
	color := White
	if letter >= 'a' && letter <= 'z' {
		color = Black
		letter -= 'a' - 'A'
	}
	for k, l := range kindLetters {
		if l == letter {
			return k, color, true
		}
	}
	return 0, White, false
}

type Piece struct {
	Kind  Kind
	Color Color

	// introduced is only meaningful for reinforcement kinds and never resets.
	introduced bool
}

// Introduced reports whether a reinforcement piece has been placed on the board.
func (p *Piece) Introduced() bool {
	return p.introduced
}

// Symbol returns the piece letter, upper case for White.
func (p *Piece) Symbol() byte {
	l := kindLetters[p.Kind]
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

func (p *Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}

// ShapeOK reports whether moving p from one square to another matches the
// geometry of its kind, ignoring anything standing in between. dest is the
// piece on the destination square or nil; only pawns look at it.
func ShapeOK(p Piece, from, to Square, dest *Piece) bool {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr == 0 && dc == 0 {
		return false
	}

	fwd := p.Color.forward()

	switch p.Kind {
	case Pawn:
		return pawnShape(p.Color, from, dr, dc, dest)
	case Rook:
		return straight(dr, dc)
	case Bishop:
		return diagonal(dr, dc)
	case Queen:
		return straight(dr, dc) || diagonal(dr, dc)
	case King:
		return abs(dr) <= 1 && abs(dc) <= 1
	case Knight:
		return (abs(dr) == 2 && abs(dc) == 1) || (abs(dr) == 1 && abs(dc) == 2)
	case Falcon:
		if sign(dr) == fwd {
			return diagonal(dr, dc)
		}
		return sign(dr) == -fwd && dc == 0
	case Hunter:
		if sign(dr) == fwd {
			return dc == 0
		}
		return sign(dr) == -fwd && diagonal(dr, dc)
	}

	return false
}

func pawnShape(c Color, from Square, dr, dc int, dest *Piece) bool {
	fwd := c.forward()

	switch {
	case dc == 0 && dr == fwd:
		return dest == nil
	case dc == 0 && dr == 2*fwd:
		return from.Row == c.homeRow() && dest == nil
	case abs(dc) == 1 && dr == fwd:
		return dest != nil && dest.Color != c
	}

	return false
}

// straight excludes the null move; callers reject it first anyway.
func straight(dr, dc int) bool {
	return (dr == 0) != (dc == 0)
}

func diagonal(dr, dc int) bool {
	return dr != 0 && abs(dr) == abs(dc)
}
