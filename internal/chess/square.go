package chess

import "fmt"

// Square addresses a board cell. Row and Col both run 1..8; column 1 is file 'a'.
type Square struct {
	Row int
	Col int
}

// Sq builds a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 1 && s.Row <= 8 && s.Col >= 1 && s.Col <= 8
}

func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col - 1), byte('0' + s.Row)})
}

// ParseSquare converts "e2"-style notation to a Square.
func ParseSquare(sq string) (Square, error) {
	if len(sq) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}

	file := sq[0]
	rank := sq[1]

	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}

	return Square{Row: int(rank-'1') + 1, Col: int(file-'a') + 1}, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(sq string) Square {
	s, err := ParseSquare(sq)
	if err != nil {
		panic(err)
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
