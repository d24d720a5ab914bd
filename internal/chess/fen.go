package chess

import (
	"fmt"

	notnil "github.com/notnil/chess"
)

// majorsPerSide is the number of rooks, knights, bishops and queens each side starts with.
const majorsPerSide = 7

var fromNotnil = map[notnil.PieceType]Kind{
	notnil.Pawn:   Pawn,
	notnil.Rook:   Rook,
	notnil.Knight: Knight,
	notnil.Bishop: Bishop,
	notnil.Queen:  Queen,
	notnil.King:   King,
}

// NewGameFromFEN sets up a game from a standard FEN string. Castling,
// en passant and the move clocks are parsed but play no part in this variant.
// Each side's reinforcement credits are the majors missing from its starting
// complement, as if they had been captured.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	var pos notnil.Position
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	board := &Board{}
	for sq, pc := range pos.Board().SquareMap() {
		kind, ok := fromNotnil[pc.Type()]
		if !ok {
			continue
		}
		color := White
		if pc.Color() == notnil.Black {
			color = Black
		}
		board.set(Sq(int(sq.Rank())+1, int(sq.File())+1), &Piece{Kind: kind, Color: color})
	}

	for _, c := range []Color{White, Black} {
		if n := board.Count(King, c); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", ErrInvalidFEN, c, n)
		}
	}

	turn := White
	if pos.Turn() == notnil.Black {
		turn = Black
	}

	g := newGame(board, turn, opts...)
	for _, c := range []Color{White, Black} {
		majors := 0
		for _, k := range []Kind{Rook, Knight, Bishop, Queen} {
			majors += board.Count(k, c)
		}
		if missing := majorsPerSide - majors; missing > 0 {
			g.credits[c] = missing
		}
	}

	return g, nil
}
