package chess

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Game is the variant's state machine. It is not safe for concurrent use;
// callers serialise MakeMove and IntroduceReservePiece themselves.
type Game struct {
	board  *Board
	turn   Color
	status GameStatus

	// credits[c] counts majors of colour c captured minus reinforcements c has entered.
	credits [2]int

	// reserve holds each side's falcon and hunter, on or off the board.
	reserve [2]map[Kind]*Piece

	log zerolog.Logger
}

type Option func(*Game)

// WithLogger routes rejection and capture events to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// NewGame returns a game in the standard starting position with White to move.
func NewGame(opts ...Option) *Game {
	return newGame(NewBoard(), White, opts...)
}

func newGame(board *Board, turn Color, opts ...Option) *Game {
	g := &Game{
		board:  board,
		turn:   turn,
		status: StatusActive,
		log:    zerolog.Nop(),
	}
	for _, c := range []Color{White, Black} {
		g.reserve[c] = map[Kind]*Piece{
			Falcon: {Kind: Falcon, Color: c},
			Hunter: {Kind: Hunter, Color: c},
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Status() GameStatus {
	return g.status
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// Credits returns how many reinforcements c may still enter.
func (g *Game) Credits(c Color) int {
	return g.credits[c]
}

// Introduced reports whether c has already entered its piece of the given kind.
func (g *Game) Introduced(c Color, kind Kind) bool {
	p, ok := g.reserve[c][kind]
	return ok && p.introduced
}

// Board returns a copy of the current position.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// MakeMove moves the side-to-move's piece from one square to another,
// capturing whatever opposing piece stands on the destination. A rejected
// move leaves the game untouched.
func (g *Game) MakeMove(from, to Square) (*MoveResult, error) {
	mover, err := g.checkMove(from, to)
	if err != nil {
		g.log.Debug().
			Str("from", from.String()).
			Str("to", to.String()).
			Str("turn", g.turn.String()).
			Err(err).
			Msg("Move rejected")
		return nil, err
	}

	result := &MoveResult{
		From:  from.String(),
		To:    to.String(),
		Piece: string(mover.Symbol()),
	}

	if captured := g.board.At(to); captured != nil {
		result.Captured = string(captured.Symbol())
		if captured.Kind.IsMajor() {
			g.credits[captured.Color]++
		}
		if captured.Kind == King {
			g.status = winnerStatus(mover.Color)
		}
		g.log.Info().
			Str("square", to.String()).
			Str("captured", captured.String()).
			Int("credits", g.credits[captured.Color]).
			Msg("Piece captured")
	}

	g.board.set(to, mover)
	g.board.set(from, nil)

	if g.status == StatusActive {
		g.turn = g.turn.Opponent()
	} else {
		g.log.Info().Str("result", string(g.status)).Msg("King captured, game over")
	}

	return g.finish(result), nil
}

func (g *Game) checkMove(from, to Square) (*Piece, error) {
	if g.status != StatusActive {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, g.status)
	}
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidSquare, from, to)
	}

	mover := g.board.At(from)
	if mover == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if mover.Color != g.turn {
		return nil, fmt.Errorf("%w: %s on %s, %s to move", ErrWrongTurn, mover, from, g.turn)
	}

	dest := g.board.At(to)
	if dest != nil && dest.Color == mover.Color {
		return nil, fmt.Errorf("%w: %s on %s", ErrOccupiedBySelf, dest, to)
	}
	if !ShapeOK(*mover, from, to, dest) {
		return nil, fmt.Errorf("%w: %s from %s to %s", ErrIllegalShape, mover, from, to)
	}
	if !g.board.PathClear(from, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrObstructed, from, to)
	}

	return mover, nil
}

// IntroduceReservePiece enters the side-to-move's falcon or hunter on an
// empty square of its first two ranks, spending one credit.
func (g *Game) IntroduceReservePiece(kind Kind, at Square) (*MoveResult, error) {
	p, err := g.checkEntry(kind, at)
	if err != nil {
		g.log.Debug().
			Str("kind", kind.String()).
			Str("square", at.String()).
			Str("turn", g.turn.String()).
			Err(err).
			Msg("Reinforcement rejected")
		return nil, err
	}

	g.board.set(at, p)
	p.introduced = true
	g.credits[p.Color]--
	g.turn = g.turn.Opponent()

	g.log.Info().
		Str("piece", p.String()).
		Str("square", at.String()).
		Int("credits", g.credits[p.Color]).
		Msg("Reinforcement entered")

	return g.finish(&MoveResult{
		To:      at.String(),
		Piece:   string(p.Symbol()),
		Entered: true,
	}), nil
}

func (g *Game) checkEntry(kind Kind, at Square) (*Piece, error) {
	if g.status != StatusActive {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, g.status)
	}
	if !at.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSquare, at)
	}
	if !kind.IsReinforcement() {
		return nil, fmt.Errorf("%w: %s", ErrNotReinforcement, kind)
	}
	if !g.turn.inEntryZone(at.Row) {
		return nil, fmt.Errorf("%w: %s for %s", ErrOutOfEntryZone, at, g.turn)
	}
	if g.credits[g.turn] == 0 {
		return nil, fmt.Errorf("%w: %s has lost no major piece to replace", ErrNoCredit, g.turn)
	}

	p := g.reserve[g.turn][kind]
	if p.introduced {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyIntroduced, p)
	}
	if !g.board.IsEmpty(at) {
		return nil, fmt.Errorf("%w: %s", ErrDestinationOccupied, at)
	}

	return p, nil
}

func (g *Game) finish(result *MoveResult) *MoveResult {
	result.Placement = g.board.Placement()
	result.GameOver = g.status != StatusActive
	result.Result = string(g.status)
	return result
}
