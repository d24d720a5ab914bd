package chess

import (
	"fmt"
)

// Engine drives a Game with algebraic square names ("e2") and piece letters.
type Engine struct {
	game *Game
}

func NewEngine(opts ...Option) *Engine {
	return &Engine{
		game: NewGame(opts...),
	}
}

func NewEngineFromFEN(fen string, opts ...Option) (*Engine, error) {
	game, err := NewGameFromFEN(fen, opts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		game: game,
	}, nil
}

func (e *Engine) MakeMove(from, to string) (*MoveResult, error) {
	fromSquare, err := ParseSquare(from)
	if err != nil {
		return nil, err
	}
	toSquare, err := ParseSquare(to)
	if err != nil {
		return nil, err
	}

	return e.game.MakeMove(fromSquare, toSquare)
}

// EnterFairyPiece places a falcon or hunter named by its letter: F or H for
// White, f or h for Black. The letter's case must match the side to move.
func (e *Engine) EnterFairyPiece(symbol, at string) (*MoveResult, error) {
	if e.game.Status() != StatusActive {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, e.game.Status())
	}

	kind, color, err := ParseReserve(symbol)
	if err != nil {
		return nil, err
	}
	if color != e.game.Turn() {
		return nil, fmt.Errorf("%w: %s is %s, %s to move", ErrWrongTurn, symbol, color, e.game.Turn())
	}

	square, err := ParseSquare(at)
	if err != nil {
		return nil, err
	}

	return e.game.IntroduceReservePiece(kind, square)
}

func (e *Engine) Game() *Game {
	return e.game
}

func (e *Engine) GetPlacement() string {
	return e.game.board.Placement()
}

func (e *Engine) GetStatus() GameStatus {
	return e.game.Status()
}

func (e *Engine) GetActiveColor() string {
	return e.game.Turn().String()
}

// ParseReserve maps a reinforcement letter to its kind and colour.
func ParseReserve(symbol string) (Kind, Color, error) {
	if len(symbol) != 1 {
		return 0, White, fmt.Errorf("%w: %q", ErrNotReinforcement, symbol)
	}

	kind, color, ok := ParseKind(symbol[0])
	if !ok || !kind.IsReinforcement() {
		return 0, White, fmt.Errorf("%w: %q", ErrNotReinforcement, symbol)
	}

	return kind, color, nil
}
