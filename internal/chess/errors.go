package chess

import "errors"

var (
	ErrInvalidSquare       = errors.New("invalid square")
	ErrEmptySquare         = errors.New("no piece on start square")
	ErrWrongTurn           = errors.New("piece does not belong to side to move")
	ErrOccupiedBySelf      = errors.New("destination holds own piece")
	ErrIllegalShape        = errors.New("piece cannot move that way")
	ErrObstructed          = errors.New("path is blocked")
	ErrGameOver            = errors.New("game is over")
	ErrNotReinforcement    = errors.New("not a reinforcement piece")
	ErrNoCredit            = errors.New("no reinforcement credit")
	ErrAlreadyIntroduced   = errors.New("reinforcement already introduced")
	ErrOutOfEntryZone      = errors.New("square outside entry zone")
	ErrDestinationOccupied = errors.New("entry square is occupied")
	ErrInvalidFEN          = errors.New("invalid FEN")
)
