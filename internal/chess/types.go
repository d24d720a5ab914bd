package chess

type GameStatus string

const (
	StatusActive   GameStatus = "active"
	StatusWhiteWon GameStatus = "white_won"
	StatusBlackWon GameStatus = "black_won"
)

// Color is the side a piece belongs to. White moves toward row 8.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is +1 for White and -1 for Black.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// homeRow is the pawn starting row.
func (c Color) homeRow() int {
	if c == White {
		return 2
	}
	return 7
}

// inEntryZone reports whether row lies in the side's first two ranks.
func (c Color) inEntryZone(row int) bool {
	if c == White {
		return row <= 2
	}
	return row >= 7
}

func winnerStatus(c Color) GameStatus {
	if c == White {
		return StatusWhiteWon
	}
	return StatusBlackWon
}

type MoveResult struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Entered   bool   `json:"entered"`   // reinforcement placed rather than moved
	Placement string `json:"placement"` // board after the move
	GameOver  bool   `json:"gameOver"`
	Result    string `json:"result"`
}
