package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameFromFEN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		placement string
		turn      Color
		credits   [2]int
	}{
		{
			name:      "starting position",
			fen:       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			placement: StartingPlacement,
			turn:      White,
		},
		{
			name:      "black to move",
			fen:       "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e6 0 2",
			placement: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR",
			turn:      Black,
		},
		{
			name:      "white missing a rook and the queen",
			fen:       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NB1KBNR w Kkq - 0 1",
			placement: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NB1KBNR",
			turn:      White,
			credits:   [2]int{2, 0},
		},
		{
			name:      "bare kings",
			fen:       "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			placement: "4k3/8/8/8/8/8/8/4K3",
			turn:      White,
			credits:   [2]int{7, 7},
		},
		{
			name:      "promoted extras never go negative",
			fen:       "qqqqkqqq/8/8/8/8/8/8/4K3 b - - 0 1",
			placement: "qqqqkqqq/8/8/8/8/8/8/4K3",
			turn:      Black,
			credits:   [2]int{7, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			require.NoError(t, err)

			assert.Equal(t, tt.placement, g.Board().Placement())
			assert.Equal(t, tt.turn, g.Turn())
			assert.Equal(t, StatusActive, g.Status())
			assert.Equal(t, tt.credits[White], g.Credits(White))
			assert.Equal(t, tt.credits[Black], g.Credits(Black))
		})
	}
}

func TestNewGameFromFENRejects(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"garbage", "invalid-fen"},
		{"truncated", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"},
		{"bad rank", "invalid/board/config/here w KQkq - 0 1"},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "3kk3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidFEN)
		})
	}
}
