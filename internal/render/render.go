// Package render draws a Falcon-Hunter board as a text grid, rank 8 at the top.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/justinabrahms/chessvar/internal/chess"
)

const (
	Title     = "Falcon-Hunter Variant of Chess"
	header    = "     a   b   c   d   e   f   g   h"
	separator = "   ---------------------------------"
)

type Theme string

const (
	ThemeOff   Theme = "off"
	ThemeBrown Theme = "brown"
	ThemeGreen Theme = "green"
	ThemeGray  Theme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[Theme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

// ParseTheme validates a theme name.
func ParseTheme(name string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := themes[theme]; !ok {
		return "", fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", name)
	}
	return theme, nil
}

type Renderer struct {
	theme Theme
}

// New returns a renderer using theme, falling back to ThemeOff for unknown names.
func New(theme Theme) *Renderer {
	if _, ok := themes[theme]; !ok {
		theme = ThemeOff
	}
	return &Renderer{theme: theme}
}

func (r *Renderer) Theme() Theme {
	return r.theme
}

func (r *Renderer) SetTheme(theme Theme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	r.theme = theme
	return nil
}

// Render writes the titled grid for b to w.
func (r *Renderer) Render(w io.Writer, b *chess.Board) error {
	var sb strings.Builder

	sb.WriteString("\n     " + Title + "\n\n")
	sb.WriteString(header + "\n")
	sb.WriteString(separator + "\n")

	for row := 8; row >= 1; row-- {
		sb.WriteString(fmt.Sprintf("%d  |", row))
		for col := 1; col <= 8; col++ {
			sb.WriteString(r.cell(b, chess.Sq(row, col)))
			sb.WriteByte('|')
		}
		sb.WriteString("\n" + separator + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) cell(b *chess.Board, sq chess.Square) string {
	symbol := b.Symbol(sq)
	if r.theme == ThemeOff {
		return fmt.Sprintf(" %c ", symbol)
	}

	theme := themes[r.theme]
	bg := theme.lightBg
	if (sq.Row+sq.Col)%2 == 0 {
		bg = theme.darkBg
	}

	fg := theme.black
	if p := b.At(sq); p != nil && p.Color == chess.White {
		fg = theme.white
	}
	return fmt.Sprintf("%s%s %c %s", bg, fg, symbol, theme.reset)
}
