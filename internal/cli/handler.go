// Package cli runs an interactive Falcon-Hunter game over a line reader.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justinabrahms/chessvar/internal/chess"
	"github.com/justinabrahms/chessvar/internal/render"
)

// LineReader is the input side of the loop. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type Handler struct {
	engine   *chess.Engine
	renderer *render.Renderer
	out      io.Writer
	log      zerolog.Logger
	prompt   string
	gameID   string
}

func New(out io.Writer, renderer *render.Renderer, logger zerolog.Logger, prompt string) *Handler {
	return &Handler{
		renderer: renderer,
		out:      out,
		log:      logger,
		prompt:   prompt,
	}
}

// NewGame starts a game from the standard position, or from fen when it is
// not empty. The previous game is kept if fen does not parse.
func (h *Handler) NewGame(fen string) error {
	id := uuid.New().String()
	logger := h.log.With().Str("game_id", id).Logger()

	var engine *chess.Engine
	if fen == "" {
		engine = chess.NewEngine(chess.WithLogger(logger))
	} else {
		var err error
		engine, err = chess.NewEngineFromFEN(fen, chess.WithLogger(logger))
		if err != nil {
			return err
		}
	}

	h.engine = engine
	h.gameID = id
	logger.Info().Str("placement", engine.GetPlacement()).Msg("Game started")
	return nil
}

// Engine returns the current game's engine, or nil before the first game.
func (h *Handler) Engine() *chess.Engine {
	return h.engine
}

func (h *Handler) GameID() string {
	return h.gameID
}

// Run reads commands until quit, end of input or an interrupt on an empty line.
func (h *Handler) Run(in LineReader) error {
	for {
		in.SetPrompt(h.Prompt())

		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		if !h.ProcessCommand(Parse(line)) {
			return nil
		}
	}
}

// Prompt names the side to move while a game is in progress.
func (h *Handler) Prompt() string {
	if h.engine != nil && h.engine.GetStatus() == chess.StatusActive {
		return fmt.Sprintf("%s [%s]> ", h.prompt, h.engine.GetActiveColor())
	}
	return h.prompt + "> "
}

// ProcessCommand handles one command and returns false to exit.
func (h *Handler) ProcessCommand(cmd *Command) bool {
	switch cmd.Type {
	case CmdQuit:
		return false

	case CmdNone:

	case CmdNew:
		h.startGame("")

	case CmdResume:
		if len(cmd.Args) < 1 {
			h.ShowMessage("Usage: resume <FEN string>")
			return true
		}
		h.startGame(strings.Join(cmd.Args, " "))

	case CmdMove:
		if !h.requireGame() {
			return true
		}
		result, err := h.engine.MakeMove(cmd.Args[0], cmd.Args[1])
		if err != nil {
			h.ShowError(fmt.Errorf("invalid move: %w", err))
			return true
		}
		h.showResult(result)

	case CmdEnter:
		if len(cmd.Args) != 2 {
			h.ShowMessage("Usage: enter <F|H|f|h> <square>")
			return true
		}
		if !h.requireGame() {
			return true
		}
		result, err := h.engine.EnterFairyPiece(cmd.Args[0], cmd.Args[1])
		if err != nil {
			h.ShowError(fmt.Errorf("invalid entry: %w", err))
			return true
		}
		h.showResult(result)

	case CmdBoard:
		if h.requireGame() {
			h.showBoard()
		}

	case CmdStatus:
		if h.requireGame() {
			h.showStatus()
		}

	case CmdColor:
		if len(cmd.Args) < 1 {
			h.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		theme, err := render.ParseTheme(cmd.Args[0])
		if err == nil {
			err = h.renderer.SetTheme(theme)
		}
		if err != nil {
			h.ShowError(err)
			return true
		}
		h.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
		if h.engine != nil {
			h.showBoard()
		}

	case CmdHelp:
		h.ShowHelp()

	default:
		h.ShowMessage(fmt.Sprintf("Unknown command: %s (type 'help' for commands)", cmd.Raw))
	}

	return true
}

func (h *Handler) startGame(fen string) {
	if err := h.NewGame(fen); err != nil {
		h.ShowError(err)
		return
	}
	h.showBoard()
}

func (h *Handler) requireGame() bool {
	if h.engine == nil {
		h.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
		return false
	}
	return true
}

func (h *Handler) showResult(result *chess.MoveResult) {
	switch {
	case result.Entered:
		h.ShowMessage(fmt.Sprintf("%s enters on %s", result.Piece, result.To))
	case result.Captured != "":
		h.ShowMessage(fmt.Sprintf("%s %s-%s takes %s", result.Piece, result.From, result.To, result.Captured))
	default:
		h.ShowMessage(fmt.Sprintf("%s %s-%s", result.Piece, result.From, result.To))
	}

	h.showBoard()

	if result.GameOver {
		h.ShowGameOver(chess.GameStatus(result.Result))
	}
}

func (h *Handler) showBoard() {
	if err := h.renderer.Render(h.out, h.engine.Game().Board()); err != nil {
		h.log.Error().Err(err).Msg("Failed to render board")
	}
}

func (h *Handler) showStatus() {
	g := h.engine.Game()

	switch g.Status() {
	case chess.StatusActive:
		h.ShowMessage(fmt.Sprintf("%s to move", titleCase(g.Turn().String())))
	default:
		h.ShowMessage(winnerLine(g.Status()))
	}

	for _, c := range []chess.Color{chess.White, chess.Black} {
		var reserve []string
		for _, kind := range []chess.Kind{chess.Falcon, chess.Hunter} {
			if !g.Introduced(c, kind) {
				reserve = append(reserve, string((&chess.Piece{Kind: kind, Color: c}).Symbol()))
			}
		}
		if len(reserve) == 0 {
			reserve = []string{"-"}
		}
		h.ShowMessage(fmt.Sprintf("%s: credits %d, reserve %s",
			titleCase(c.String()), g.Credits(c), strings.Join(reserve, " ")))
	}
}

func (h *Handler) ShowMessage(msg string) {
	fmt.Fprintln(h.out, msg)
}

func (h *Handler) ShowError(err error) {
	h.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (h *Handler) ShowGameOver(status chess.GameStatus) {
	h.ShowMessage(fmt.Sprintf("\nGame Over: %s", winnerLine(status)))
	h.ShowMessage("Start a new game with 'new' or 'resume'.")
}

func (h *Handler) ShowWelcome() {
	h.ShowMessage("Welcome to " + render.Title + "!")
	h.ShowMessage("Commands: new, resume <FEN>, <move>, enter <piece> <square>, board, status, help/?, quit/exit")
	h.ShowMessage("Example: 'resume 4k3/8/8/8/8/8/8/4K3 w - - 0 1' to start from bare kings.")
	h.ShowMessage("")
}

func (h *Handler) ShowHelp() {
	help := `Commands:
  new                  - Start a new game from the standard position
  resume <FEN>         - Start from a FEN position
  <move>               - Move a piece (e.g., e2e4, e2 e4, move g1 f3)
  enter <piece> <sq>   - Bring in a reinforcement: F/H for White, f/h for Black,
                         on an empty square of your first two ranks
  board                - Show the board
  status               - Show whose turn it is, credits and reserves
  color <theme>        - Set board color theme (off|brown|green|gray)
  quit/exit            - Exit the program
  help/?               - Show this help message

Rules:
  Falcon (F) moves diagonally forward and straight backward.
  Hunter (H) moves straight forward and diagonally backward.
  Each major piece (R, N, B, Q) you lose earns one reinforcement.
  Capture the enemy king to win.`

	h.ShowMessage(help)
}

func winnerLine(status chess.GameStatus) string {
	switch status {
	case chess.StatusWhiteWon:
		return "White wins"
	case chess.StatusBlackWon:
		return "Black wins"
	default:
		return "Game in progress"
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
