package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/justinabrahms/chessvar/internal/cli"
	"github.com/justinabrahms/chessvar/internal/config"
	"github.com/justinabrahms/chessvar/internal/render"
)

func main() {
	// Parse command line flags
	fs := pflag.NewFlagSet("chessvar", pflag.ExitOnError)
	var showHelp bool
	fs.BoolVarP(&showHelp, "help", "h", false, "Show help information")
	config.RegisterFlags(fs)
	fs.Usage = showHelpMessage
	_ = fs.Parse(os.Args[1:])

	if showHelp {
		showHelpMessage()
		return
	}

	// Load config
	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}

	// Setup logging
	setupLogging(cfg.Log)

	theme := render.Theme(cfg.Display.Theme)
	if theme != render.ThemeOff && !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Debug().Str("theme", string(theme)).Msg("Stdout is not a terminal, disabling colors")
		theme = render.ThemeOff
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.CLI.Prompt + "> ",
		HistoryFile:     cfg.CLI.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise terminal")
	}
	defer rl.Close()

	handler := cli.New(rl.Stdout(), render.New(theme), log.Logger, cfg.CLI.Prompt)
	handler.ShowWelcome()

	if cfg.CLI.FEN != "" {
		if err := handler.NewGame(cfg.CLI.FEN); err != nil {
			log.Fatal().Err(err).Str("fen", cfg.CLI.FEN).Msg("Failed to set up position")
		}
		handler.ProcessCommand(cli.Parse("board"))
	}

	if err := handler.Run(rl); err != nil {
		log.Error().Err(err).Msg("Command loop stopped")
		rl.Close()
		os.Exit(1)
	}
}

func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func showHelpMessage() {
	fmt.Println(`chessvar - Falcon-Hunter Variant of Chess

DESCRIPTION:
    Interactive two-player game of the Falcon-Hunter chess variant.
    Standard pieces move as in chess, without check, castling, en passant
    or promotion. Capturing the enemy king wins.

    Each side holds a Falcon and a Hunter in reserve. Every major piece
    (rook, knight, bishop, queen) a side loses lets it bring one of them
    onto an empty square of its own first two ranks, in place of a move.

    Falcon: forward diagonally, backward straight.
    Hunter: forward straight, backward diagonally.

USAGE:
    chessvar [OPTIONS]

OPTIONS:
    -h, --help                 Show this help message
        --theme <name>         Board colours: off, brown, green, gray (default: off)
        --log-level <level>    trace, debug, info, warn, error, disabled (default: info)
        --log-pretty           Human-readable logs on stderr
        --prompt <text>        Prompt text (default: chessvar)
        --history-file <path>  Keep command history in this file
        --fen <FEN>            Start from this position instead of the standard one

CONFIGURATION:
    Every option can also be set through the environment, flags taking
    precedence:
        CHESSVAR_DISPLAY_THEME, CHESSVAR_LOG_LEVEL, CHESSVAR_LOG_PRETTY,
        CHESSVAR_CLI_PROMPT, CHESSVAR_CLI_HISTORY_FILE, CHESSVAR_CLI_FEN

COMMANDS:
    new, resume <FEN>, e2e4 | e2 e4 | move e2 e4, enter <F|H|f|h> <square>,
    board, status, color <theme>, help | ?, quit | exit

EXAMPLES:
    # Play from the standard position
    chessvar

    # Coloured board with debug logs
    chessvar --theme green --log-level debug --log-pretty

    # Start from bare kings, each side owed seven reinforcements
    chessvar --fen "4k3/8/8/8/8/8/8/4K3 w - - 0 1"`)
}
