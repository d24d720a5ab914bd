package cli

import (
	"strings"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdEnter
	CmdBoard
	CmdStatus
	CmdColor
	CmdHelp
	CmdQuit
	CmdUnknown
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Parse turns one input line into a command. Moves are accepted as "e2e4",
// "e2 e4" or "move e2 e4" and always come back as two square arguments.
func Parse(line string) *Command {
	input := strings.TrimSpace(line)
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args, Raw: input}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "move":
		return moveCommand(args, input)
	case "enter":
		return &Command{Type: CmdEnter, Args: args, Raw: input}
	case "board":
		return &Command{Type: CmdBoard, Raw: input}
	case "status":
		return &Command{Type: CmdStatus, Raw: input}
	case "color", "colour":
		return &Command{Type: CmdColor, Args: args, Raw: input}
	case "help", "?":
		return &Command{Type: CmdHelp, Raw: input}
	case "quit", "exit":
		return &Command{Type: CmdQuit, Raw: input}
	default:
		// Assume it's a move
		return moveCommand(parts, input)
	}
}

func moveCommand(args []string, raw string) *Command {
	switch {
	case len(args) == 1 && len(args[0]) == 4:
		return &Command{Type: CmdMove, Args: []string{args[0][:2], args[0][2:]}, Raw: raw}
	case len(args) == 2:
		return &Command{Type: CmdMove, Args: []string{args[0], args[1]}, Raw: raw}
	default:
		return &Command{Type: CmdUnknown, Args: args, Raw: raw}
	}
}
