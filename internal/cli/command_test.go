package cli

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		typ   CommandType
		args  []string
	}{
		{"", CmdNone, nil},
		{"   ", CmdNone, nil},
		{"new", CmdNew, []string{}},
		{"resume 4k3/8/8/8/8/8/8/4K3 w - - 0 1", CmdResume, []string{"4k3/8/8/8/8/8/8/4K3", "w", "-", "-", "0", "1"}},
		{"e2e4", CmdMove, []string{"e2", "e4"}},
		{"e2 e4", CmdMove, []string{"e2", "e4"}},
		{"move g1 f3", CmdMove, []string{"g1", "f3"}},
		{"MOVE g1f3", CmdMove, []string{"g1", "f3"}},
		{"enter F a1", CmdEnter, []string{"F", "a1"}},
		{"enter h", CmdEnter, []string{"h"}},
		{"board", CmdBoard, nil},
		{"status", CmdStatus, nil},
		{"color green", CmdColor, []string{"green"}},
		{"help", CmdHelp, nil},
		{"?", CmdHelp, nil},
		{"quit", CmdQuit, nil},
		{"exit", CmdQuit, nil},
		{"e2", CmdUnknown, []string{"e2"}},
		{"castle kingside now", CmdUnknown, []string{"castle", "kingside", "now"}},
		{"move e2", CmdUnknown, []string{"e2"}},
	}

	for _, test := range tests {
		cmd := Parse(test.input)
		if cmd.Type != test.typ {
			t.Errorf("Parse(%q).Type = %v, expected %v", test.input, cmd.Type, test.typ)
			continue
		}
		if !reflect.DeepEqual(cmd.Args, test.args) {
			t.Errorf("Parse(%q).Args = %#v, expected %#v", test.input, cmd.Args, test.args)
		}
	}
}
