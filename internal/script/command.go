package script

import (
	"fmt"
	"strings"
)

// Kind identifies the command on a script line.
type Kind int

const (
	// KindSkip marks blank and comment lines; they execute as no-ops.
	KindSkip Kind = iota
	KindPress
	KindRelease
	KindClick
	KindMove
	KindWait
	KindRepeat
	KindEnd
	KindHalt
	// KindInvalid marks an unrecognized command word. Executing it only
	// reports a diagnostic.
	KindInvalid
)

// Command is one parsed script line. Arg holds the raw argument text;
// it is decoded at execution time, not here, so a bad key name or
// coordinate inside a block that never runs costs nothing.
type Command struct {
	Kind Kind
	Arg  string
	Line int    // 1-based line number, for diagnostics
	Text string // original line text
}

// Parse classifies a single script line. Command words are matched
// case-sensitively; the remainder of the line after the first whitespace
// run is kept as the raw argument.
func Parse(line string, number int) Command {
	cmd := Command{Line: number, Text: line}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		cmd.Kind = KindSkip
		return cmd
	}

	word := trimmed
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		word = trimmed[:i]
		cmd.Arg = strings.TrimSpace(trimmed[i+1:])
	}

	switch word {
	case "PRESS":
		cmd.Kind = KindPress
	case "RELEASE":
		cmd.Kind = KindRelease
	case "CLICK":
		cmd.Kind = KindClick
	case "MOVE":
		cmd.Kind = KindMove
	case "WAIT":
		cmd.Kind = KindWait
	case "REPEAT":
		cmd.Kind = KindRepeat
	case "END":
		cmd.Kind = KindEnd
	case "HALT":
		cmd.Kind = KindHalt
	default:
		cmd.Kind = KindInvalid
	}
	return cmd
}

// ParseScript splits script text into lines and parses each one. The
// resulting slice is the addressing scheme for the whole run: block
// boundaries are line indices into it.
func ParseScript(text string) []Command {
	lines := strings.Split(text, "\n")
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		cmds = append(cmds, Parse(line, i+1))
	}
	return cmds
}

func (k Kind) String() string {
	switch k {
	case KindSkip:
		return "SKIP"
	case KindPress:
		return "PRESS"
	case KindRelease:
		return "RELEASE"
	case KindClick:
		return "CLICK"
	case KindMove:
		return "MOVE"
	case KindWait:
		return "WAIT"
	case KindRepeat:
		return "REPEAT"
	case KindEnd:
		return "END"
	case KindHalt:
		return "HALT"
	default:
		return "INVALID"
	}
}

func (c Command) String() string {
	if c.Arg == "" {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s %s", c.Kind, c.Arg)
}
