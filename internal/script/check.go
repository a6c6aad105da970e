package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leprpht/autoclick/internal/input"
)

// Problem is one finding from a script check. Errors mean the run would
// abort (structural defects); warnings mean lines that would be skipped
// with a diagnostic at execution time.
type Problem struct {
	Line     int
	Severity string // "error" or "warning"
	Message  string
}

// Check validates a parsed script without executing it. It flags
// unterminated REPEAT blocks as errors, and unrecognized commands,
// unresolvable targets and malformed arguments as warnings. Target
// resolution is lazy at run time, so a bad name is never more than a
// warning here.
func Check(cmds []Command) []Problem {
	var problems []Problem
	warn := func(line int, format string, args ...any) {
		problems = append(problems, Problem{Line: line, Severity: "warning", Message: fmt.Sprintf(format, args...)})
	}

	var open []Command // REPEAT lines awaiting their END
	for _, cmd := range cmds {
		switch cmd.Kind {
		case KindPress, KindRelease, KindClick:
			if _, err := input.ResolveTarget(cmd.Arg); err != nil {
				warn(cmd.Line, "unknown key or button %q, line would be skipped", cmd.Arg)
			}
		case KindMove:
			if _, _, err := parseCoords(cmd.Arg); err != nil {
				warn(cmd.Line, "invalid MOVE coordinates %q, expected x,y", cmd.Arg)
			}
		case KindWait:
			if ms, err := strconv.Atoi(strings.TrimSpace(cmd.Arg)); err != nil || ms < 0 {
				warn(cmd.Line, "invalid WAIT duration %q", cmd.Arg)
			}
		case KindRepeat:
			if n, err := strconv.Atoi(strings.TrimSpace(cmd.Arg)); err != nil || n < 0 {
				warn(cmd.Line, "invalid REPEAT count %q, block would run zero times", cmd.Arg)
			}
			open = append(open, cmd)
		case KindEnd:
			if len(open) == 0 {
				warn(cmd.Line, "END without an open REPEAT ends the enclosing scope early")
			} else {
				open = open[:len(open)-1]
			}
		case KindInvalid:
			warn(cmd.Line, "unrecognized command %q, line would be skipped", strings.TrimSpace(cmd.Text))
		}
	}

	for _, cmd := range open {
		problems = append(problems, Problem{
			Line:     cmd.Line,
			Severity: "error",
			Message:  "REPEAT without matching END, run would abort when the block is entered",
		})
	}
	return problems
}
