package script

import (
	"errors"
	"fmt"
)

// ErrUnterminatedBlock is the structural defect reported when a REPEAT
// has no matching END in scope. Unlike per-command conditions it aborts
// the run, since the script's control structure cannot be resolved.
var ErrUnterminatedBlock = errors.New("REPEAT without matching END")

// findBlockEnd returns the index of the END that closes the block whose
// body starts at start (the line after its REPEAT). Nested REPEATs
// increment a depth counter; an END at depth zero is the match.
func findBlockEnd(cmds []Command, start, end int) (int, error) {
	depth := 0
	for i := start; i < end; i++ {
		switch cmds[i].Kind {
		case KindRepeat:
			depth++
		case KindEnd:
			if depth == 0 {
				return i, nil
			}
			depth--
		}
	}
	return 0, fmt.Errorf("%w: block opened at line %d", ErrUnterminatedBlock, cmds[start-1].Line)
}
