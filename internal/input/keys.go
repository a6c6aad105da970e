package input

import (
	"errors"
	"fmt"
	"strings"
)

// TargetKind says whether a resolved target is a keyboard key or a
// mouse button.
type TargetKind int

const (
	KeyTarget TargetKind = iota
	ButtonTarget
)

// Target is a resolved key or button, carrying the injector code for it.
type Target struct {
	Kind TargetKind
	Code string
}

// ErrUnknownTarget is returned when a script names a key or button that
// is not in the symbol table. Callers treat this as a per-command
// condition, not a script failure.
var ErrUnknownTarget = errors.New("unknown key or button")

// buttonNames maps script button names to robotgo button identifiers.
// Button names shadow key names, so the LEFT and RIGHT arrow keys are
// not reachable from scripts.
var buttonNames = map[string]string{
	"LEFT":   "left",
	"RIGHT":  "right",
	"MIDDLE": "center",
}

// keyNames maps the named special keys to robotgo key codes. Letters,
// digits and function keys are added in init.
var keyNames = map[string]string{
	"ENTER":     "enter",
	"SPACE":     "space",
	"TAB":       "tab",
	"ESCAPE":    "esc",
	"ESC":       "esc",
	"BACKSPACE": "backspace",
	"DELETE":    "delete",
	"INSERT":    "insert",
	"HOME":      "home",
	"END":       "end",
	"PAGE_UP":   "pageup",
	"PAGE_DOWN": "pagedown",
	"UP":        "up",
	"DOWN":      "down",
	"SHIFT":     "shift",
	"CONTROL":   "ctrl",
	"ALT":       "alt",
	"CMD":       "cmd",
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		keyNames[string(c)] = strings.ToLower(string(c))
	}
	for c := '0'; c <= '9'; c++ {
		keyNames[string(c)] = string(c)
	}
	for i := 1; i <= 12; i++ {
		keyNames[fmt.Sprintf("F%d", i)] = fmt.Sprintf("f%d", i)
	}
}

// ResolveTarget maps a script target name to a key or button code.
// Matching is case-insensitive; buttons are checked before keys.
func ResolveTarget(name string) (Target, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if code, ok := buttonNames[name]; ok {
		return Target{Kind: ButtonTarget, Code: code}, nil
	}
	if code, ok := keyNames[name]; ok {
		return Target{Kind: KeyTarget, Code: code}, nil
	}
	return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}
