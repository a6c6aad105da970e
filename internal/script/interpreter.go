package script

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leprpht/autoclick/internal/constants"
	"github.com/leprpht/autoclick/internal/input"
	"github.com/leprpht/autoclick/internal/logging"
)

// Options tunes the interpreter's timing and safety behavior. Zero
// fields fall back to the defaults in internal/constants.
type Options struct {
	// Per-axis pixel tolerance before the killswitch trips.
	Tolerance int
	// How often the MOVE settle loop re-reads the pointer.
	SettleInterval time.Duration
	// How many settle polls a MOVE gets before giving up.
	SettleAttempts int
}

// Interpreter runs scripts against an injector. At most one run is
// active per instance; a run executes on its own goroutine and is
// stopped cooperatively, checked before every command.
type Interpreter struct {
	inj  input.Injector
	opts Options

	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc

	// Last position the script itself put the pointer at. Owned by the
	// run goroutine: set once at run start and after that only by MOVE,
	// never by the killswitch check.
	lastPos input.Point
}

// New creates an interpreter. The injector is required; there is no
// degraded mode without one.
func New(inj input.Injector, opts Options) (*Interpreter, error) {
	if inj == nil {
		return nil, errors.New("interpreter requires an injector")
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = constants.KillswitchTolerance
	}
	if opts.SettleInterval <= 0 {
		opts.SettleInterval = constants.SettlePollInterval
	}
	if opts.SettleAttempts <= 0 {
		opts.SettleAttempts = constants.SettleAttemptLimit
	}
	return &Interpreter{inj: inj, opts: opts}, nil
}

// IsRunning reports whether a run is active. Safe to poll frequently.
func (in *Interpreter) IsRunning() bool {
	return in.running.Load()
}

// Halt requests an immediate stop of any active run. Safe to call when
// idle. The run observes the request before its next command, so the
// stop latency is bounded by one command's execution.
func (in *Interpreter) Halt() {
	in.mu.Lock()
	if in.cancel != nil {
		in.cancel()
	}
	in.mu.Unlock()
	in.running.Store(false)
}

// Start begins executing the script text on a new goroutine and returns
// whether a run was started. Starting while a run is active is a no-op;
// callers poll IsRunning for completion.
func (in *Interpreter) Start(text string) bool {
	if !in.running.CompareAndSwap(false, true) {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	in.mu.Lock()
	in.cancel = cancel
	in.mu.Unlock()

	cmds := ParseScript(text)
	// The killswitch baseline starts at wherever the pointer really is.
	in.lastPos = in.inj.Location()

	go func() {
		defer func() {
			cancel()
			in.running.Store(false)
		}()
		logging.Debug("run started", "lines", len(cmds))
		if err := in.runRange(ctx, cmds, 0, len(cmds)); err != nil {
			logging.Error("run aborted", "error", err)
			return
		}
		logging.Debug("run finished")
	}()
	return true
}

// runRange executes cmds[start:end] in order. REPEAT blocks recurse into
// the same function; a HALT or killswitch trip clears the running flag,
// which every enclosing level observes before its next command.
func (in *Interpreter) runRange(ctx context.Context, cmds []Command, start, end int) error {
	for i := start; i < end; i++ {
		if in.pointerDiverged() {
			logging.Warn("pointer moved externally, halting", "line", cmds[i].Line)
			in.Halt()
		}
		if ctx.Err() != nil || !in.running.Load() {
			return nil
		}

		cmd := cmds[i]
		switch cmd.Kind {
		case KindSkip:
		case KindPress:
			in.press(cmd)
		case KindRelease:
			in.release(cmd)
		case KindClick:
			in.click(cmd)
		case KindMove:
			in.move(ctx, cmd)
		case KindWait:
			in.wait(ctx, cmd)
		case KindRepeat:
			next, err := in.repeat(ctx, cmds, i, end)
			if err != nil {
				return err
			}
			i = next
		case KindHalt:
			in.Halt()
			return nil
		case KindEnd:
			// A bare END closes whatever scope reached it.
			return nil
		case KindInvalid:
			logging.Warn("skipping unrecognized command", "line", cmd.Line, "text", strings.TrimSpace(cmd.Text))
		}
	}
	return nil
}

// repeat resolves the block for the REPEAT at index at, runs the body
// count times, and returns the index of the matching END so the caller
// resumes after it. The block end is resolved before the count is read:
// an unterminated block is a structural defect even when the body would
// never run.
func (in *Interpreter) repeat(ctx context.Context, cmds []Command, at, end int) (int, error) {
	blockEnd, err := findBlockEnd(cmds, at+1, end)
	if err != nil {
		return 0, err
	}

	count, cerr := strconv.Atoi(strings.TrimSpace(cmds[at].Arg))
	if cerr != nil || count < 0 {
		logging.Warn("invalid repeat count, running block zero times", "line", cmds[at].Line, "count", cmds[at].Arg)
		count = 0
	}

	for r := 0; r < count && in.running.Load(); r++ {
		if err := in.runRange(ctx, cmds, at+1, blockEnd); err != nil {
			return 0, err
		}
	}
	return blockEnd, nil
}

func (in *Interpreter) press(cmd Command) {
	t, err := input.ResolveTarget(cmd.Arg)
	if err != nil {
		logging.Warn("skipping invalid key or button", "line", cmd.Line, "target", cmd.Arg)
		return
	}
	in.apply(cmd, t, true)
}

func (in *Interpreter) release(cmd Command) {
	t, err := input.ResolveTarget(cmd.Arg)
	if err != nil {
		logging.Warn("skipping invalid key or button", "line", cmd.Line, "target", cmd.Arg)
		return
	}
	in.apply(cmd, t, false)
}

func (in *Interpreter) click(cmd Command) {
	t, err := input.ResolveTarget(cmd.Arg)
	if err != nil {
		logging.Warn("skipping invalid key or button", "line", cmd.Line, "target", cmd.Arg)
		return
	}
	in.apply(cmd, t, true)
	in.apply(cmd, t, false)
}

// apply drives a single press or release through the injector. Injector
// failures are per-command diagnostics, not run failures.
func (in *Interpreter) apply(cmd Command, t input.Target, down bool) {
	var err error
	switch {
	case t.Kind == input.ButtonTarget && down:
		err = in.inj.MouseDown(t.Code)
	case t.Kind == input.ButtonTarget:
		err = in.inj.MouseUp(t.Code)
	case down:
		err = in.inj.KeyDown(t.Code)
	default:
		err = in.inj.KeyUp(t.Code)
	}
	if err != nil {
		logging.Warn("injector call failed", "line", cmd.Line, "target", t.Code, "error", err)
	}
}

// move commands the pointer to x,y and then polls until the live
// position settles within tolerance of the target, or the attempt budget
// runs out. Whatever position it observes last becomes the new
// killswitch baseline, which is how script-driven movement is told apart
// from user movement.
func (in *Interpreter) move(ctx context.Context, cmd Command) {
	x, y, err := parseCoords(cmd.Arg)
	if err != nil {
		logging.Warn("invalid MOVE coordinates", "line", cmd.Line, "args", cmd.Arg)
		return
	}

	if err := in.inj.MoveMouse(x, y); err != nil {
		logging.Warn("pointer move failed", "line", cmd.Line, "error", err)
		return
	}

	pos := in.inj.Location()
	settled := false
	for attempt := 0; attempt < in.opts.SettleAttempts; attempt++ {
		if abs(pos.X-x) <= constants.SettleTolerance && abs(pos.Y-y) <= constants.SettleTolerance {
			settled = true
			break
		}
		select {
		case <-ctx.Done():
			in.lastPos = pos
			return
		case <-time.After(in.opts.SettleInterval):
		}
		pos = in.inj.Location()
	}
	if !settled {
		logging.Debug("pointer did not settle", "line", cmd.Line, "target_x", x, "target_y", y, "at_x", pos.X, "at_y", pos.Y)
	}
	in.lastPos = pos
}

// wait suspends the run for the given number of milliseconds. A halt
// request during the wait wakes it early; that is a stop, not an error.
func (in *Interpreter) wait(ctx context.Context, cmd Command) {
	ms, err := strconv.Atoi(strings.TrimSpace(cmd.Arg))
	if err != nil || ms < 0 {
		logging.Warn("invalid wait time", "line", cmd.Line, "args", cmd.Arg)
		return
	}
	select {
	case <-time.After(time.Duration(ms) * time.Millisecond):
	case <-ctx.Done():
	}
}

// parseCoords decodes a "x,y" argument.
func parseCoords(arg string) (int, int, error) {
	first, second, ok := strings.Cut(arg, ",")
	if !ok {
		return 0, 0, errors.New("expected x,y")
	}
	x, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
