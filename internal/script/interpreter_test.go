package script

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leprpht/autoclick/internal/input"
)

// fakeInjector records every effect call and settles moves instantly.
// setPos simulates the user grabbing the mouse.
type fakeInjector struct {
	mu    sync.Mutex
	calls []string
	pos   input.Point
}

func (f *fakeInjector) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeInjector) KeyDown(code string) error  { f.record("keydown %s", code); return nil }
func (f *fakeInjector) KeyUp(code string) error    { f.record("keyup %s", code); return nil }
func (f *fakeInjector) MouseDown(btn string) error { f.record("mousedown %s", btn); return nil }
func (f *fakeInjector) MouseUp(btn string) error   { f.record("mouseup %s", btn); return nil }

func (f *fakeInjector) MoveMouse(x, y int) error {
	f.mu.Lock()
	f.pos = input.Point{X: x, Y: y}
	f.mu.Unlock()
	f.record("move %d,%d", x, y)
	return nil
}

func (f *fakeInjector) Location() input.Point {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos
}

func (f *fakeInjector) setPos(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos = input.Point{X: x, Y: y}
}

// effects returns the recorded calls that hit the effect surface
// (press/release), which is what the ordering guarantees are about.
func (f *fakeInjector) effects() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if !strings.HasPrefix(c, "move ") {
			out = append(out, c)
		}
	}
	return out
}

func newTestInterpreter(t *testing.T) (*Interpreter, *fakeInjector) {
	t.Helper()
	fake := &fakeInjector{}
	in, err := New(fake, Options{})
	require.NoError(t, err)
	return in, fake
}

func runToCompletion(t *testing.T, in *Interpreter, text string) {
	t.Helper()
	require.True(t, in.Start(text))
	waitStopped(t, in)
}

func waitStopped(t *testing.T, in *Interpreter) {
	t.Helper()
	require.Eventually(t, func() bool { return !in.IsRunning() }, 2*time.Second, 2*time.Millisecond)
}

func TestNewRequiresInjector(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)
}

func TestExecutesLinesInOrder(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "PRESS A\nCLICK LEFT\nRELEASE A")

	assert.Equal(t, []string{
		"keydown a",
		"mousedown left",
		"mouseup left",
		"keyup a",
	}, fake.effects())
}

func TestRepeatZeroSkipsBody(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "REPEAT 0\nCLICK LEFT\nEND\nPRESS B")

	assert.Equal(t, []string{"keydown b"}, fake.effects())
}

func TestInvalidRepeatCountRunsBlockZeroTimes(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "REPEAT banana\nCLICK LEFT\nEND\nPRESS B")

	assert.Equal(t, []string{"keydown b"}, fake.effects())
}

func TestNestedRepeatsMultiply(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "REPEAT 2\nREPEAT 3\nCLICK LEFT\nEND\nEND")

	// 2 x 3 click pairs, in order.
	effects := fake.effects()
	require.Len(t, effects, 12)
	for i := 0; i < 12; i += 2 {
		assert.Equal(t, "mousedown left", effects[i])
		assert.Equal(t, "mouseup left", effects[i+1])
	}
}

func TestHaltUnwindsAllNestingLevels(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "REPEAT 2\nREPEAT 2\nCLICK LEFT\nHALT\nEND\nEND\nCLICK RIGHT")

	// Exactly one click pair before the halt, nothing after it at any level.
	assert.Equal(t, []string{"mousedown left", "mouseup left"}, fake.effects())
}

func TestBareEndTerminatesRun(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "CLICK LEFT\nEND\nCLICK RIGHT")

	assert.Equal(t, []string{"mousedown left", "mouseup left"}, fake.effects())
}

func TestUnresolvedTargetIsSkippedNotFatal(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "PRESS NOSUCHKEY\nCLICK LEFT")

	assert.Equal(t, []string{"mousedown left", "mouseup left"}, fake.effects())
}

func TestUnrecognizedCommandIsSkippedNotFatal(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "DOUBLECLICK LEFT\nCLICK LEFT")

	assert.Equal(t, []string{"mousedown left", "mouseup left"}, fake.effects())
}

func TestUnterminatedRepeatAbortsRun(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "PRESS A\nREPEAT 4\nCLICK LEFT")

	assert.Equal(t, []string{"keydown a"}, fake.effects())
	assert.False(t, in.IsRunning())
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	in, _ := newTestInterpreter(t)

	require.True(t, in.Start("WAIT 500"))
	assert.True(t, in.IsRunning())
	assert.False(t, in.Start("CLICK LEFT"))

	in.Halt()
	waitStopped(t, in)

	// Once idle again, a new run may begin.
	assert.True(t, in.Start("WAIT 1"))
	waitStopped(t, in)
}

func TestHaltWhenIdleIsSafe(t *testing.T) {
	in, _ := newTestInterpreter(t)
	in.Halt()
	assert.False(t, in.IsRunning())
}

func TestKillswitchStopsRunOnExternalMovement(t *testing.T) {
	in, fake := newTestInterpreter(t)

	require.True(t, in.Start("WAIT 150\nCLICK LEFT"))
	time.Sleep(30 * time.Millisecond)
	fake.setPos(40, 40) // user grabs the mouse during the wait

	waitStopped(t, in)
	assert.Empty(t, fake.effects())
}

func TestKillswitchToleratesSmallDrift(t *testing.T) {
	in, fake := newTestInterpreter(t)

	require.True(t, in.Start("WAIT 100\nCLICK LEFT"))
	time.Sleep(20 * time.Millisecond)
	fake.setPos(2, 1) // within the 2 pixel tolerance on both axes

	waitStopped(t, in)
	assert.Equal(t, []string{"mousedown left", "mouseup left"}, fake.effects())
}

func TestMoveResetsKillswitchBaseline(t *testing.T) {
	in, fake := newTestInterpreter(t)

	// The move lands at 100,100; without the baseline reset the click
	// would trip the killswitch.
	runToCompletion(t, in, "MOVE 100,100\nCLICK LEFT")

	assert.Equal(t, []string{"mousedown left", "mouseup left"}, fake.effects())
}

func TestInvalidMoveCoordinatesAreSkipped(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "MOVE nowhere\nCLICK LEFT")

	assert.Equal(t, []string{"mousedown left", "mouseup left"}, fake.effects())
}

func TestHaltInterruptsWait(t *testing.T) {
	in, fake := newTestInterpreter(t)

	require.True(t, in.Start("WAIT 5000\nCLICK LEFT"))
	time.Sleep(20 * time.Millisecond)

	start := time.Now()
	in.Halt()
	waitStopped(t, in)

	assert.Less(t, time.Since(start), time.Second)
	assert.Empty(t, fake.effects())
}

func TestExampleScript(t *testing.T) {
	in, fake := newTestInterpreter(t)

	runToCompletion(t, in, "WAIT 10\nMOVE 5,5\nREPEAT 3\nCLICK LEFT\nEND\nHALT")

	// Three click pairs, six effect calls, then the explicit halt.
	effects := fake.effects()
	require.Len(t, effects, 6)
	assert.False(t, in.IsRunning())
}
