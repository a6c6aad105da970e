package script

// pointerDiverged reports whether the live pointer has drifted from the
// last script-commanded position by more than the tolerance on either
// axis. It runs before every command, including inside tight repeat
// loops, so it is one position read and two comparisons and nothing
// else; in particular it never updates the baseline.
func (in *Interpreter) pointerDiverged() bool {
	p := in.inj.Location()
	return abs(p.X-in.lastPos.X) > in.opts.Tolerance || abs(p.Y-in.lastPos.Y) > in.opts.Tolerance
}
