package constants

import "time"

// Default intervals and tolerances used throughout the application
const (
	// Killswitch: how far (per axis, in pixels) the live pointer may drift
	// from the last scripted position before a run is aborted
	KillswitchTolerance = 2

	// MOVE settle detection
	SettlePollInterval = 5 * time.Millisecond
	SettleAttemptLimit = 50
	SettleTolerance    = 2

	// Position tracker sampling cadence
	TrackerInterval = 10 * time.Millisecond

	// How often the run command polls the interpreter for completion
	RunStatusPollInterval = 50 * time.Millisecond

	// Grace period before a run starts so the user can position the pointer
	DefaultStartDelay = 0 * time.Second
)
