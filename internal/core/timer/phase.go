package timer

// Phase is the current countdown segment.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseWork      Phase = "work"
	PhaseBreak     Phase = "break"
	PhaseLongBreak Phase = "long_break"
)

// Label returns the display name of the phase.
func (phase Phase) Label() string {
	switch phase {
	case PhaseWork:
		return "Work Time"
	case PhaseBreak:
		return "Break Time"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Ready to start"
	}
}

// Callbacks defines controller observers. All callbacks are invoked from the
// tick goroutine with the controller mutex released, so they may call back
// into the Controller.
type Callbacks struct {
	// OnTick fires after every one-second decrement while running.
	OnTick func(remainingSeconds int, phase Phase)
	// OnPhaseComplete fires exactly once when a phase reaches zero,
	// before the next phase starts counting.
	OnPhaseComplete func(finished Phase)
	// OnCycleUpdated fires whenever the completed work-cycle count changes.
	OnCycleUpdated func(completedCycles int)
	// OnStateChange fires on start, pause, resume, reset and phase
	// transitions with a snapshot of the new state.
	OnStateChange func(snapshot Snapshot)
}

// Snapshot is a value copy of the observable controller state.
type Snapshot struct {
	Phase            Phase
	RemainingSeconds int
	Running          bool
	Paused           bool
	CompletedCycles  int
	TechniqueName    string
}
