package timer

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Config contains runtime options for the Controller.
type Config struct {
	TickInterval time.Duration
}

// Controller owns the countdown state machine and phase sequencing. A single
// goroutine per session drives the ticking; all requests are safe to call
// from any goroutine. The generation counter retires superseded sessions so a
// stale loop can never emit callbacks after pause or reset.
type Controller struct {
	mu         sync.Mutex
	options    Config
	callbacks  Callbacks
	technique  model.Technique
	phase      Phase
	remaining  int
	running    bool
	paused     bool
	cycles     int
	generation uint64
}

// New creates an idle Controller governed by the given technique. The
// technique must already be validated.
func New(technique model.Technique, options Config) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Controller{
		options:   options,
		technique: technique,
		phase:     PhaseIdle,
		remaining: technique.WorkMinutes * 60,
	}
}

// SetCallbacks registers the observers. Replaces any previous set.
func (controller *Controller) SetCallbacks(callbacks Callbacks) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.callbacks = callbacks
}

// Snapshot returns a value copy of the observable state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// ActiveTechnique returns the technique currently governing durations.
func (controller *Controller) ActiveTechnique() model.Technique {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.technique
}

// Start begins a new work session from idle, or resumes a paused session
// with its remaining time unchanged. A no-op while already running.
func (controller *Controller) Start() {
	controller.mu.Lock()
	if controller.running && !controller.paused {
		controller.mu.Unlock()
		return
	}

	cycleReset := false
	if controller.running && controller.paused {
		controller.paused = false
	} else {
		controller.running = true
		controller.paused = false
		controller.phase = PhaseWork
		controller.remaining = controller.technique.WorkMinutes * 60
		controller.cycles = 0
		cycleReset = true
	}
	controller.generation++
	generation := controller.generation
	callbacks := controller.callbacks
	snapshot := controller.snapshotLocked()
	controller.mu.Unlock()

	if cycleReset && callbacks.OnCycleUpdated != nil {
		callbacks.OnCycleUpdated(0)
	}
	if callbacks.OnStateChange != nil {
		callbacks.OnStateChange(snapshot)
	}

	go controller.run(generation)
}

// Pause freezes the countdown. A no-op unless running and unpaused.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	if !controller.running || controller.paused {
		controller.mu.Unlock()
		return
	}
	controller.paused = true
	controller.generation++
	callbacks := controller.callbacks
	snapshot := controller.snapshotLocked()
	controller.mu.Unlock()

	if callbacks.OnStateChange != nil {
		callbacks.OnStateChange(snapshot)
	}
}

// Reset stops any session and returns to idle with zero completed cycles.
// An in-flight tick loop exits without emitting further callbacks.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	controller.running = false
	controller.paused = false
	controller.phase = PhaseIdle
	controller.cycles = 0
	controller.remaining = controller.technique.WorkMinutes * 60
	controller.generation++
	callbacks := controller.callbacks
	snapshot := controller.snapshotLocked()
	controller.mu.Unlock()

	if callbacks.OnCycleUpdated != nil {
		callbacks.OnCycleUpdated(0)
	}
	if callbacks.OnStateChange != nil {
		callbacks.OnStateChange(snapshot)
	}
}

// SelectTechnique switches the governing technique. While idle the displayed
// work time updates immediately; while running the in-progress phase keeps
// its remaining time and the new durations apply from the next transition.
func (controller *Controller) SelectTechnique(technique model.Technique) {
	controller.mu.Lock()
	controller.technique = technique
	if !controller.running {
		controller.remaining = technique.WorkMinutes * 60
	}
	callbacks := controller.callbacks
	snapshot := controller.snapshotLocked()
	controller.mu.Unlock()

	if callbacks.OnStateChange != nil {
		callbacks.OnStateChange(snapshot)
	}
}

func (controller *Controller) run(generation uint64) {
	ticker := time.NewTicker(controller.options.TickInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !controller.tick(generation) {
			return
		}
	}
}

// tick performs one decrement and, at zero, the phase transition. Returns
// false once this loop has been superseded.
func (controller *Controller) tick(generation uint64) bool {
	controller.mu.Lock()
	if generation != controller.generation || !controller.running || controller.paused {
		controller.mu.Unlock()
		return false
	}

	controller.remaining--
	callbacks := controller.callbacks
	tickRemaining := controller.remaining
	tickPhase := controller.phase

	if controller.remaining > 0 {
		controller.mu.Unlock()
		if callbacks.OnTick != nil {
			callbacks.OnTick(tickRemaining, tickPhase)
		}
		return true
	}

	finished := controller.phase
	cycles := -1
	if finished == PhaseWork {
		controller.cycles++
		cycles = controller.cycles
		if controller.cycles%controller.technique.CyclesBeforeLongBreak == 0 {
			controller.phase = PhaseLongBreak
			controller.remaining = controller.technique.LongBreakMinutes * 60
		} else {
			controller.phase = PhaseBreak
			controller.remaining = controller.technique.BreakMinutes * 60
		}
	} else {
		controller.phase = PhaseWork
		controller.remaining = controller.technique.WorkMinutes * 60
	}
	snapshot := controller.snapshotLocked()
	controller.mu.Unlock()

	if callbacks.OnTick != nil {
		callbacks.OnTick(tickRemaining, tickPhase)
	}
	if callbacks.OnPhaseComplete != nil {
		callbacks.OnPhaseComplete(finished)
	}
	if cycles >= 0 && callbacks.OnCycleUpdated != nil {
		callbacks.OnCycleUpdated(cycles)
	}
	if callbacks.OnStateChange != nil {
		callbacks.OnStateChange(snapshot)
	}
	return true
}

func (controller *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:            controller.phase,
		RemainingSeconds: controller.remaining,
		Running:          controller.running,
		Paused:           controller.paused,
		CompletedCycles:  controller.cycles,
		TechniqueName:    controller.technique.Name,
	}
}

// PhaseTotalSeconds returns the full length of the current phase in seconds,
// for progress reporting. The idle display uses the work length.
func (controller *Controller) PhaseTotalSeconds() int {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	switch controller.phase {
	case PhaseBreak:
		return controller.technique.BreakMinutes * 60
	case PhaseLongBreak:
		return controller.technique.LongBreakMinutes * 60
	default:
		return controller.technique.WorkMinutes * 60
	}
}
