package timer

import (
	"github.com/williiamwang/FlowPomodoro/internal/model"
)

// sessions of work before the long break
const workSessionsPerCycle = 4

// Completion describes a finished countdown. Finished is the mode that
// just ended; Next is the mode the engine transitioned into.
type Completion struct {
	Finished     model.Mode
	Next         model.Mode
	WorkSessions int
}

// Engine is the pomodoro session state machine. It is single-writer: all
// methods must be called from the owning event loop, and a completion is
// handled in full before the next tick can be observed.
type Engine struct {
	settings      model.ModeMinutes
	mode          model.Mode
	timeLeft      int
	running       bool
	completedWork int
	player        Player
}

func NewEngine(settings model.ModeMinutes, player Player) *Engine {
	if settings.Validate() != nil {
		settings = model.DefaultModeMinutes()
	}
	if player == nil {
		player = NoopPlayer{}
	}
	return &Engine{
		settings: settings,
		mode:     model.ModeWork,
		timeLeft: settings.Seconds(model.ModeWork),
		player:   player,
	}
}

func (e *Engine) Mode() model.Mode	{ return e.mode }
func (e *Engine) TimeLeft() int		{ return e.timeLeft }
func (e *Engine) Running() bool		{ return e.running }
func (e *Engine) WorkSessions() int	{ return e.completedWork }
func (e *Engine) ModeSeconds() int	{ return e.settings.Seconds(e.mode) }
func (e *Engine) Settings() model.ModeMinutes {
	out := model.ModeMinutes{}
	for mode, minutes := range e.settings {
		out[mode] = minutes
	}
	return out
}

// Start resumes the countdown and plays the confirmation chime. Starting
// an already-running engine is a no-op.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	_ = e.player.Play(ChimeWAV())
}

// Pause freezes the countdown. No chime.
func (e *Engine) Pause() {
	e.running = false
}

// Reset restores the current mode's full duration and pauses.
func (e *Engine) Reset() {
	e.timeLeft = e.settings.Seconds(e.mode)
	e.running = false
}

// SwitchMode is the manual override: it replaces the mode immediately,
// resets the countdown and pauses. The work-session counter is untouched.
// Invalid modes are ignored.
func (e *Engine) SwitchMode(mode model.Mode) {
	if !mode.IsValid() {
		return
	}
	e.mode = mode
	e.timeLeft = e.settings.Seconds(mode)
	e.running = false
}

// ApplySettings installs new durations. A paused countdown is re-seeded
// from the new duration of the current mode; a running one keeps counting.
func (e *Engine) ApplySettings(settings model.ModeMinutes) {
	if settings.Validate() != nil {
		return
	}
	e.settings = settings
	if !e.running {
		e.timeLeft = e.settings.Seconds(e.mode)
	}
}

// Tick advances the countdown by one second. It is valid only while
// running; a paused engine ignores it. When the countdown reaches zero
// the completion is handled inline and returned.
func (e *Engine) Tick() (Completion, bool) {
	if !e.running || e.timeLeft <= 0 {
		return Completion{}, false
	}
	e.timeLeft--
	if e.timeLeft > 0 {
		return Completion{}, false
	}
	return e.complete(), true
}

func (e *Engine) complete() Completion {
	e.running = false
	finished := e.mode

	var next model.Mode
	if finished == model.ModeWork {
		e.completedWork++
		if e.completedWork >= workSessionsPerCycle {
			next = model.ModeLongBreak
			e.completedWork = 0
		} else {
			next = model.ModeShortBreak
		}
	} else {
		next = model.ModeWork
	}

	e.mode = next
	e.timeLeft = e.settings.Seconds(next)
	return Completion{Finished: finished, Next: next, WorkSessions: e.completedWork}
}
