// Package timer implements the focus/break countdown and the phase state
// machine that alternates between them
package timer

import (
	"time"
)

// Phase is the kind of interval the countdown is running.
type Phase int

const (
	Focus Phase = iota
	Break
)

func (p Phase) String() string {
	if p == Break {
		return "Break"
	}

	return "Focus"
}

const (
	DefaultFocus             = 25 * time.Minute
	DefaultShortBreak        = 5 * time.Minute
	DefaultLongBreak         = 15 * time.Minute
	DefaultLongBreakInterval = 4
)

// Settings holds the interval lengths and the auto-start behaviour.
type Settings struct {
	Focus             time.Duration
	ShortBreak        time.Duration
	LongBreak         time.Duration
	LongBreakInterval int
	AutoStartBreak    bool
	AutoStartFocus    bool
}

// DefaultSettings returns the classic 25/5/15 cycle with a long break after
// every fourth focus session.
func DefaultSettings() Settings {
	return Settings{
		Focus:             DefaultFocus,
		ShortBreak:        DefaultShortBreak,
		LongBreak:         DefaultLongBreak,
		LongBreakInterval: DefaultLongBreakInterval,
		AutoStartBreak:    true,
		AutoStartFocus:    false,
	}
}

// FocusSeconds returns the focus duration in whole seconds.
func (s Settings) FocusSeconds() int {
	return int(s.Focus / time.Second)
}

// FocusMinutes returns the focus duration in whole minutes.
func (s Settings) FocusMinutes() int {
	return int(s.Focus / time.Minute)
}

// IsLongBreak reports whether the break that follows the focus session with
// n prior completions is a long one.
func (s Settings) IsLongBreak(n int) bool {
	interval := s.LongBreakInterval
	if interval < 1 {
		interval = DefaultLongBreakInterval
	}

	if n < 0 {
		n = 0
	}

	return n%interval == interval-1
}

// BreakSeconds returns the length of the break that follows the focus session
// with n prior completions.
func (s Settings) BreakSeconds(n int) int {
	if s.IsLongBreak(n) {
		return int(s.LongBreak / time.Second)
	}

	return int(s.ShortBreak / time.Second)
}

// State is a snapshot of the countdown.
type State struct {
	RemainingSeconds  int
	Phase             Phase
	IsRunning         bool
	SessionsCompleted int
}

// Timer drives a State one second at a time.
type Timer struct {
	settings Settings
	state    State
}

// New creates a timer at the start of a paused focus interval.
func New(settings Settings) *Timer {
	return &Timer{
		settings: settings,
		state: State{
			RemainingSeconds: settings.FocusSeconds(),
			Phase:            Focus,
		},
	}
}

// Restore creates a timer from a previously saved state. Restored timers are
// always paused.
func Restore(settings Settings, s State) *Timer {
	t := &Timer{
		settings: settings,
		state:    s,
	}

	if t.state.SessionsCompleted < 0 {
		t.state.SessionsCompleted = 0
	}

	full := t.Duration()
	if t.state.RemainingSeconds < 0 || t.state.RemainingSeconds > full {
		t.state.RemainingSeconds = full
	}

	t.state.IsRunning = false

	return t
}

// State returns a copy of the current countdown state.
func (t *Timer) State() State {
	return t.state
}

// Settings returns the settings the timer was created with.
func (t *Timer) Settings() Settings {
	return t.settings
}

// Duration returns the full length in seconds of the current phase. For a
// break this is the length selected when the break began.
func (t *Timer) Duration() int {
	if t.state.Phase == Break {
		return t.settings.BreakSeconds(t.state.SessionsCompleted - 1)
	}

	return t.settings.FocusSeconds()
}

// Elapsed returns the fraction of the current phase that has elapsed.
func (t *Timer) Elapsed() float64 {
	full := t.Duration()
	if full == 0 {
		return 1
	}

	return float64(full-t.state.RemainingSeconds) / float64(full)
}

// Start resumes the countdown.
func (t *Timer) Start() {
	t.state.IsRunning = true
}

// Pause suspends the countdown.
func (t *Timer) Pause() {
	t.state.IsRunning = false
}

// Toggle starts a paused countdown or pauses a running one.
func (t *Timer) Toggle() {
	t.state.IsRunning = !t.state.IsRunning
}

// Reset pauses the countdown and restores the full length of the current
// phase.
func (t *Timer) Reset() {
	t.state.IsRunning = false
	t.state.RemainingSeconds = t.Duration()
}

// Tick advances the countdown by one second. A running countdown that has
// already reached zero does not go negative: the tick is consumed by the
// phase transition instead, and the resulting Transition is returned.
func (t *Timer) Tick() Transition {
	if !t.state.IsRunning {
		return Transition{}
	}

	if t.state.RemainingSeconds > 0 {
		t.state.RemainingSeconds--

		return Transition{}
	}

	return t.advance()
}
