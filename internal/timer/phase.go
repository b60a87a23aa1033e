package timer

// TransitionKind identifies a phase change.
type TransitionKind int

const (
	NoTransition TransitionKind = iota
	// FocusCompleted is emitted when a focus interval runs out and the break
	// begins.
	FocusCompleted
	// BreakEnded is emitted when a break runs out and the next focus
	// interval is ready.
	BreakEnded
)

// Transition describes the outcome of a phase change.
type Transition struct {
	Kind TransitionKind
	// LongBreak is set when a FocusCompleted transition starts a long break.
	LongBreak bool
	// Seconds is the full length of the phase that was entered.
	Seconds int
}

// Happened reports whether the tick caused a phase change.
func (tr Transition) Happened() bool {
	return tr.Kind != NoTransition
}

// advance moves the expired phase to the next one.
func (t *Timer) advance() Transition {
	switch t.state.Phase {
	case Focus:
		n := t.state.SessionsCompleted
		long := t.settings.IsLongBreak(n)

		t.state.SessionsCompleted++
		t.state.Phase = Break
		t.state.RemainingSeconds = t.settings.BreakSeconds(n)
		t.state.IsRunning = t.settings.AutoStartBreak

		return Transition{
			Kind:      FocusCompleted,
			LongBreak: long,
			Seconds:   t.state.RemainingSeconds,
		}
	default:
		t.state.Phase = Focus
		t.state.RemainingSeconds = t.settings.FocusSeconds()
		t.state.IsRunning = t.settings.AutoStartFocus

		return Transition{
			Kind:    BreakEnded,
			Seconds: t.state.RemainingSeconds,
		}
	}
}

// Skip ends the current phase immediately, as though its countdown had run
// out, and returns the resulting transition.
func (t *Timer) Skip() Transition {
	t.state.RemainingSeconds = 0

	return t.advance()
}
