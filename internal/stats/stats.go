// Package stats accumulates the session counters shown on the statistics
// panel
package stats

// WeeklyGoal is the number of focus sessions targeted per week.
const WeeklyGoal = 35

// State holds the aggregate counters. Day and week rollover is handled
// outside this package.
type State struct {
	TodaySessions int
	TodayMinutes  int
	WeekSessions  int
	CurrentStreak int
}

// NewState returns the counters of a brand new character.
func NewState() State {
	return State{CurrentStreak: 1}
}

// ApplyFocusSessionCompleted records one completed focus session lasting
// focusMinutes. The streak is left untouched.
func ApplyFocusSessionCompleted(s State, focusMinutes int) State {
	s.TodaySessions++
	s.WeekSessions++
	s.TodayMinutes += focusMinutes

	return s
}

// WeeklyProgress returns the fraction of the weekly goal reached, capped at 1.
func (s State) WeeklyProgress() float64 {
	p := float64(s.WeekSessions) / float64(WeeklyGoal)
	if p > 1 {
		return 1
	}

	return p
}
