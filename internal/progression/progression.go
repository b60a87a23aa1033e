// Package progression computes experience, levels, and location unlocks
// earned by completing focus sessions
package progression

import (
	"slices"
)

// DefaultExpPerSession is the experience awarded for one completed focus
// session.
const DefaultExpPerSession = 50

// levelsPerLocation is the number of levels between location unlocks.
const levelsPerLocation = 5

// MaxLevel is the highest level a character can reach. At MaxLevel exp stops
// accumulating just below the threshold.
const MaxLevel = 10000

// State is the character's progression.
type State struct {
	UnlockedLocations []int
	Level             int
	Exp               int
	TotalSessions     int
}

// NewState returns the progression of a brand new character.
func NewState() State {
	return State{
		Level:             1,
		UnlockedLocations: []int{FirstLocationID},
	}
}

// ExpThreshold returns the experience needed to advance past level.
func ExpThreshold(level int) int {
	return level * 100
}

// EventKind identifies a progression event.
type EventKind int

const (
	LevelUp EventKind = iota + 1
	LocationUnlocked
)

func (k EventKind) String() string {
	switch k {
	case LevelUp:
		return "level_up"
	case LocationUnlocked:
		return "location_unlocked"
	default:
		return "unknown"
	}
}

// Event reports a level gained or a location unlocked. Value holds the new
// level for LevelUp and the location ID for LocationUnlocked.
type Event struct {
	Kind  EventKind
	Value int
}

// Unlocked reports whether the location with the given ID has been unlocked.
func (s State) Unlocked(id int) bool {
	return slices.Contains(s.UnlockedLocations, id)
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	c := s
	c.UnlockedLocations = slices.Clone(s.UnlockedLocations)

	return c
}

// ExpProgress returns the fraction of the current level's threshold that has
// been earned.
func (s State) ExpProgress() float64 {
	threshold := ExpThreshold(s.Level)
	if threshold <= 0 {
		return 0
	}

	return float64(s.Exp) / float64(threshold)
}

// ApplyFocusSessionCompleted awards exp for one completed focus session and
// returns the new state together with the level-ups and unlocks it caused,
// in order. Each LocationUnlocked event directly follows the LevelUp that
// triggered it. The input state is not modified.
func ApplyFocusSessionCompleted(s State, award int) (State, []Event) {
	next := s.Clone()
	next.Exp += award

	next, events := cascade(next)

	next.TotalSessions++

	return next, events
}

// Normalize applies any pending level-ups so that the exp of the returned
// state is below the threshold of its level.
func Normalize(s State) (State, []Event) {
	return cascade(s.Clone())
}

// cascade converts surplus exp into levels. It assumes s is already a copy.
func cascade(s State) (State, []Event) {
	var events []Event

	if s.Level < 1 {
		s.Level = 1
	}

	if s.Exp < 0 {
		s.Exp = 0
	}

	if s.Level > MaxLevel {
		s.Level = MaxLevel
	}

	for s.Level < MaxLevel && s.Exp >= ExpThreshold(s.Level) {
		s.Exp -= ExpThreshold(s.Level)
		s.Level++

		events = append(events, Event{Kind: LevelUp, Value: s.Level})

		id, ok := unlockFor(s.Level)
		if ok && !s.Unlocked(id) {
			s.UnlockedLocations = append(s.UnlockedLocations, id)
			events = append(events, Event{Kind: LocationUnlocked, Value: id})
		}
	}

	if s.Level == MaxLevel && s.Exp >= ExpThreshold(MaxLevel) {
		s.Exp = ExpThreshold(MaxLevel) - 1
	}

	return s, events
}

// unlockFor returns the location that reaching level makes eligible for
// unlocking.
func unlockFor(level int) (int, bool) {
	id := level/levelsPerLocation + 1

	return id, id <= LastLocationID
}
