package game

import (
	"github.com/ayoisaiah/focusquest/internal/progression"
	"github.com/ayoisaiah/focusquest/internal/stats"
	"github.com/ayoisaiah/focusquest/internal/timer"
)

// LocationView is a catalog entry together with its status for the current
// character.
type LocationView struct {
	progression.Location
	Status progression.LocationStatus
}

// Snapshot is a read-only copy of the game state.
type Snapshot struct {
	Rank        progression.Rank
	Locations   []LocationView
	Progression progression.State
	Stats       stats.State
	Timer       timer.State
	// PhaseSeconds is the full length of the current phase.
	PhaseSeconds int
	// Elapsed is the fraction of the current phase that has elapsed.
	Elapsed   float64
	LongBreak bool
}

// Snapshot returns a copy of the current state. Changing it has no effect on
// the game.
func (g *Game) Snapshot() Snapshot {
	ts := g.timer.State()

	s := Snapshot{
		Timer:        ts,
		Progression:  g.progression.Clone(),
		Stats:        g.stats,
		Rank:         progression.RankFor(g.progression.Level),
		Locations:    Locations(g.progression),
		PhaseSeconds: g.timer.Duration(),
		Elapsed:      g.timer.Elapsed(),
	}

	if ts.Phase == timer.Break {
		s.LongBreak = g.timer.Settings().IsLongBreak(ts.SessionsCompleted - 1)
	}

	return s
}

// Locations returns the map catalog annotated for the given progression.
func Locations(p progression.State) []LocationView {
	catalog := progression.Locations()
	views := make([]LocationView, len(catalog))

	for i, l := range catalog {
		views[i] = LocationView{Location: l, Status: p.StatusOf(l)}
	}

	return views
}
