package game

import (
	"github.com/ayoisaiah/focusquest/internal/models"
	"github.com/ayoisaiah/focusquest/internal/progression"
	"github.com/ayoisaiah/focusquest/internal/stats"
	"github.com/ayoisaiah/focusquest/internal/timer"
)

// fromRecord replaces the game state with the saved record. Surplus exp is
// converted into levels straight away without notifying anyone.
func (g *Game) fromRecord(settings timer.Settings, r models.Record) {
	g.progression, _ = progression.Normalize(ProgressionFromRecord(r))
	g.stats = StatsFromRecord(r)

	if r.Timer == nil {
		g.timer = timer.New(settings)
		return
	}

	phase := timer.Focus
	if r.Timer.Phase == models.PhaseBreak {
		phase = timer.Break
	}

	g.timer = timer.Restore(settings, timer.State{
		Phase:             phase,
		RemainingSeconds:  r.Timer.RemainingSeconds,
		SessionsCompleted: r.Timer.SessionsCompleted,
	})
}

// record converts the game state into its persisted form.
func (g *Game) record() models.Record {
	r := RecordFrom(g.progression, g.stats)

	ts := g.timer.State()

	phase := models.PhaseFocus
	if ts.Phase == timer.Break {
		phase = models.PhaseBreak
	}

	r.Timer = &models.TimerRecord{
		Phase:             phase,
		RemainingSeconds:  ts.RemainingSeconds,
		SessionsCompleted: ts.SessionsCompleted,
	}

	return r
}

// ProgressionFromRecord extracts the progression fields of r.
func ProgressionFromRecord(r models.Record) progression.State {
	return progression.State{
		Level:             r.Level,
		Exp:               r.Exp,
		TotalSessions:     r.TotalSessions,
		UnlockedLocations: append([]int(nil), r.UnlockedLocations...),
	}
}

// StatsFromRecord extracts the statistics fields of r.
func StatsFromRecord(r models.Record) stats.State {
	return stats.State{
		TodaySessions: r.TodaySessions,
		TodayMinutes:  r.TodayMinutes,
		WeekSessions:  r.WeekSessions,
		CurrentStreak: r.CurrentStreak,
	}
}

// RecordFrom builds a record without a saved timer.
func RecordFrom(p progression.State, s stats.State) models.Record {
	return models.Record{
		Level:             p.Level,
		Exp:               p.Exp,
		TotalSessions:     p.TotalSessions,
		UnlockedLocations: append([]int(nil), p.UnlockedLocations...),
		TodaySessions:     s.TodaySessions,
		TodayMinutes:      s.TodayMinutes,
		WeekSessions:      s.WeekSessions,
		CurrentStreak:     s.CurrentStreak,
	}
}
