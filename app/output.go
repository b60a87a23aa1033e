package app

import (
	"fmt"
	"io"

	"github.com/ayoisaiah/focusquest/internal/game"
	"github.com/ayoisaiah/focusquest/internal/models"
	"github.com/ayoisaiah/focusquest/internal/progression"
	"github.com/ayoisaiah/focusquest/internal/stats"
	"github.com/ayoisaiah/focusquest/internal/timer"
	"github.com/ayoisaiah/focusquest/internal/timeutil"
	"github.com/ayoisaiah/focusquest/internal/ui"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
	barWidth      = 30
	dateFormat    = "Jan 02, 2006 03:04 PM"
)

// statsReport is the JSON form of the stats command.
type statsReport struct {
	Rank           string  `json:"rank"`
	Level          int     `json:"level"`
	Exp            int     `json:"exp"`
	ExpToNext      int     `json:"exp_to_next"`
	TotalSessions  int     `json:"total_sessions"`
	TodaySessions  int     `json:"today_sessions"`
	TodayMinutes   int     `json:"today_minutes"`
	WeekSessions   int     `json:"week_sessions"`
	WeeklyGoal     int     `json:"weekly_goal"`
	WeeklyProgress float64 `json:"weekly_progress"`
	CurrentStreak  int     `json:"current_streak"`
}

func newStatsReport(snap *game.Snapshot) statsReport {
	p := snap.Progression

	return statsReport{
		Rank:           snap.Rank.Title,
		Level:          p.Level,
		Exp:            p.Exp,
		ExpToNext:      progression.ExpThreshold(p.Level),
		TotalSessions:  p.TotalSessions,
		TodaySessions:  snap.Stats.TodaySessions,
		TodayMinutes:   snap.Stats.TodayMinutes,
		WeekSessions:   snap.Stats.WeekSessions,
		WeeklyGoal:     stats.WeeklyGoal,
		WeeklyProgress: snap.Stats.WeeklyProgress(),
		CurrentStreak:  snap.Stats.CurrentStreak,
	}
}

// printStatus prints the character and the position of the saved timer.
func printStatus(w io.Writer, snap game.Snapshot, interval int) {
	p := snap.Progression

	fmt.Fprintf(w, "%s  %s\n", snap.Rank, ui.Highlight(fmt.Sprintf("Level %d", p.Level)))
	fmt.Fprintf(
		w,
		"EXP    %s %d/%d\n",
		ui.Yellow(ui.Bar(p.ExpProgress(), barWidth)),
		p.Exp,
		progression.ExpThreshold(p.Level),
	)

	phase := ui.Green(snap.Timer.Phase.String())

	switch {
	case snap.LongBreak:
		phase = ui.Magenta("Long break")
	case snap.Timer.Phase == timer.Break:
		phase = ui.Cyan("Short break")
	}

	fmt.Fprintf(
		w,
		"Timer  %s %s %s\n",
		phase,
		timeutil.Clock(snap.Timer.RemainingSeconds),
		ui.Gray("[Paused]"),
	)

	if interval > 0 {
		fmt.Fprintf(
			w,
			"Cycle  %d/%d focus sessions until the long break\n",
			snap.Timer.SessionsCompleted%interval,
			interval,
		)
	}
}

func statusText(s progression.LocationStatus) string {
	switch s {
	case progression.Visited:
		return ui.Green(s.String())
	case progression.Available:
		return ui.Yellow(s.String())
	default:
		return ui.Red(s.String())
	}
}

// printMap prints the location catalog.
func printMap(w io.Writer, locations []game.LocationView) {
	data := [][]string{{"#", "LOCATION", "LEVEL", "STATUS", "DESCRIPTION"}}

	for _, l := range locations {
		data = append(data, []string{
			fmt.Sprintf("%d", l.ID),
			l.Emoji + " " + l.Name,
			fmt.Sprintf("%d", l.RequiredLevel),
			statusText(l.Status),
			l.Description,
		})
	}

	ui.PrintTable(data, w)
}

// printStats prints the statistics counters.
func printStats(w io.Writer, snap *game.Snapshot) {
	s := snap.Stats

	data := [][]string{
		{"STAT", "VALUE"},
		{"Sessions today", fmt.Sprintf("%d", s.TodaySessions)},
		{"Focus time today", timeutil.HumanMinutes(s.TodayMinutes)},
		{"Current streak", fmt.Sprintf("%d days", s.CurrentStreak)},
		{"Total sessions", fmt.Sprintf("%d", snap.Progression.TotalSessions)},
	}

	ui.PrintTable(data, w)

	fmt.Fprintf(
		w,
		"Weekly goal  %s %d/%d\n",
		ui.Green(ui.Bar(s.WeeklyProgress(), barWidth)),
		s.WeekSessions,
		stats.WeeklyGoal,
	)
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []*models.Session) {
	data := make([][]string, 0, len(sessions)+1)
	data = append(data, []string{"#", "START DATE", "END DATE", "DURATION", "EXP", "LEVEL"})

	for i, sess := range sessions {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Local().Format(dateFormat),
			sess.EndTime.Local().Format(dateFormat),
			timeutil.HumanMinutes(int(sess.Duration.Minutes())),
			ui.Yellow(fmt.Sprintf("+%d", sess.Exp)),
			fmt.Sprintf("%d", sess.Level),
		})
	}

	ui.PrintTable(data, w)
}
