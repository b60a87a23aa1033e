package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusquest/internal/game"
	"github.com/ayoisaiah/focusquest/internal/progression"
	"github.com/ayoisaiah/focusquest/internal/stats"
	"github.com/ayoisaiah/focusquest/internal/timer"
	"github.com/ayoisaiah/focusquest/internal/timeutil"
)

func (m *Model) characterView(snap *game.Snapshot) string {
	var s strings.Builder

	p := snap.Progression

	s.WriteString(m.styles.Main.Render(
		fmt.Sprintf("%s  Level %d", snap.Rank, p.Level),
	))
	s.WriteString("\n")
	s.WriteString(m.expBar.ViewAs(p.ExpProgress()))
	s.WriteString("\n")
	s.WriteString(m.styles.Hint.Render(
		fmt.Sprintf(
			"%d / %d EXP",
			p.Exp,
			progression.ExpThreshold(p.Level),
		),
	))

	return s.String()
}

func (m *Model) phaseLabel(snap *game.Snapshot) string {
	switch {
	case snap.Timer.Phase == timer.Focus:
		return m.styles.Focus.Render()
	case snap.LongBreak:
		return m.styles.LongBreak.Render()
	default:
		return m.styles.ShortBreak.Render()
	}
}

func (m *Model) timerView(snap *game.Snapshot) string {
	var s strings.Builder

	s.WriteString(m.phaseLabel(snap))

	if snap.Timer.IsRunning {
		timeFormat := "03:04 PM"
		if m.clock24 {
			timeFormat = "15:04"
		}

		end := time.Now().Add(
			time.Duration(snap.Timer.RemainingSeconds) * time.Second,
		)

		s.WriteString(m.styles.Hint.Render("until " + end.Format(timeFormat)))
	} else {
		s.WriteString(m.styles.Secondary.Render("[Paused]"))
	}

	if snap.Timer.Phase == timer.Focus && m.interval > 0 {
		s.WriteString(m.styles.Hint.Render(
			fmt.Sprintf(
				" (%d/%d)",
				snap.Timer.SessionsCompleted%m.interval+1,
				m.interval,
			),
		))
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.Clock(snap.Timer.RemainingSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.timerBar.ViewAs(snap.Elapsed))

	return s.String()
}

func (m *Model) breakView() string {
	activity := breakActivities[m.quote%len(breakActivities)]

	return m.styles.Panel.Render(
		m.styles.Main.Render(activity.emoji+" "+activity.text) +
			"\n" + m.styles.Hint.Render(breakQuotes[m.quote]),
	)
}

func (m *Model) statsView(s stats.State, total int) string {
	rows := []string{
		fmt.Sprintf("Today     %d sessions, %s", s.TodaySessions, timeutil.HumanMinutes(s.TodayMinutes)),
		fmt.Sprintf("Streak    %d days", s.CurrentStreak),
		fmt.Sprintf("Total     %d sessions", total),
		fmt.Sprintf(
			"Weekly    %d/%d (%.0f%%)",
			s.WeekSessions,
			stats.WeeklyGoal,
			s.WeeklyProgress()*100,
		),
	}

	return m.styles.Panel.Render(m.styles.Secondary.Render(strings.Join(rows, "\n")))
}

func (m *Model) mapView(locations []game.LocationView) string {
	rows := make([]string, 0, len(locations))

	for _, l := range locations {
		style := m.styles.Locked

		switch l.Status {
		case progression.Visited:
			style = m.styles.Visited
		case progression.Available:
			style = m.styles.Available
		}

		rows = append(rows, style.Render(fmt.Sprintf(
			"%s %-18s Lv %-3d %s",
			l.Emoji,
			l.Name,
			l.RequiredLevel,
			l.Status,
		)))
	}

	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m *Model) toastView() string {
	active := m.toasts.Active()
	if len(active) == 0 {
		return ""
	}

	views := make([]string, len(active))

	for i, t := range active {
		views[i] = m.styles.Toast.Render(
			m.styles.Main.Render(t.Title) + "\n" + t.Description,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *Model) helpView() string {
	bindings := []key.Binding{
		m.keys.togglePlay,
		m.keys.reset,
		m.keys.toggleMap,
		m.keys.quit,
	}

	if m.debug {
		bindings = append(bindings, m.keys.complete)
	}

	return m.help.ShortHelpView(bindings)
}

func (m *Model) View() string {
	snap := m.game.Snapshot()

	sections := []string{
		m.characterView(&snap),
		"",
		m.timerView(&snap),
	}

	if snap.Timer.Phase == timer.Break {
		sections = append(sections, m.breakView())
	}

	if m.showMap {
		sections = append(sections, m.mapView(snap.Locations))
	} else {
		sections = append(
			sections,
			m.statsView(snap.Stats, snap.Progression.TotalSessions),
		)
	}

	if toasts := m.toastView(); toasts != "" {
		sections = append(sections, toasts)
	}

	sections = append(sections, "", m.helpView())

	return m.styles.Base.Render(strings.Join(sections, "\n"))
}
