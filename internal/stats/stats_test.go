package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFocusSessionCompleted(t *testing.T) {
	s := State{
		TodaySessions: 2,
		TodayMinutes:  50,
		WeekSessions:  9,
		CurrentStreak: 3,
	}

	got := ApplyFocusSessionCompleted(s, 25)

	assert.Equal(t, State{
		TodaySessions: 3,
		TodayMinutes:  75,
		WeekSessions:  10,
		CurrentStreak: 3,
	}, got)

	assert.Equal(t, 2, s.TodaySessions, "input must not be modified")
}

func TestApplyRepeatedly(t *testing.T) {
	s := NewState()

	for range 4 {
		s = ApplyFocusSessionCompleted(s, 25)
	}

	assert.Equal(t, State{
		TodaySessions: 4,
		TodayMinutes:  100,
		WeekSessions:  4,
		CurrentStreak: 1,
	}, s)
}

func TestWeeklyProgress(t *testing.T) {
	table := []struct {
		week int
		want float64
	}{
		{0, 0},
		{7, 0.2},
		{35, 1},
		{50, 1},
	}

	for _, v := range table {
		got := State{WeekSessions: v.week}.WeeklyProgress()
		assert.InDelta(t, v.want, got, 1e-9, "week sessions %d", v.week)
	}
}
