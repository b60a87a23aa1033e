package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPhase ticks a running timer until the countdown reaches zero and returns
// the number of ticks it took.
func runPhase(t *testing.T, tm *Timer) int {
	t.Helper()

	var ticks int

	for tm.State().RemainingSeconds > 0 {
		tr := tm.Tick()
		require.False(t, tr.Happened(), "unexpected transition after %d ticks", ticks)

		ticks++
	}

	return ticks
}

func TestNew(t *testing.T) {
	tm := New(DefaultSettings())

	assert.Equal(t, State{
		RemainingSeconds: 1500,
		Phase:            Focus,
	}, tm.State())
}

func TestTickWhilePaused(t *testing.T) {
	tm := New(DefaultSettings())

	for range 10 {
		tr := tm.Tick()
		assert.False(t, tr.Happened())
	}

	assert.Equal(t, 1500, tm.State().RemainingSeconds)
}

func TestFocusCountdown(t *testing.T) {
	tm := New(DefaultSettings())
	tm.Start()

	ticks := runPhase(t, tm)
	assert.Equal(t, 1500, ticks)

	s := tm.State()
	assert.Equal(t, 0, s.RemainingSeconds)
	assert.Equal(t, Focus, s.Phase)

	tr := tm.Tick()

	assert.Equal(t, Transition{Kind: FocusCompleted, Seconds: 300}, tr)
	assert.Equal(t, State{
		RemainingSeconds:  300,
		Phase:             Break,
		IsRunning:         true,
		SessionsCompleted: 1,
	}, tm.State())
}

func TestBreakEnds(t *testing.T) {
	tm := New(DefaultSettings())
	tm.Start()

	runPhase(t, tm)
	tm.Tick()

	ticks := runPhase(t, tm)
	assert.Equal(t, 300, ticks)

	tr := tm.Tick()

	assert.Equal(t, Transition{Kind: BreakEnded, Seconds: 1500}, tr)
	assert.Equal(t, State{
		RemainingSeconds:  1500,
		Phase:             Focus,
		IsRunning:         false,
		SessionsCompleted: 1,
	}, tm.State())

	tr = tm.Tick()
	assert.False(t, tr.Happened(), "focus must not auto-start")
	assert.Equal(t, 1500, tm.State().RemainingSeconds)
}

func TestBreakSelection(t *testing.T) {
	s := DefaultSettings()

	table := []struct {
		n    int
		want int
	}{
		{0, 300},
		{1, 300},
		{2, 300},
		{3, 900},
		{4, 300},
		{5, 300},
		{6, 300},
		{7, 900},
		{11, 900},
	}

	for _, v := range table {
		assert.Equal(t, v.want, s.BreakSeconds(v.n), "n = %d", v.n)
	}
}

func TestLongBreakAfterFourthSession(t *testing.T) {
	tm := New(DefaultSettings())

	var breaks []Transition

	for range 4 {
		tm.Start()
		breaks = append(breaks, tm.Skip())
		tm.Skip()
	}

	want := []Transition{
		{Kind: FocusCompleted, Seconds: 300},
		{Kind: FocusCompleted, Seconds: 300},
		{Kind: FocusCompleted, Seconds: 300},
		{Kind: FocusCompleted, Seconds: 900, LongBreak: true},
	}

	assert.Equal(t, want, breaks)
	assert.Equal(t, 4, tm.State().SessionsCompleted)
}

func TestStartPauseKeepRemaining(t *testing.T) {
	tm := New(DefaultSettings())

	tm.Start()
	tm.Tick()
	tm.Tick()
	tm.Pause()

	assert.Equal(t, 1498, tm.State().RemainingSeconds)
	assert.False(t, tm.State().IsRunning)

	tm.Toggle()
	assert.True(t, tm.State().IsRunning)
	assert.Equal(t, 1498, tm.State().RemainingSeconds)

	tm.Toggle()
	assert.False(t, tm.State().IsRunning)
}

func TestReset(t *testing.T) {
	t.Run("focus", func(t *testing.T) {
		tm := New(DefaultSettings())
		tm.Start()

		for range 100 {
			tm.Tick()
		}

		tm.Reset()

		assert.Equal(t, State{RemainingSeconds: 1500, Phase: Focus}, tm.State())
	})

	t.Run("long break", func(t *testing.T) {
		tm := Restore(DefaultSettings(), State{
			Phase:             Break,
			RemainingSeconds:  10,
			SessionsCompleted: 4,
		})

		tm.Reset()

		assert.Equal(t, 900, tm.State().RemainingSeconds)
		assert.Equal(t, Break, tm.State().Phase)
	})

	t.Run("short break", func(t *testing.T) {
		tm := Restore(DefaultSettings(), State{
			Phase:             Break,
			RemainingSeconds:  10,
			SessionsCompleted: 5,
		})

		tm.Reset()

		assert.Equal(t, 300, tm.State().RemainingSeconds)
	})
}

func TestRestore(t *testing.T) {
	table := []struct {
		name string
		in   State
		want State
	}{
		{
			name: "running timer is restored paused",
			in:   State{RemainingSeconds: 600, Phase: Focus, IsRunning: true, SessionsCompleted: 2},
			want: State{RemainingSeconds: 600, Phase: Focus, SessionsCompleted: 2},
		},
		{
			name: "remaining time beyond the phase length is clamped",
			in:   State{RemainingSeconds: 5000, Phase: Break, SessionsCompleted: 1},
			want: State{RemainingSeconds: 300, Phase: Break, SessionsCompleted: 1},
		},
		{
			name: "negative values are repaired",
			in:   State{RemainingSeconds: -3, Phase: Focus, SessionsCompleted: -1},
			want: State{RemainingSeconds: 1500, Phase: Focus},
		},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			tm := Restore(DefaultSettings(), tc.in)
			assert.Equal(t, tc.want, tm.State())
		})
	}
}

func TestAutoStartSettings(t *testing.T) {
	s := DefaultSettings()
	s.AutoStartBreak = false
	s.AutoStartFocus = true
	s.Focus = 3 * time.Second
	s.ShortBreak = 2 * time.Second

	tm := New(s)
	tm.Start()

	runPhase(t, tm)
	tm.Tick()
	assert.Equal(t, Break, tm.State().Phase)
	assert.False(t, tm.State().IsRunning)

	tm.Start()
	runPhase(t, tm)
	tm.Tick()
	assert.Equal(t, Focus, tm.State().Phase)
	assert.True(t, tm.State().IsRunning)
	assert.Equal(t, 3, tm.State().RemainingSeconds)
}

func TestElapsed(t *testing.T) {
	tm := New(DefaultSettings())
	assert.InDelta(t, 0.0, tm.Elapsed(), 1e-9)

	tm.Start()

	for range 750 {
		tm.Tick()
	}

	assert.InDelta(t, 0.5, tm.Elapsed(), 1e-9)
}
