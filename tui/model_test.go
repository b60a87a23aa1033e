package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusquest/internal/config"
	"github.com/ayoisaiah/focusquest/internal/game"
	"github.com/ayoisaiah/focusquest/internal/models"
	"github.com/ayoisaiah/focusquest/internal/timer"
	"github.com/ayoisaiah/focusquest/notify"
)

func testConfig() *config.Config {
	return &config.Config{
		Focus:      config.SessionConfig{Message: "Focus", Color: "#FF7A00"},
		ShortBreak: config.SessionConfig{Message: "Short break", Color: "#12EAEA"},
		LongBreak:  config.SessionConfig{Message: "Long break", Color: "#C492B1"},
	}
}

func newTestModel(t *testing.T, debug bool) (*Model, *Toasts) {
	t.Helper()

	toasts := NewToasts(time.Now)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	g := game.New(&game.Options{
		Notifier: notify.Multi{toasts},
		Logger:   logger,
		Settings: timer.DefaultSettings(),
	})

	m := New(&Options{
		Game:              g,
		Ticker:            timer.NewTicker(time.Second),
		Toasts:            toasts,
		Logger:            logger,
		Styles:            NewStyles(testConfig()),
		LongBreakInterval: 4,
		Debug:             debug,
	})

	return m, toasts
}

func press(m *Model, k tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(k)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTogglePlay(t *testing.T) {
	m, _ := newTestModel(t, false)

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.game.Snapshot().Timer.IsRunning)

	press(m, runes("p"))
	assert.False(t, m.game.Snapshot().Timer.IsRunning)
}

func TestTickAndReset(t *testing.T) {
	m, _ := newTestModel(t, false)

	press(m, runes("p"))

	for range 5 {
		_, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd)
	}

	assert.Equal(t, 1495, m.game.Snapshot().Timer.RemainingSeconds)

	press(m, runes("r"))

	ts := m.game.Snapshot().Timer
	assert.Equal(t, 1500, ts.RemainingSeconds)
	assert.False(t, ts.IsRunning)
}

func TestCompleteRequiresDebug(t *testing.T) {
	m, _ := newTestModel(t, false)

	press(m, runes("p"))
	press(m, runes("c"))

	assert.Equal(t, timer.Focus, m.game.Snapshot().Timer.Phase)
}

func TestCompleteInDebugMode(t *testing.T) {
	m, toasts := newTestModel(t, true)

	press(m, runes("c"))
	assert.Equal(t, timer.Focus, m.game.Snapshot().Timer.Phase, "paused focus cannot be completed")

	press(m, runes("p"))
	press(m, runes("c"))

	snap := m.game.Snapshot()
	assert.Equal(t, timer.Break, snap.Timer.Phase)
	assert.Equal(t, 50, snap.Progression.Exp)

	active := toasts.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "Session complete", active[0].Title)
	assert.Equal(t, "Break time!", active[1].Title)

	view := m.View()
	assert.Contains(t, view, "Session complete")
	assert.Contains(t, view, breakQuotes[0])
}

func TestQuoteRotatesDuringBreak(t *testing.T) {
	m, _ := newTestModel(t, true)

	m.Update(quoteMsg(time.Now()))
	assert.Equal(t, 0, m.quote)

	press(m, runes("p"))
	press(m, runes("c"))

	for i := 1; i <= len(breakQuotes); i++ {
		_, cmd := m.Update(quoteMsg(time.Now()))
		require.NotNil(t, cmd)
		assert.Equal(t, i%len(breakQuotes), m.quote)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, false)

	cmd := press(m, runes("q"))
	assert.NotNil(t, cmd)

	cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

type countingStore struct {
	saves int
}

func (c *countingStore) LoadRecord() (models.Record, error) {
	return models.DefaultRecord(), nil
}

func (c *countingStore) SaveRecord(models.Record) error {
	c.saves++
	return nil
}

func (c *countingStore) AddSession(*models.Session) error {
	return nil
}

func (c *countingStore) GetSessions(_, _ time.Time) ([]*models.Session, error) {
	return nil, nil
}

func (c *countingStore) Close() error {
	return nil
}

func TestQuitLeavesCloseToCaller(t *testing.T) {
	db := &countingStore{}

	g := game.New(&game.Options{
		Store:    db,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Settings: timer.DefaultSettings(),
	})

	m := New(&Options{
		Game:   g,
		Ticker: timer.NewTicker(time.Second),
		Toasts: NewToasts(time.Now),
		Styles: NewStyles(testConfig()),
	})

	before := db.saves

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, before, db.saves)

	g.Close()
	assert.Equal(t, before+1, db.saves)
}

func TestMapToggle(t *testing.T) {
	m, _ := newTestModel(t, false)

	assert.NotContains(t, m.View(), "Forest of Death")

	press(m, runes("m"))

	view := m.View()
	assert.Contains(t, view, "Konoha Village")
	assert.Contains(t, view, "Forest of Death")
	assert.Contains(t, view, "Locked")
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, false)

	view := m.View()

	assert.Contains(t, view, "Genin")
	assert.Contains(t, view, "Level 1")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "[Paused]")
	assert.Contains(t, view, "0 / 100 EXP")
	assert.Contains(t, view, "(1/4)")
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 40-padding*2-4, m.timerBar.Width)

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, maxWidth, m.expBar.Width)
}

func TestToastsExpire(t *testing.T) {
	now := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	toasts := NewToasts(func() time.Time { return now })

	toasts.Notify("Level up!", "You are now Genin level 2!", 5*time.Second)
	toasts.Notify("Session complete", "+50 EXP gained! Great work, ninja!", 3*time.Second)

	assert.Len(t, toasts.Active(), 2)

	now = now.Add(3 * time.Second)

	active := toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Level up!", active[0].Title)

	now = now.Add(2 * time.Second)
	assert.Empty(t, toasts.Active())
}
