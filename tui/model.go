// Package tui renders the focus timer, the character and the adventure map
// in the terminal
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focusquest/internal/game"
	"github.com/ayoisaiah/focusquest/internal/timer"
)

type (
	tickMsg  time.Time
	quoteMsg time.Time
)

// Options configures a Model.
type Options struct {
	Game   *game.Game
	Ticker *timer.Ticker
	Toasts *Toasts
	Logger *slog.Logger
	Styles Styles
	// LongBreakInterval is the number of focus sessions per cycle.
	LongBreakInterval int
	// Debug enables the key that completes a focus session immediately.
	Debug          bool
	TwentyFourHour bool
}

// Model is the bubbletea model of the timer screen. The game is only ever
// touched from Update, so every state change happens on the bubbletea
// goroutine.
type Model struct {
	game     *game.Game
	ticker   *timer.Ticker
	toasts   *Toasts
	logger   *slog.Logger
	help     help.Model
	keys     keyMap
	styles   Styles
	timerBar progress.Model
	expBar   progress.Model
	interval int
	quote    int
	debug    bool
	showMap  bool
	clock24  bool
}

// New returns the timer screen model.
func New(opts *Options) *Model {
	m := &Model{
		game:     opts.Game,
		ticker:   opts.Ticker,
		toasts:   opts.Toasts,
		logger:   opts.Logger,
		styles:   opts.Styles,
		interval: opts.LongBreakInterval,
		debug:    opts.Debug,
		clock24:  opts.TwentyFourHour,
		help:     help.New(),
		keys:     defaultKeys(),
		timerBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(maxWidth),
		),
		expBar: progress.New(
			progress.WithGradient("#FF7A00", "#FFD166"),
			progress.WithWidth(maxWidth),
			progress.WithoutPercentage(),
		),
	}

	if m.toasts == nil {
		m.toasts = NewToasts(time.Now)
	}

	if m.logger == nil {
		m.logger = slog.Default()
	}

	return m
}

// waitForTick delivers the next tick from the ticker goroutine.
func waitForTick(c <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-c
		if !ok {
			return nil
		}

		return tickMsg(t)
	}
}

func rotateQuote() tea.Cmd {
	return tea.Tick(quoteInterval, func(t time.Time) tea.Msg {
		return quoteMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForTick(m.ticker.C()), rotateQuote())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		tr := m.game.Tick()
		if tr.Happened() {
			m.quote = 0

			m.logger.Debug(
				"phase changed",
				slog.String("snapshot", spew.Sdump(m.game.Snapshot().Timer)),
			)
		}

		return m, waitForTick(m.ticker.C())

	case quoteMsg:
		if m.game.Snapshot().Timer.Phase == timer.Break {
			m.quote = (m.quote + 1) % len(breakQuotes)
		}

		return m, rotateQuote()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		width := msg.Width - padding*2 - 4
		if width > maxWidth {
			width = maxWidth
		}

		m.timerBar.Width = width
		m.expBar.Width = width
		m.help.Width = msg.Width

		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.togglePlay):
		m.game.StartOrPause()

	case key.Matches(msg, m.keys.reset):
		m.game.Reset()

	case key.Matches(msg, m.keys.complete):
		if m.canComplete() {
			m.game.CompleteFocusSession()
			m.quote = 0
		}

	case key.Matches(msg, m.keys.toggleMap):
		m.showMap = !m.showMap

	case key.Matches(msg, m.keys.quit):
		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, nil
}

// canComplete reports whether the current focus session may be completed
// by hand.
func (m *Model) canComplete() bool {
	if !m.debug {
		return false
	}

	ts := m.game.Snapshot().Timer

	return ts.Phase == timer.Focus && ts.IsRunning
}
