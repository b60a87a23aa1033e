// Package game ties the countdown, progression and statistics together and
// persists the result after every meaningful change
package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focusquest/internal/models"
	"github.com/ayoisaiah/focusquest/internal/progression"
	"github.com/ayoisaiah/focusquest/internal/stats"
	"github.com/ayoisaiah/focusquest/internal/timer"
	"github.com/ayoisaiah/focusquest/notify"
	"github.com/ayoisaiah/focusquest/store"
)

// DefaultPersistEvery is the number of countdown ticks between saves while
// nothing else changes.
const DefaultPersistEvery = 60

// Options configures a Game.
type Options struct {
	Store    store.DB
	Notifier notify.Notifier
	Logger   *slog.Logger
	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time
	// Runner executes the session command. It defaults to running the
	// program directly.
	Runner        Runner
	SessionCmd    string
	Settings      timer.Settings
	ExpPerSession int
	PersistEvery  int
}

// Game is the single owner of the timer, progression, and statistics state.
// It is not safe for concurrent use: every method must be called from the
// same goroutine.
type Game struct {
	store       store.DB
	notifier    notify.Notifier
	logger      *slog.Logger
	now         func() time.Time
	runner      Runner
	timer       *timer.Timer
	sessionCmd  string
	progression progression.State
	stats       stats.State
	cmds        sync.WaitGroup
	award       int
	persistN    int
	sinceSave   int
}

// New loads the saved record and returns a game ready to continue from it.
// A record that cannot be read is replaced by the defaults.
func New(opts *Options) *Game {
	g := &Game{
		store:      opts.Store,
		notifier:   opts.Notifier,
		logger:     opts.Logger,
		now:        opts.Now,
		runner:     opts.Runner,
		sessionCmd: opts.SessionCmd,
		award:      opts.ExpPerSession,
		persistN:   opts.PersistEvery,
	}

	if g.notifier == nil {
		g.notifier = notify.Nop{}
	}

	if g.logger == nil {
		g.logger = slog.Default()
	}

	if g.now == nil {
		g.now = time.Now
	}

	if g.runner == nil {
		g.runner = execRunner
	}

	if g.award <= 0 {
		g.award = progression.DefaultExpPerSession
	}

	if g.persistN <= 0 {
		g.persistN = DefaultPersistEvery
	}

	r := models.DefaultRecord()

	if g.store != nil {
		var err error

		r, err = g.store.LoadRecord()
		if err != nil {
			g.logger.Warn("unable to load saved progress", slog.Any("error", err))

			r = models.DefaultRecord()
		}
	}

	g.fromRecord(opts.Settings, r)

	g.logger.Debug("game loaded", slog.String("record", spew.Sdump(r)))

	return g
}

// Tick advances the countdown by one second and handles any phase change it
// causes.
func (g *Game) Tick() timer.Transition {
	running := g.timer.State().IsRunning

	tr := g.timer.Tick()

	switch tr.Kind {
	case timer.FocusCompleted:
		g.completeFocus(tr)
	case timer.BreakEnded:
		g.notifier.Notify(msgBreakEnded())
		g.persist()
	default:
		if running {
			g.sinceSave++

			if g.sinceSave >= g.persistN {
				g.persist()
			}
		}
	}

	return tr
}

// StartOrPause toggles the countdown.
func (g *Game) StartOrPause() {
	g.timer.Toggle()

	g.logger.Debug(
		"timer toggled",
		slog.Bool("running", g.timer.State().IsRunning),
		slog.String("phase", g.timer.State().Phase.String()),
	)

	g.persist()
}

// Reset pauses the countdown and restores the full length of the current
// phase. Progression and statistics are unaffected.
func (g *Game) Reset() {
	g.timer.Reset()
	g.persist()
}

// CompleteFocusSession ends the current focus interval immediately, exactly
// as if its countdown had run out. It reports false if no focus interval is
// in progress.
func (g *Game) CompleteFocusSession() bool {
	if g.timer.State().Phase != timer.Focus {
		return false
	}

	g.completeFocus(g.timer.Skip())

	return true
}

// ResetProgress discards all progression and statistics and starts a fresh
// focus interval.
func (g *Game) ResetProgress() {
	g.progression = progression.NewState()
	g.stats = stats.NewState()
	g.timer = timer.New(g.timer.Settings())

	g.persist()
}

// Close saves the current state and waits for running session commands.
func (g *Game) Close() {
	g.persist()
	g.cmds.Wait()
}

// completeFocus applies the rewards of a completed focus interval. The
// notifications follow the order in which the events happened: level-ups and
// unlocks, then the session summary, then the start of the break.
func (g *Game) completeFocus(tr timer.Transition) {
	end := g.now()
	settings := g.timer.Settings()

	next, events := progression.ApplyFocusSessionCompleted(g.progression, g.award)

	g.progression = next
	g.stats = stats.ApplyFocusSessionCompleted(g.stats, settings.FocusMinutes())

	for _, e := range events {
		g.notifyEvent(e)
	}

	g.notifier.Notify(msgSessionComplete(g.award))
	g.notifier.Notify(msgBreakStarted())

	g.logger.Info(
		"focus session completed",
		slog.Int("level", g.progression.Level),
		slog.Int("exp", g.progression.Exp),
		slog.Int("total_sessions", g.progression.TotalSessions),
		slog.Bool("long_break", tr.LongBreak),
	)

	g.persist()
	g.recordSession(end, settings.Focus)
	g.runSessionCmd()
}

func (g *Game) notifyEvent(e progression.Event) {
	switch e.Kind {
	case progression.LevelUp:
		g.logger.Info("level up", slog.Int("level", e.Value))
		g.notifier.Notify(msgLevelUp(e.Value))
	case progression.LocationUnlocked:
		l, ok := progression.LocationByID(e.Value)
		if !ok {
			return
		}

		g.logger.Info("location unlocked", slog.String("location", l.Name))
		g.notifier.Notify(msgLocationUnlocked(l))
	}
}

// persist saves the current record. Failures are logged and otherwise
// ignored so that the countdown keeps going.
func (g *Game) persist() {
	g.sinceSave = 0

	if g.store == nil {
		return
	}

	if err := g.store.SaveRecord(g.record()); err != nil {
		g.logger.Error("unable to save progress", slog.Any("error", err))
	}
}

// recordSession appends the completed focus interval to the history.
func (g *Game) recordSession(end time.Time, d time.Duration) {
	if g.store == nil {
		return
	}

	sess := models.NewSession(end.Add(-d), end, g.award, g.progression.Level)

	if err := g.store.AddSession(sess); err != nil {
		g.logger.Error(
			"unable to record session",
			slog.String("id", sess.ID),
			slog.Any("error", err),
		)
	}
}
