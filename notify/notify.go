// Package notify delivers short-lived messages about session events
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a message that should be visible for roughly d. Notify
// must not block the caller.
type Notifier interface {
	Notify(title, description string, d time.Duration)
}

// Func adapts an ordinary function to the Notifier interface.
type Func func(title, description string, d time.Duration)

func (f Func) Notify(title, description string, d time.Duration) {
	f(title, description, d)
}

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(title, description string, d time.Duration) {
	for _, n := range m {
		n.Notify(title, description, d)
	}
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(string, string, time.Duration) {}

// Desktop shows notifications through the operating system and optionally
// plays a chime alongside them.
type Desktop struct {
	logger *slog.Logger
	chime  *Chime
	alert  func(title, message, icon string) error
	wg     sync.WaitGroup
	icon   string
}

// DesktopOption configures a Desktop notifier.
type DesktopOption func(*Desktop)

// WithIcon sets the path of the icon shown in the notification.
func WithIcon(path string) DesktopOption {
	return func(d *Desktop) {
		d.icon = path
	}
}

// WithChime plays c with every notification.
func WithChime(c *Chime) DesktopOption {
	return func(d *Desktop) {
		d.chime = c
	}
}

// WithLogger sets the logger used to report delivery failures.
func WithLogger(l *slog.Logger) DesktopOption {
	return func(d *Desktop) {
		d.logger = l
	}
}

// NewDesktop returns a notifier backed by beeep.
func NewDesktop(opts ...DesktopOption) *Desktop {
	d := &Desktop{
		logger: slog.Default(),
		alert:  beeep.Notify,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Notify sends the notification in the background. The desktop decides how
// long the message stays on screen, so d is ignored.
func (d *Desktop) Notify(title, description string, _ time.Duration) {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		if err := d.alert(title, description, d.icon); err != nil {
			d.logger.Warn(
				"unable to display notification",
				slog.String("title", title),
				slog.Any("error", err),
			)
		}

		if d.chime == nil {
			return
		}

		if err := d.chime.Play(); err != nil {
			d.logger.Warn("unable to play chime", slog.Any("error", err))
		}
	}()
}

// Wait blocks until every pending notification has been delivered.
func (d *Desktop) Wait() {
	d.wg.Wait()
}
