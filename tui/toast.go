package tui

import (
	"sync"
	"time"
)

// Toast is an in-app notification.
type Toast struct {
	Expires     time.Time
	Title       string
	Description string
}

// Toasts collects notifications for display inside the TUI. It implements
// notify.Notifier.
type Toasts struct {
	now   func() time.Time
	items []Toast
	mu    sync.Mutex
}

// NewToasts returns an empty toast list that reads the time from now.
func NewToasts(now func() time.Time) *Toasts {
	if now == nil {
		now = time.Now
	}

	return &Toasts{now: now}
}

// Notify queues a toast that is visible for d.
func (t *Toasts) Notify(title, description string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, Toast{
		Title:       title,
		Description: description,
		Expires:     t.now().Add(d),
	})
}

// Active drops expired toasts and returns the remaining ones, oldest first.
func (t *Toasts) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	live := t.items[:0]

	for _, v := range t.items {
		if now.Before(v.Expires) {
			live = append(live, v)
		}
	}

	t.items = live

	return append([]Toast(nil), live...)
}
