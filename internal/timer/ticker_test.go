package timer

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestTickerDeliversUntilStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	tk := NewTicker(5 * time.Millisecond)
	tk.Start(context.Background())

	if !tk.Running() {
		t.Fatal("expected ticker to be running after Start")
	}

	for range 3 {
		select {
		case <-tk.C():
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for tick")
		}
	}

	tk.Stop()
	tk.Stop()

	if tk.Running() {
		t.Fatal("expected ticker to be stopped")
	}
}

func TestTickerStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())

	tk := NewTicker(time.Millisecond)
	tk.Start(ctx)
	tk.Start(ctx)

	cancel()

	deadline := time.Now().Add(time.Second)
	for tk.Running() {
		if time.Now().After(deadline) {
			t.Fatal("expected ticker to stop after its context was cancelled")
		}

		time.Sleep(time.Millisecond)
	}

	tk.Start(context.Background())

	if !tk.Running() {
		t.Fatal("expected ticker to run again after Start")
	}

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick after restart")
	}

	tk.Stop()
	tk.Stop()

	if tk.Running() {
		t.Fatal("expected ticker to be stopped")
	}
}

func TestTickerRestart(t *testing.T) {
	defer goleak.VerifyNone(t)

	tk := NewTicker(5 * time.Millisecond)

	for range 2 {
		tk.Start(context.Background())

		select {
		case <-tk.C():
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for tick")
		}

		tk.Stop()
	}
}
