package notify

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	Title       string
	Description string
	Duration    time.Duration
}

func TestMulti(t *testing.T) {
	var got []string

	record := func(name string) Notifier {
		return Func(func(title, _ string, _ time.Duration) {
			got = append(got, name+":"+title)
		})
	}

	m := Multi{record("a"), Nop{}, record("b")}
	m.Notify("Level up!", "You are now 🥷 Genin level 2!", 5*time.Second)

	if diff := cmp.Diff([]string{"a:Level up!", "b:Level up!"}, got); diff != "" {
		t.Fatalf("Multi.Notify() mismatch (-want +got):\n%s", diff)
	}
}

func TestDesktopNotify(t *testing.T) {
	var (
		mu   sync.Mutex
		got  []sent
		icon string
	)

	d := NewDesktop(WithIcon("/tmp/icon.svg"))
	d.alert = func(title, message, path string) error {
		mu.Lock()
		defer mu.Unlock()

		got = append(got, sent{Title: title, Description: message})
		icon = path

		return nil
	}

	d.Notify("Break time!", "Let your chakra recover...", 2*time.Second)
	d.Wait()

	require.Len(t, got, 1)
	assert.Equal(t, "Break time!", got[0].Title)
	assert.Equal(t, "Let your chakra recover...", got[0].Description)
	assert.Equal(t, "/tmp/icon.svg", icon)
}

func TestDesktopNotifyLogsFailure(t *testing.T) {
	var buf bytes.Buffer

	d := NewDesktop(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	d.alert = func(_, _, _ string) error {
		return errors.New("no notification daemon")
	}

	d.Notify("Session complete", "+50 EXP gained! Great work, ninja!", 3*time.Second)
	d.Wait()

	assert.Contains(t, buf.String(), "unable to display notification")
	assert.Contains(t, buf.String(), "no notification daemon")
}

func TestMelodyLength(t *testing.T) {
	s, err := melody()
	require.NoError(t, err)

	var (
		total int
		buf   = make([][2]float64, 512)
	)

	for {
		n, ok := s.Stream(buf)
		total += n

		if !ok {
			break
		}
	}

	want := len(chimeNotes) *
		(chimeSampleRate.N(chimeNoteLength) + chimeSampleRate.N(chimeGap))

	assert.Equal(t, want, total)
}
