package notify

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeNoteLength = 180 * time.Millisecond
	chimeGap        = 60 * time.Millisecond
	chimeBufferSize = 10
)

// chimeNotes are the frequencies, in Hz, played in sequence.
var chimeNotes = []float64{659.25, 880, 1318.5}

// Chime plays a short synthesised melody on the default audio device.
type Chime struct {
	initErr error
	mu      sync.Mutex
	once    sync.Once
}

// NewChime returns a chime. The audio device is opened on first use.
func NewChime() *Chime {
	return &Chime{}
}

// Play blocks until the melody has finished.
func (c *Chime) Play() error {
	c.once.Do(func() {
		c.initErr = speaker.Init(
			chimeSampleRate,
			chimeSampleRate.N(time.Second/chimeBufferSize),
		)
	})

	if c.initErr != nil {
		return c.initErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	melody, err := melody()
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(melody, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}

// melody builds the chime streamer from chimeNotes.
func melody() (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(chimeNotes)*2)

	for _, freq := range chimeNotes {
		tone, err := generators.SineTone(chimeSampleRate, freq)
		if err != nil {
			return nil, err
		}

		notes = append(
			notes,
			beep.Take(chimeSampleRate.N(chimeNoteLength), tone),
			generators.Silence(chimeSampleRate.N(chimeGap)),
		)
	}

	return beep.Seq(notes...), nil
}
