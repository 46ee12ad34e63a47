package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Note is one tone of the chime; a zero frequency is a rest.
type Note struct {
	Frequency float64
	Duration  time.Duration
}

// DefaultMelody is the two-tone bell played when a phase ends.
var DefaultMelody = []Note{
	{Frequency: 880, Duration: 180 * time.Millisecond},
	{Duration: 70 * time.Millisecond},
	{Frequency: 1318.5, Duration: 320 * time.Millisecond},
}

// Player plays the completion sound.
type Player interface {
	Play()
}

// Chime synthesises a short melody on the system speaker.
type Chime struct {
	mu     sync.Mutex
	melody []Note
	ready  bool
	once   sync.Once
}

// NewChime returns a chime; the speaker is initialised on first Play.
func NewChime(melody []Note) *Chime {
	if len(melody) == 0 {
		melody = DefaultMelody
	}
	return &Chime{melody: melody}
}

// Play starts the melody without blocking. Audio errors are logged once.
func (chime *Chime) Play() {
	chime.once.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			log.Printf("audio disabled: failed to initialize speaker: %v", err)
			return
		}
		chime.ready = true
	})
	if !chime.ready {
		return
	}

	streamer, err := Sequence(sampleRate, chime.melody)
	if err != nil {
		log.Printf("audio: build chime: %v", err)
		return
	}

	chime.mu.Lock()
	defer chime.mu.Unlock()
	speaker.Play(streamer)
}

// Sequence renders a melody into a single streamer at the given sample rate.
func Sequence(sr beep.SampleRate, melody []Note) (beep.Streamer, error) {
	streamers := make([]beep.Streamer, 0, len(melody))
	for _, note := range melody {
		frequency := note.Frequency
		silent := frequency <= 0
		if silent {
			frequency = 440
		}
		tone, err := generators.SineTone(sr, frequency)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.1fHz: %w", note.Frequency, err)
		}
		streamers = append(streamers, &effects.Volume{
			Streamer: beep.Take(sr.N(note.Duration), tone),
			Base:     2,
			Volume:   -1,
			Silent:   silent,
		})
	}
	return beep.Seq(streamers...), nil
}
