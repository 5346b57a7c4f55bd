// Package audio synthesises the runner's sound cues with beep and plays
// them through an injectable sink.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is the rate used for the speaker and every cue.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueGem Cue = iota
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueGem:
		return "gem"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Sink consumes a finished streamer, usually speaker.Play.
type Sink func(beep.Streamer)

// Cues synthesises and plays sound cues. It satisfies runner.Sounds.
type Cues struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	muted  bool
	sink   Sink
}

// NewCues creates a cue player. A nil sink makes Play a no-op, which is
// what headless hosts and tests want.
func NewCues(rate beep.SampleRate, sink Sink) *Cues {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Cues{rate: rate, volume: 0.5, sink: sink}
}

// InitSpeaker opens the default audio device and returns a sink for it.
func InitSpeaker(rate beep.SampleRate) (Sink, error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return func(s beep.Streamer) { speaker.Play(s) }, nil
}

// Streamer builds the streamer for cue. While muted the streamer still
// runs its full length but produces silence.
func (c *Cues) Streamer(cue Cue) beep.Streamer {
	c.mu.Lock()
	muted, vol := c.muted, c.volume
	c.mu.Unlock()

	var s beep.Streamer
	switch cue {
	case CueGem:
		// Rising two-note chime (E6, B6)
		s = beep.Seq(
			newTone(1318.51, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, c.rate),
			newTone(1975.53, 110*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, c.rate),
		)
	case CueGameOver:
		// Falling three-note buzz
		s = beep.Seq(
			newTone(392.00, 150*time.Millisecond, 10*time.Millisecond, 40*time.Millisecond, c.rate),
			newTone(311.13, 150*time.Millisecond, 10*time.Millisecond, 40*time.Millisecond, c.rate),
			newTone(196.00, 400*time.Millisecond, 10*time.Millisecond, 250*time.Millisecond, c.rate),
		)
	default:
		return beep.Silence(0)
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: muted}
}

// Play sends cue to the sink unless muted.
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	muted, sink := c.muted, c.sink
	c.mu.Unlock()

	if muted || sink == nil {
		return
	}
	sink(c.Streamer(cue))
}

// GemCollected plays the pickup chime.
func (c *Cues) GemCollected() { c.Play(CueGem) }

// GameOver plays the crash cue.
func (c *Cues) GameOver() { c.Play(CueGameOver) }

// SetMuted silences or restores every cue.
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}
