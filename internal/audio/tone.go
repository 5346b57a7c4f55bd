package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear attack and release.
type tone struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	total    int
	attack   int
	release  int
}

func newTone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		rate:    rate,
		total:   rate.N(duration),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		vol := 1.0
		if t.attack > 0 && t.position < t.attack {
			vol = float64(t.position) / float64(t.attack)
		}
		if remaining := t.total - t.position; t.release > 0 && remaining < t.release {
			vol = math.Min(vol, float64(remaining)/float64(t.release))
		}

		val := vol * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
