package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Lifecycle receives fire-and-forget session notifications.
type Lifecycle interface {
	LoadingFinished()
	SessionStart(runID uuid.UUID)
	SessionStop(runID uuid.UUID, score int)
}

// Sounds plays the run's audio cues.
type Sounds interface {
	GemCollected()
	GameOver()
	SetMuted(muted bool)
}

// RunSummary describes a finished run.
type RunSummary struct {
	RunID    uuid.UUID
	Score    int
	Gems     int
	Ticks    int
	NewBest  bool
	Finished time.Time
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRun(summary RunSummary) error
}

// Deps are the collaborators a Session talks to. Nil members are replaced
// with no-op implementations.
type Deps struct {
	Display   Display
	Scores    *HighScores
	Lifecycle Lifecycle
	Sounds    Sounds
	Recorder  RunRecorder
	Rand      RandomSource
	Logger    *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Display == nil {
		d.Display = &nopDisplay{}
	}
	if d.Lifecycle == nil {
		d.Lifecycle = nopLifecycle{}
	}
	if d.Sounds == nil {
		d.Sounds = nopSounds{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Scores == nil {
		d.Scores = NewHighScores(nil, d.Logger)
	}
	return d
}

type nopLifecycle struct{}

func (nopLifecycle) LoadingFinished()           {}
func (nopLifecycle) SessionStart(uuid.UUID)     {}
func (nopLifecycle) SessionStop(uuid.UUID, int) {}

type nopSounds struct{}

func (nopSounds) GemCollected() {}
func (nopSounds) GameOver()     {}
func (nopSounds) SetMuted(bool) {}
