// Package lifecycle delivers the fire-and-forget session notifications a
// host platform expects: loading finished, session start and session stop.
package lifecycle

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Notifier receives session notifications. It matches runner.Lifecycle.
type Notifier interface {
	LoadingFinished()
	SessionStart(runID uuid.UUID)
	SessionStop(runID uuid.UUID, score int)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) LoadingFinished()           {}
func (Nop) SessionStart(uuid.UUID)     {}
func (Nop) SessionStop(uuid.UUID, int) {}

// LogNotifier writes notifications to a structured logger and tracks how
// long each session ran.
type LogNotifier struct {
	logger *log.Logger
	now    func() time.Time
	runs   *runTable
}

// runTable holds the start time of every run in progress. Notifiers made
// with With share one table.
type runTable struct {
	mu      sync.Mutex
	started map[uuid.UUID]time.Time
}

// NewLogNotifier creates a notifier writing to logger. A nil logger discards output.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LogNotifier{
		logger: logger,
		now:    time.Now,
		runs:   &runTable{started: make(map[uuid.UUID]time.Time)},
	}
}

// With returns a notifier that logs to logger and shares n's run table,
// so Active counts runs across all of them.
func (n *LogNotifier) With(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LogNotifier{logger: logger, now: n.now, runs: n.runs}
}

func (n *LogNotifier) LoadingFinished() {
	n.logger.Info("loading finished")
}

func (n *LogNotifier) SessionStart(runID uuid.UUID) {
	n.runs.mu.Lock()
	n.runs.started[runID] = n.now()
	n.runs.mu.Unlock()

	n.logger.Info("session start", "run", runID)
}

func (n *LogNotifier) SessionStop(runID uuid.UUID, score int) {
	n.runs.mu.Lock()
	start, ok := n.runs.started[runID]
	delete(n.runs.started, runID)
	n.runs.mu.Unlock()

	if !ok {
		n.logger.Warn("session stop without start", "run", runID, "score", score)
		return
	}
	n.logger.Info("session stop", "run", runID, "score", score, "duration", n.now().Sub(start).Round(time.Millisecond))
}

// Active returns the number of sessions started but not yet stopped.
func (n *LogNotifier) Active() int {
	n.runs.mu.Lock()
	defer n.runs.mu.Unlock()
	return len(n.runs.started)
}
