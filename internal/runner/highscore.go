package runner

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// HighScoreKey is the storage key holding the best score as a decimal string.
const HighScoreKey = "highScore"

// KeyValue is durable string storage. A missing key reports ok == false.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ScoreRaiser is implemented by stores that can replace a numeric value
// only when the new one is larger, as one atomic step. Stored values that
// are missing, negative or not decimal count as 0.
type ScoreRaiser interface {
	RaiseIfHigher(key string, value int) (raised bool, err error)
}

// recordMu serialises the read-compare-write fallback for stores that are
// not ScoreRaisers.
var recordMu sync.Mutex

// HighScores reads and writes the persisted high score. Storage failures
// never reach the caller: reads fall back to 0 and failed writes are logged.
type HighScores struct {
	kv     KeyValue
	logger *log.Logger
}

// NewHighScores wraps kv. A nil logger discards output.
func NewHighScores(kv KeyValue, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{kv: kv, logger: logger}
}

// Load returns the stored high score, or 0 when it is absent, corrupt or unreadable.
func (h *HighScores) Load() int {
	if h == nil || h.kv == nil {
		return 0
	}

	raw, ok, err := h.kv.Get(HighScoreKey)
	if err != nil {
		h.logger.Warn("could not read high score", "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	n, ok := ParseScore(raw)
	if !ok {
		h.logger.Warn("ignoring corrupt high score", "value", raw)
	}
	return n
}

// RecordIfHigher persists score when it beats the stored high score.
// It reports whether the score is a new high score. Concurrent callers
// sharing one store never lower the stored value.
func (h *HighScores) RecordIfHigher(score int) bool {
	if h == nil || h.kv == nil || score <= 0 {
		return false
	}

	if r, ok := h.kv.(ScoreRaiser); ok {
		raised, err := r.RaiseIfHigher(HighScoreKey, score)
		if err != nil {
			h.logger.Warn("could not save high score", "score", score, "error", err)
			return score > h.Load()
		}
		return raised
	}

	recordMu.Lock()
	defer recordMu.Unlock()

	if score <= h.Load() {
		return false
	}
	if err := h.kv.Set(HighScoreKey, strconv.Itoa(score)); err != nil {
		h.logger.Warn("could not save high score", "score", score, "error", err)
	}
	return true
}

// ParseScore reads a stored high score. Corrupt or negative values count as 0.
func ParseScore(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
