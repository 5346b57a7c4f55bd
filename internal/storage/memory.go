package storage

import (
	"strconv"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

// MemoryKV is a process-local key-value store used when the database
// cannot be opened. Values are lost on exit.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// RaiseIfHigher stores value under key when it beats the current value.
func (m *MemoryKV) RaiseIfHigher(key string, value int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := runner.ParseScore(m.data[key]); ok && cur >= value {
		return false, nil
	}
	m.data[key] = strconv.Itoa(value)
	return true, nil
}

var (
	_ runner.KeyValue    = (*MemoryKV)(nil)
	_ runner.ScoreRaiser = (*MemoryKV)(nil)
)
