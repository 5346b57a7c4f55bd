package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

type fakeRuns struct {
	top, recent []storage.RunRecord
	err         error
}

func (f fakeRuns) TopRuns(int) ([]storage.RunRecord, error)    { return f.top, f.err }
func (f fakeRuns) RecentRuns(int) ([]storage.RunRecord, error) { return f.recent, f.err }
func (f fakeRuns) Stats() (*storage.RunStats, error) {
	return &storage.RunStats{Runs: len(f.top), BestScore: 40, AvgScore: 26, TotalGems: 9}, nil
}
func (f fakeRuns) HighScore() (int, error) { return 40, nil }

func TestScoreboardViews(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	src := fakeRuns{
		top:    []storage.RunRecord{{Score: 40, Gems: 5, Ticks: 3720, NewBest: true, CreatedAt: at}, {Score: 12, Gems: 4, CreatedAt: at}},
		recent: []storage.RunRecord{{Score: 12, Gems: 4, CreatedAt: at}},
	}

	m := NewScoreboardModel(src, 100, 30)
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "High score 40", "2 runs", "40 ★", "1:02"} {
		if !strings.Contains(view, want) {
			t.Errorf("top view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "RECENT RUNS") || len(m.runs) != 1 {
		t.Error("tab should switch to recent runs")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(fakeRuns{}, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected empty message")
	}

	m = NewScoreboardModel(fakeRuns{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("expected load error in view")
	}

	m = NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("nil source should render as empty")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := map[int]string{0: "0:00", 59: "0:00", 60: "0:01", 3720: "1:02", 36000: "10:00"}
	for ticks, want := range tests {
		if got := formatTicks(ticks); got != want {
			t.Errorf("formatTicks(%d) = %q, expected %q", ticks, got, want)
		}
	}
}
