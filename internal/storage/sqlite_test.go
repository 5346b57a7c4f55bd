package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Set("highScore", "30"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("highScore", "50"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("highScore")
	if err != nil || !ok || v != "50" {
		t.Errorf("Get() = %q, %v, %v; expected \"50\"", v, ok, err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(runner.HighScoreKey, "77"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got, err := store.HighScore(); err != nil || got != 77 {
		t.Errorf("HighScore() = %d, %v; expected 77", got, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	if got, err := store.HighScore(); err != nil || got != 0 {
		t.Errorf("empty HighScore() = %d, %v", got, err)
	}

	store.Set(runner.HighScoreKey, "not a number")
	if got, err := store.HighScore(); err != nil || got != 0 {
		t.Errorf("corrupt HighScore() = %d, %v", got, err)
	}
}

func TestStoreBacksHighScores(t *testing.T) {
	store := openTestStore(t)
	store.Set(runner.HighScoreKey, "30")

	hs := runner.NewHighScores(store, nil)
	if hs.Load() != 30 {
		t.Fatalf("Load() = %d, expected 30", hs.Load())
	}
	if !hs.RecordIfHigher(50) {
		t.Error("50 should beat 30")
	}
	if hs.RecordIfHigher(10) {
		t.Error("10 should not beat 50")
	}
	if got, _ := store.HighScore(); got != 50 {
		t.Errorf("stored high score = %d, expected 50", got)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	scores := []int{12, 40, 7}
	for i, score := range scores {
		err := store.RecordRun(runner.RunSummary{
			RunID:    uuid.New(),
			Score:    score,
			Gems:     i + 1,
			Ticks:    score * 60,
			NewBest:  score == 40,
			Finished: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 40 || top[1].Score != 12 || top[2].Score != 7 {
		t.Errorf("runs not ordered by score: %d %d %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if !top[0].NewBest || top[1].NewBest {
		t.Error("new_best flag not round-tripped")
	}
	if top[0].Gems != 2 || top[0].Ticks != 2400 {
		t.Errorf("unexpected record %+v", top[0])
	}
	if !top[0].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("CreatedAt = %v, expected %v", top[0].CreatedAt, base.Add(time.Minute))
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 7 || recent[1].Score != 40 {
		t.Errorf("unexpected recent runs %+v", recent)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BestScore != 40 || stats.TotalGems != 6 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if !stats.LastPlayed.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("LastPlayed = %v", stats.LastPlayed)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if top, _ := store.TopRuns(10); len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}

func TestStoreRunIDUnique(t *testing.T) {
	store := openTestStore(t)
	id := uuid.New()

	if err := store.RecordRun(runner.RunSummary{RunID: id, Score: 1}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.RecordRun(runner.RunSummary{RunID: id, Score: 2}); err == nil {
		t.Error("duplicate run id should be rejected")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(RunRecord{RunID: uuid.NewString(), Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 || top[0].Score != 19 {
		t.Errorf("unexpected top runs %+v", top)
	}

	// Default limit
	top, _ = store.TopRuns(0)
	if len(top) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(top))
	}
}

func TestStoreEmptyStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats %+v", stats)
	}
}
