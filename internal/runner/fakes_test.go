package runner

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// scriptedRand returns its values in order, cycling, reduced modulo n.
type scriptedRand struct {
	values []int
	i      int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

type widget struct {
	text  string
	shape bool
	tap   core.Action
}

type fakeDisplay struct {
	next      Handle
	widgets   map[Handle]widget
	badCalls  int // SetText/Destroy on unknown handles
	destroyed int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{widgets: make(map[Handle]widget)}
}

func (d *fakeDisplay) CreateText(_, _ int, text string, style TextStyle) Handle {
	d.next++
	d.widgets[d.next] = widget{text: text, tap: style.Tap}
	return d.next
}

func (d *fakeDisplay) CreateShape(core.Rect, ShapeStyle) Handle {
	d.next++
	d.widgets[d.next] = widget{shape: true}
	return d.next
}

func (d *fakeDisplay) SetText(h Handle, text string) {
	w, ok := d.widgets[h]
	if !ok {
		d.badCalls++
		return
	}
	w.text = text
	d.widgets[h] = w
}

func (d *fakeDisplay) Destroy(h Handle) {
	if _, ok := d.widgets[h]; !ok {
		d.badCalls++
		return
	}
	delete(d.widgets, h)
	d.destroyed++
}

func (d *fakeDisplay) hasText(text string) bool {
	for _, w := range d.widgets {
		if !w.shape && w.text == text {
			return true
		}
	}
	return false
}

func (d *fakeDisplay) texts() []string {
	var out []string
	for _, w := range d.widgets {
		if !w.shape {
			out = append(out, w.text)
		}
	}
	sort.Strings(out)
	return out
}

type fakeLifecycle struct {
	loading int
	starts  []uuid.UUID
	stops   []int
}

func (l *fakeLifecycle) LoadingFinished()                   { l.loading++ }
func (l *fakeLifecycle) SessionStart(id uuid.UUID)          { l.starts = append(l.starts, id) }
func (l *fakeLifecycle) SessionStop(_ uuid.UUID, score int) { l.stops = append(l.stops, score) }

type fakeSounds struct {
	gems, gameOvers int
	muted           bool
}

func (s *fakeSounds) GemCollected()       { s.gems++ }
func (s *fakeSounds) GameOver()           { s.gameOvers++ }
func (s *fakeSounds) SetMuted(muted bool) { s.muted = muted }

type memKV struct {
	data    map[string]string
	failGet bool
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("disk on fire")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.data[key] = value
	return nil
}

type fakeRecorder struct {
	runs []RunSummary
}

func (r *fakeRecorder) RecordRun(s RunSummary) error {
	r.runs = append(r.runs, s)
	return nil
}
