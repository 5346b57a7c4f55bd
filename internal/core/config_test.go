package core

import "testing"

func TestFrameClockSumsToOneSecond(t *testing.T) {
	for _, rate := range []int{30, 60, 144} {
		c := NewFrameClock(rate)
		sum := 0
		for i := 0; i < rate; i++ {
			sum += c.Next()
		}
		if sum != 1000 {
			t.Errorf("rate %d: one second of frames = %d ms, expected 1000", rate, sum)
		}
	}
}

func TestFrameClockDefaultRate(t *testing.T) {
	c := NewFrameClock(0)
	if ms := c.Next(); ms != 16 {
		t.Errorf("first frame at default rate = %d ms, expected 16", ms)
	}
}
