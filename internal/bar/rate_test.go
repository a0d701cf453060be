package bar

import "testing"

type counterSeq struct {
	samples [][]uint64
	i       int
}

func (c *counterSeq) next() []uint64 {
	s := c.samples[c.i]
	if c.i < len(c.samples)-1 {
		c.i++
	}
	return s
}

func assertRates(t *testing.T, got []int64, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("rates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rates = %v, want %v", got, want)
		}
	}
}

func TestRateTrackerDeltas(t *testing.T) {
	seq := &counterSeq{samples: [][]uint64{{100, 200}, {150, 260}, {150, 260}}}
	r := NewRateTracker(seq.next)

	assertRates(t, r.Rates(), 0, 0)

	r.Tick()
	assertRates(t, r.Rates(), 50, 60)

	r.Tick()
	assertRates(t, r.Rates(), 0, 0)
}

func TestRateTrackerNegativeDeltaPassesThrough(t *testing.T) {
	seq := &counterSeq{samples: [][]uint64{{1000}, {400}}}
	r := NewRateTracker(seq.next)

	r.Tick()
	assertRates(t, r.Rates(), -600)
}

func TestRateTrackerLengthChangeResetsBaseline(t *testing.T) {
	seq := &counterSeq{samples: [][]uint64{{10, 20}, {30, 40, 50}, {31, 42, 53}}}
	r := NewRateTracker(seq.next)

	r.Tick()
	assertRates(t, r.Rates(), 0, 0, 0)
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	r.Tick()
	assertRates(t, r.Rates(), 1, 2, 3)
}

func TestRateTrackerRegisterRunsOnRefreshPerSecond(t *testing.T) {
	seq := &counterSeq{samples: [][]uint64{{5}, {8}, {20}}}
	r := NewRateTracker(seq.next)

	b := New(&fakeDisplay{}, Options{Height: 16})
	r.Register(b)

	b.Refresh()
	assertRates(t, r.Rates(), 0)

	b.RefreshPerSecond()
	assertRates(t, r.Rates(), 3)

	b.RefreshPerSecond()
	assertRates(t, r.Rates(), 12)
}
