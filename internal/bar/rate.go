package bar

import "log/slog"

// RateTracker turns monotonically increasing counters into per-tick deltas.
//
// Deltas are computed with wrapping unsigned subtraction, so a counter that
// goes backwards produces a negative rate rather than being clamped.
type RateTracker struct {
	count  func() []uint64
	sums   []uint64
	rates  []int64
	logger *slog.Logger
}

// NewRateTracker samples count once to establish the baseline.
func NewRateTracker(count func() []uint64) *RateTracker {
	sums := count()
	return &RateTracker{
		count:  count,
		sums:   sums,
		rates:  make([]int64, len(sums)),
		logger: slog.Default(),
	}
}

// Register adds Tick to the bar's per-second callbacks.
func (r *RateTracker) Register(b *Bar) {
	r.logger = b.logger
	b.RegisterPerSecond(r.Tick)
}

// Tick samples the counters and stores the difference from the previous
// sample. A sample of a different length resets the baseline.
func (r *RateTracker) Tick() {
	cur := r.count()
	if len(cur) != len(r.sums) {
		r.logger.Warn("counter length changed, resetting rates", "previous", len(r.sums), "current", len(cur))
		r.sums = cur
		r.rates = make([]int64, len(cur))
		return
	}
	for i := range cur {
		r.rates[i] = int64(cur[i] - r.sums[i])
	}
	r.sums = cur
}

// Rates returns the deltas computed by the last Tick. The slice is owned by
// the tracker.
func (r *RateTracker) Rates() []int64 {
	return r.rates
}

// Len returns the number of tracked counters.
func (r *RateTracker) Len() int {
	return len(r.rates)
}
