package widget

import (
	humanize "github.com/dustin/go-humanize"
)

// throughput formats a per-second byte delta. Negative deltas, which only
// occur after a counter reset, display as zero; RateTracker still reports
// them unchanged.
func throughput(delta int64) string {
	if delta < 0 {
		delta = 0
	}
	return humanize.IBytes(uint64(delta)) + "/s"
}

// percent returns part*100/whole, or 0 when whole is 0.
func percent(part, whole uint64) int {
	if whole == 0 {
		return 0
	}
	return int(part * 100 / whole)
}

func clampPercent(p int) int {
	return min(max(p, 0), 100)
}
