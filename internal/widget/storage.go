package widget

import (
	"log/slog"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/1broseidon/sysmon/internal/sysfs"
)

type storageWidget struct {
	stats  Stats
	fs     sysfs.FS
	logger *slog.Logger
	rates  *bar.RateTracker
}

func newStorage(d Deps) bar.Widget {
	w := &storageWidget{stats: d.Stats, fs: d.SysFS, logger: d.Logger}
	w.rates = bar.NewRateTracker(w.count)
	return w
}

// count returns bytes read and written by whole physical disks.
// Partitions have no device link and are skipped, so no I/O is counted
// twice.
func (w *storageWidget) count() []uint64 {
	io := make([]uint64, 2)
	counters, err := w.stats.DiskIO()
	if err != nil {
		w.logger.Debug("disk counters unavailable", "error", err)
		return io
	}
	for name, c := range counters {
		if !w.fs.IsPhysical("block", name) {
			continue
		}
		io[0] += c.ReadBytes
		io[1] += c.WriteBytes
	}
	return io
}

func (w *storageWidget) Refresh() {}

func (w *storageWidget) Width() int { return 150 }

func (w *storageWidget) Render(ctx *bar.RenderContext) {
	// Negative rates are shown as zero by throughput, not corrected here.
	rates := w.rates.Rates()
	ctx.Text(0, "R: "+throughput(rates[0]))
	ctx.Text(75, "W: "+throughput(rates[1]))
}

func (w *storageWidget) OnAdd(b *bar.Bar) {
	w.rates.Register(b)
}
