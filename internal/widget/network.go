package widget

import (
	"log/slog"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/1broseidon/sysmon/internal/sysfs"
)

type networkWidget struct {
	stats  Stats
	fs     sysfs.FS
	logger *slog.Logger
	rates  *bar.RateTracker
}

func newNetwork(d Deps) bar.Widget {
	w := &networkWidget{stats: d.Stats, fs: d.SysFS, logger: d.Logger}
	w.rates = bar.NewRateTracker(w.count)
	return w
}

// count returns bytes received and sent by physical interfaces.
func (w *networkWidget) count() []uint64 {
	io := make([]uint64, 2)
	counters, err := w.stats.NetIO()
	if err != nil {
		w.logger.Debug("network counters unavailable", "error", err)
		return io
	}
	for _, c := range counters {
		if !w.fs.IsPhysical("net", c.Name) {
			continue
		}
		io[0] += c.BytesRecv
		io[1] += c.BytesSent
	}
	return io
}

func (w *networkWidget) Refresh() {}

func (w *networkWidget) Width() int { return 140 }

func (w *networkWidget) Render(ctx *bar.RenderContext) {
	// Negative rates are shown as zero by throughput, not corrected here.
	rates := w.rates.Rates()
	ctx.Icon(4, netDownIcon).Icon(4+70, netUpIcon)
	ctx.Text(16, throughput(rates[0]))
	ctx.Text(16+70, throughput(rates[1]))
}

func (w *networkWidget) OnAdd(b *bar.Bar) {
	w.rates.Register(b)
}
