package widget

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/shirou/gopsutil/v4/cpu"
)

// ticksPerSecond converts gopsutil's CPU seconds back to USER_HZ ticks, so
// a per-second delta reads directly as a percentage of one core.
const ticksPerSecond = 100

type cpuWidget struct {
	stats  Stats
	logger *slog.Logger
	rates  *bar.RateTracker
	label  string
}

func newCPU(d Deps) bar.Widget {
	w := &cpuWidget{stats: d.Stats, logger: d.Logger}
	w.label = cpuLabel(d.Stats)
	w.rates = bar.NewRateTracker(w.count)
	return w
}

func (w *cpuWidget) count() []uint64 {
	times, err := w.stats.CPUTimes()
	if err != nil {
		w.logger.Debug("cpu times unavailable", "error", err)
		return nil
	}
	return busyTicks(times)
}

// busyTicks returns the non-idle tick count of each CPU.
func busyTicks(times []cpu.TimesStat) []uint64 {
	out := make([]uint64, len(times))
	for i, t := range times {
		busy := t.User + t.Nice + t.System + t.Iowait + t.Irq + t.Softirq + t.Steal
		out[i] = uint64(math.Round(busy * ticksPerSecond))
	}
	return out
}

func (w *cpuWidget) Refresh() {}

func (w *cpuWidget) Width() int {
	return 100 + 50*w.rates.Len()
}

func (w *cpuWidget) Render(ctx *bar.RenderContext) {
	var sb strings.Builder
	sb.WriteString("CPU: ")
	sb.WriteString(w.label)
	sb.WriteString("  ")
	for _, pct := range w.rates.Rates() {
		// Display floor only; the tracker keeps negative deltas.
		fmt.Fprintf(&sb, "%d%% ", max(pct, 0))
	}
	ctx.Icon(4, cpuIcon)
	ctx.Text(16, sb.String())
}

func (w *cpuWidget) OnAdd(b *bar.Bar) {
	w.rates.Register(b)
}

// cpuLabel returns "<sockets>x <model>".
func cpuLabel(stats Stats) string {
	infos, err := stats.CPUInfo()
	if err != nil || len(infos) == 0 {
		return "1x"
	}
	sockets := 1
	for _, info := range infos {
		if id, err := strconv.Atoi(strings.TrimSpace(info.PhysicalID)); err == nil {
			sockets = max(sockets, id+1)
		}
	}
	return fmt.Sprintf("%dx %s", sockets, cleanModel(infos[0].ModelName))
}

// cleanModel drops vendor boilerplate from a CPU model string.
func cleanModel(model string) string {
	for _, noise := range []string{"Intel(R) Core(TM)", "CPU @ "} {
		model = strings.ReplaceAll(model, noise, "")
	}
	return strings.Join(strings.Fields(model), " ")
}
