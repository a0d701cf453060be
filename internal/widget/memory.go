package widget

import (
	"log/slog"

	"github.com/1broseidon/sysmon/internal/bar"
)

type memoryWidget struct {
	stats   Stats
	logger  *slog.Logger
	palette *Palette

	total, free, bufferCache uint64
}

func newMemory(d Deps) bar.Widget {
	return &memoryWidget{stats: d.Stats, logger: d.Logger, palette: d.Palette}
}

func (w *memoryWidget) Refresh() {
	vm, err := w.stats.Memory()
	if err != nil {
		w.logger.Debug("memory stats unavailable", "error", err)
		return
	}
	w.total = vm.Total
	w.free = vm.Free
	w.bufferCache = vm.Buffers + vm.Cached
}

func (w *memoryWidget) Width() int { return 120 }

// shares splits memory into used, buffer/cache and free percentages.
func (w *memoryWidget) shares() (used, cache, free int) {
	if w.total == 0 {
		return 0, 0, 0
	}
	cache = percent(w.bufferCache, w.total)
	free = percent(w.free, w.total)
	used = clampPercent(100 - cache - free)
	return used, cache, free
}

func (w *memoryWidget) Render(ctx *bar.RenderContext) {
	ctx.Icon(4, memIcon)
	used, cache, free := w.shares()
	ctx.SetColor(w.palette.MemoryUsed).Block(16, used).
		SetColor(w.palette.MemoryCache).Block(16+used, cache).
		SetColor(w.palette.Track).Block(16+used+cache, free).
		ResetColor()
}

func (w *memoryWidget) OnAdd(b *bar.Bar) {}
