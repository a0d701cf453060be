package widget

import (
	"log/slog"
	"strings"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/1broseidon/sysmon/internal/sysfs"
)

const backlightClass = "backlight"

type backlightWidget struct {
	fs      sysfs.FS
	logger  *slog.Logger
	palette *Palette
	step    int

	device string
	// acpi devices are shown but never written.
	acpi       bool
	max, value uint64
}

func newBacklight(d Deps) bar.Widget {
	w := &backlightWidget{fs: d.SysFS, logger: d.Logger, palette: d.Palette, step: d.BacklightStepPct}
	for _, dev := range d.SysFS.ListDevices(backlightClass) {
		w.device = dev
		if strings.HasPrefix(dev, "acpi_video") {
			w.acpi = true
			break
		}
	}
	w.Refresh()
	return w
}

func (w *backlightWidget) enabled() bool {
	return w.device != ""
}

func (w *backlightWidget) Refresh() {
	if !w.enabled() {
		return
	}
	maxBrightness, err := w.fs.ReadUint(backlightClass, w.device, "max_brightness")
	if err != nil {
		w.logger.Debug("backlight max unavailable", "device", w.device, "error", err)
		return
	}
	value, err := w.fs.ReadUint(backlightClass, w.device, "brightness")
	if err != nil {
		w.logger.Debug("backlight value unavailable", "device", w.device, "error", err)
		return
	}
	w.max, w.value = maxBrightness, value
}

func (w *backlightWidget) Width() int {
	if !w.enabled() {
		return 0
	}
	return 120
}

func (w *backlightWidget) Render(ctx *bar.RenderContext) {
	pct := clampPercent(percent(w.value, w.max))
	ctx.Icon(4, brightnessIcon).
		SetColor(w.palette.Level).Block(16, pct).
		SetColor(w.palette.Track).Block(16+pct, 100-pct).
		ResetColor()
}

func (w *backlightWidget) OnAdd(b *bar.Bar) {
	b.RegisterCommand("brightness-up", func() { w.adjust(1) })
	b.RegisterCommand("brightness-down", func() { w.adjust(-1) })
}

// adjust moves brightness by one step in direction dir, clamped to
// [0, max].
func (w *backlightWidget) adjust(dir int) {
	if !w.enabled() || w.acpi {
		return
	}
	w.Refresh()
	delta := w.max * uint64(w.step) / 100
	var target uint64
	switch {
	case dir > 0:
		target = min(w.max, w.value+delta)
	case w.value > delta:
		target = w.value - delta
	}
	if err := w.fs.WriteUint(backlightClass, w.device, "brightness", target); err != nil {
		w.logger.Warn("failed to set brightness", "device", w.device, "error", err)
		return
	}
	w.value = target
}
