package widget

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/1broseidon/sysmon/internal/sysfs"
)

const powerSupplyClass = "power_supply"

type batteryWidget struct {
	fs      sysfs.FS
	logger  *slog.Logger
	palette *Palette

	devices  []string
	capacity int
	status   string
}

func newBattery(d Deps) bar.Widget {
	w := &batteryWidget{fs: d.SysFS, logger: d.Logger, palette: d.Palette}
	for _, dev := range d.SysFS.ListDevices(powerSupplyClass) {
		typ, err := d.SysFS.ReadString(powerSupplyClass, dev, "type")
		if err == nil && typ == "Battery" {
			w.devices = append(w.devices, dev)
		}
	}
	w.Refresh()
	return w
}

// Refresh averages the capacity of all batteries. The status shown is the
// first one that is not "Unknown".
func (w *batteryWidget) Refresh() {
	if len(w.devices) == 0 {
		return
	}
	total, n := 0, 0
	status := ""
	for _, dev := range w.devices {
		capacity, err := w.fs.ReadUint(powerSupplyClass, dev, "capacity")
		if err != nil {
			w.logger.Debug("battery capacity unavailable", "device", dev, "error", err)
			continue
		}
		total += int(capacity)
		n++
		if s, err := w.fs.ReadString(powerSupplyClass, dev, "status"); err == nil && s != "Unknown" && status == "" {
			status = s
		}
	}
	if n == 0 {
		return
	}
	w.capacity = clampPercent(total / n)
	w.status = status
}

func (w *batteryWidget) Width() int {
	if len(w.devices) == 0 {
		return 0
	}
	return 100
}

func statusMark(status string) string {
	switch status {
	case "Charging":
		return "+"
	case "Discharging":
		return "-"
	default:
		return ""
	}
}

func (w *batteryWidget) Render(ctx *bar.RenderContext) {
	ctx.Icon(4, batteryIcon)
	ctx.Text(16, fmt.Sprintf("%d%%%s", w.capacity, statusMark(w.status)))
}

func (w *batteryWidget) OnAdd(b *bar.Bar) {}
