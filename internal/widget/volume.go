package widget

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/1broseidon/sysmon/internal/bar"
)

const (
	defaultSink  = "@DEFAULT_SINK@"
	pactlTimeout = 500 * time.Millisecond
)

var (
	volumePattern       = regexp.MustCompile(`(\d+)%`)
	errUnparsableVolume = errors.New("unparsable pactl volume output")
)

// volumeWidget shows the volume of the last PulseAudio sink and applies
// changes to every sink, through pactl.
type volumeWidget struct {
	run     Runner
	pactl   string
	logger  *slog.Logger
	palette *Palette
	step    int

	enabled bool
	sinks   []string
	percent int
}

func newVolume(d Deps) bar.Widget {
	w := &volumeWidget{run: d.Run, pactl: d.Pactl, logger: d.Logger, palette: d.Palette, step: d.VolumeStepPct}
	if err := w.update(); err != nil {
		d.Logger.Info("volume widget disabled", "error", err)
		return w
	}
	w.enabled = true
	return w
}

func (w *volumeWidget) call(args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), pactlTimeout)
	defer cancel()
	return w.run(ctx, w.pactl, args...)
}

// update reloads the sink list and the displayed volume.
func (w *volumeWidget) update() error {
	out, err := w.call("list", "short", "sinks")
	if err != nil {
		return err
	}
	sinks := parseSinks(string(out))
	if len(sinks) == 0 {
		sinks = []string{defaultSink}
	}

	out, err = w.call("get-sink-volume", sinks[len(sinks)-1])
	if err != nil {
		return err
	}
	pct, ok := parseVolume(string(out))
	if !ok {
		return errUnparsableVolume
	}
	w.sinks = sinks
	w.percent = pct
	return nil
}

// parseSinks returns the sink names of "pactl list short sinks" output,
// whose lines read "<index>\t<name>\t<driver>\t<format>\t<state>".
func parseSinks(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		names = append(names, fields[1])
	}
	return names
}

// parseVolume returns the channel average of pactl output such as
// "Volume: front-left: 32768 /  50% / -18.06 dB, ...".
func parseVolume(out string) (int, bool) {
	matches := volumePattern.FindAllStringSubmatch(out, -1)
	if len(matches) == 0 {
		return 0, false
	}
	sum := 0
	for _, m := range matches {
		pct, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		sum += pct
	}
	return sum / len(matches), true
}

func (w *volumeWidget) Refresh() {
	if !w.enabled {
		return
	}
	if err := w.update(); err != nil {
		w.logger.Debug("volume query failed", "error", err)
	}
}

func (w *volumeWidget) Width() int {
	if !w.enabled {
		return 0
	}
	return 120
}

func (w *volumeWidget) Render(ctx *bar.RenderContext) {
	pct := clampPercent(w.percent)
	ctx.Icon(4, speakerIcon).
		SetColor(w.palette.Level).Block(16, pct).
		SetColor(w.palette.Track).Block(16+pct, 100-pct).
		ResetColor()
}

func (w *volumeWidget) OnAdd(b *bar.Bar) {
	b.RegisterCommand("vol-up", func() { w.adjust(w.step) })
	b.RegisterCommand("vol-down", func() { w.adjust(-w.step) })
}

// adjust sets every sink to the displayed volume plus delta percent.
// Raising never goes past 100%, but a volume already above 100% is not
// lowered by vol-up.
func (w *volumeWidget) adjust(delta int) {
	if !w.enabled {
		return
	}
	w.Refresh()
	target := w.percent + delta
	if delta > 0 {
		target = max(min(target, 100), w.percent)
	}
	target = max(target, 0)
	if target == w.percent {
		return
	}

	arg := strconv.Itoa(target) + "%"
	applied := false
	for _, sink := range w.sinks {
		if _, err := w.call("set-sink-volume", sink, arg); err != nil {
			w.logger.Warn("failed to set volume", "sink", sink, "error", err)
			continue
		}
		applied = true
	}
	if applied {
		w.percent = target
	}
}
