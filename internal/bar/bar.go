package bar

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/sysmon/internal/platform"
)

// Options configures a Bar. Height is in pixels and already scaled.
type Options struct {
	Height     int
	Scale      float64
	Policy     Policy
	Foreground platform.Color
	Title      string
	Logger     *slog.Logger
}

// Bar owns the widgets, their placements and the surfaces they are drawn
// on. It is not safe for concurrent use; one goroutine drives it.
type Bar struct {
	display platform.Display
	opts    Options
	logger  *slog.Logger

	widgets    []Widget
	placements []placement
	offsets    [2]int

	commands  map[string]func()
	perSecond []func()
	surfaces  []platform.Surface
}

// New creates a bar drawing on display. No surfaces exist until Configure.
func New(display platform.Display, opts Options) *Bar {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return &Bar{
		display:  display,
		opts:     opts,
		logger:   opts.Logger,
		commands: make(map[string]func()),
	}
}

// Add places w after the widgets already anchored at anchor, then calls
// its OnAdd hook.
func (b *Bar) Add(w Widget, anchor Anchor) {
	width := w.Width()
	p := placement{anchor: anchor, offset: b.offsets[anchor], width: width}
	b.offsets[anchor] += width
	b.widgets = append(b.widgets, w)
	b.placements = append(b.placements, p)
	w.OnAdd(b)
}

// RegisterPerSecond adds fn to the callbacks run once per second.
func (b *Bar) RegisterPerSecond(fn func()) {
	b.perSecond = append(b.perSecond, fn)
}

// RegisterCommand binds name to handler. A later registration replaces an
// earlier one.
func (b *Bar) RegisterCommand(name string, handler func()) {
	if _, exists := b.commands[name]; exists {
		b.logger.Warn("command registered twice", "command", name)
	}
	b.commands[name] = handler
}

// Execute runs the handler registered for name. It reports whether a
// handler existed; unknown names are ignored.
func (b *Bar) Execute(name string) bool {
	handler, ok := b.commands[name]
	if !ok {
		b.logger.Debug("unknown command", "command", name)
		return false
	}
	b.logger.Debug("executing command", "command", name)
	handler()
	return true
}

// Commands returns the number of registered commands.
func (b *Bar) Commands() int {
	return len(b.commands)
}

// Configure discards all surfaces and creates one per selected output.
func (b *Bar) Configure() error {
	outputs, err := b.display.Outputs()
	if err != nil {
		return fmt.Errorf("failed to query outputs: %w", err)
	}

	b.destroySurfaces()

	ext := ComputeExtents(outputs)
	selected := SelectOutputs(outputs, b.opts.Policy)
	for _, out := range selected {
		spec := SurfaceSpecFor(out, ext, b.opts.Height, b.opts.Policy, b.opts.Title)
		s, err := b.display.CreateSurface(spec)
		if err != nil {
			return fmt.Errorf("failed to create surface at %+v: %w", spec.Bounds, err)
		}
		b.surfaces = append(b.surfaces, s)
	}

	b.logger.Info("configured outputs",
		"outputs", len(outputs),
		"surfaces", len(b.surfaces),
		"edge", b.opts.Policy.Edge.String(),
		"all_screens", b.opts.Policy.AllScreens,
	)
	return nil
}

// Refresh updates every widget and redraws every surface.
func (b *Bar) Refresh() {
	for _, w := range b.widgets {
		w.Refresh()
	}
	for _, s := range b.surfaces {
		b.render(s)
	}
}

// RefreshPerSecond runs the per-second callbacks, then refreshes.
func (b *Bar) RefreshPerSecond() {
	for _, fn := range b.perSecond {
		fn()
	}
	b.Refresh()
}

func (b *Bar) render(s platform.Surface) {
	s.Clear()
	s.SetColor(b.opts.Foreground)
	for i, w := range b.widgets {
		p := b.placements[i]
		if p.width == 0 {
			continue
		}
		w.Render(newRenderContext(s, p, b.opts.Scale, b.opts.Foreground))
	}
}

// Surfaces returns the current surfaces.
func (b *Bar) Surfaces() []platform.Surface {
	return b.surfaces
}

// Close destroys all surfaces.
func (b *Bar) Close() {
	b.destroySurfaces()
}

func (b *Bar) destroySurfaces() {
	for _, s := range b.surfaces {
		s.Destroy()
	}
	b.surfaces = nil
}
