//go:build linux

package platform

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/sysmon/internal/x11"
)

// Style holds the drawing defaults applied to every surface.
type Style struct {
	Font       string
	Foreground Color
	Background Color
}

// LinuxBackend wraps an existing X11 connection behind the platform Display interface.
type LinuxBackend struct {
	conn   *x11.Connection
	style  Style
	logger *slog.Logger
	events chan Event
}

var _ Display = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection, style Style, logger *slog.Logger) *LinuxBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinuxBackend{
		conn:   conn,
		style:  style,
		logger: logger,
		events: make(chan Event, 16),
	}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay(style Style, logger *slog.Logger) (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewLinuxBackend(conn, style, logger), nil
}

// Start begins forwarding X events to the Events channel. The channel is
// closed when the X connection goes away.
func (b *LinuxBackend) Start() {
	notes := make(chan x11.Notification, 16)
	go b.conn.PumpEvents(notes, b.logger)
	go func() {
		defer close(b.events)
		for n := range notes {
			switch n {
			case x11.NotifyTopology:
				b.events <- Event{Kind: EventTopology}
			case x11.NotifyExpose:
				b.events <- Event{Kind: EventExpose}
			}
		}
	}()
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Events returns display notifications.
func (b *LinuxBackend) Events() <-chan Event {
	return b.events
}

// Scale returns the DPI scale factor of the display.
func (b *LinuxBackend) Scale() float64 {
	return b.conn.Scale()
}

// Outputs returns the rectangles of all active outputs ordered by position.
func (b *LinuxBackend) Outputs() ([]Rect, error) {
	found, err := b.conn.Outputs()
	if err != nil {
		return nil, err
	}

	outputs := make([]Rect, 0, len(found))
	for _, o := range found {
		b.logger.Debug("output", "name", o.Name, "x", o.X, "y", o.Y, "width", o.Width, "height", o.Height)
		outputs = append(outputs, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	return outputs, nil
}

// CreateSurface creates a dock window for spec.
func (b *LinuxBackend) CreateSurface(spec SurfaceSpec) (Surface, error) {
	dock, err := b.conn.CreateDock(x11.DockSpec{
		X:          spec.Bounds.X,
		Y:          spec.Bounds.Y,
		Width:      spec.Bounds.Width,
		Height:     spec.Bounds.Height,
		Bottom:     spec.Edge == EdgeBottom,
		Strut:      spec.Strut,
		Title:      spec.Title,
		Font:       b.style.Font,
		Foreground: uint32(b.style.Foreground),
		Background: uint32(b.style.Background),
	})
	if err != nil {
		return nil, err
	}
	return &dockSurface{dock: dock}, nil
}

type dockSurface struct {
	dock *x11.Dock
}

func (s *dockSurface) Width() int     { return s.dock.Width() }
func (s *dockSurface) Height() int    { return s.dock.Height() }
func (s *dockSurface) CharWidth() int { return s.dock.CharWidth() }
func (s *dockSurface) Clear()         { s.dock.Clear() }
func (s *dockSurface) Destroy()       { s.dock.Destroy() }

func (s *dockSurface) SetColor(c Color) {
	s.dock.SetForeground(uint32(c))
}

func (s *dockSurface) DrawText(x, baseline int, text string) {
	s.dock.Text(x, baseline, text)
}

func (s *dockSurface) FillRect(x, y, width, height int) {
	s.dock.FillRect(x, y, width, height)
}

func (s *dockSurface) DrawBitmap(x, y int, bm Bitmap) {
	pts := bm.Points()
	for i := range pts {
		pts[i][0] += x
		pts[i][1] += y
	}
	s.dock.Points(pts)
}
