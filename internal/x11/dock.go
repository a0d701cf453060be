package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
)

// fallbackFonts are tried in order when the configured core font is missing.
var fallbackFonts = []string{"fixed", "9x15", "8x13", "6x13"}

// DockSpec describes a dock window pinned to a screen edge.
type DockSpec struct {
	X, Y          int
	Width, Height int
	Bottom        bool
	// Strut is the number of rows reserved from the top or bottom screen edge.
	Strut      int
	Title      string
	Font       string
	Foreground uint32
	Background uint32
}

// Dock is a mapped dock window with the GC and font used to paint it.
type Dock struct {
	conn *Connection

	Window xproto.Window
	GC     xproto.Gcontext
	Font   xproto.Font

	width     int
	height    int
	charWidth int
}

// CreateDock creates and maps a dock window with EWMH struts and no
// decorations. Expose events are selected on the window.
func (c *Connection) CreateDock(spec DockSpec) (*Dock, error) {
	if spec.Width < 1 || spec.Height < 1 {
		return nil, fmt.Errorf("invalid dock geometry %dx%d", spec.Width, spec.Height)
	}

	conn := c.XUtil.Conn()
	screen := c.XUtil.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		c.Root,
		int16(spec.X), int16(spec.Y),
		uint16(spec.Width), uint16(spec.Height),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		// Value order follows mask bit order: back_pixel, event_mask.
		[]uint32{spec.Background, xproto.EventMaskExposure},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create dock window: %w", err)
	}

	d := &Dock{
		conn:   c,
		Window: wid,
		width:  spec.Width,
		height: spec.Height,
	}

	if err := d.setHints(spec); err != nil {
		xproto.DestroyWindow(conn, wid)
		return nil, err
	}

	if err := d.openFont(spec.Font); err != nil {
		xproto.DestroyWindow(conn, wid)
		return nil, err
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		d.Destroy()
		return nil, err
	}
	err = xproto.CreateGCChecked(
		conn,
		gc,
		xproto.Drawable(wid),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont|xproto.GcGraphicsExposures,
		[]uint32{
			spec.Foreground,
			spec.Background,
			uint32(d.Font),
			0, // graphics_exposures=false
		},
	).Check()
	if err != nil {
		d.Destroy()
		return nil, fmt.Errorf("failed to create gc: %w", err)
	}
	d.GC = gc

	d.charWidth = 6
	if info, err := xproto.QueryFont(conn, xproto.Fontable(d.Font)).Reply(); err == nil && info.MaxBounds.CharacterWidth > 0 {
		d.charWidth = int(info.MaxBounds.CharacterWidth)
	}

	if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
		d.Destroy()
		return nil, fmt.Errorf("failed to map dock window: %w", err)
	}

	return d, nil
}

func (d *Dock) setHints(spec DockSpec) error {
	xu := d.conn.XUtil
	win := d.Window

	if err := ewmh.WmWindowTypeSet(xu, win, []string{"_NET_WM_WINDOW_TYPE_DOCK"}); err != nil {
		return fmt.Errorf("failed to set window type: %w", err)
	}

	if err := motif.WmHintsSet(xu, win, &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: motif.DecorationNone,
	}); err != nil {
		return fmt.Errorf("failed to set motif hints: %w", err)
	}

	strut := &ewmh.WmStrut{}
	partial := &ewmh.WmStrutPartial{}
	startX := uint(max(spec.X, 0))
	endX := uint(max(spec.X+spec.Width-1, 0))
	if spec.Bottom {
		strut.Bottom = uint(spec.Strut)
		partial.Bottom = uint(spec.Strut)
		partial.BottomStartX = startX
		partial.BottomEndX = endX
	} else {
		strut.Top = uint(spec.Strut)
		partial.Top = uint(spec.Strut)
		partial.TopStartX = startX
		partial.TopEndX = endX
	}
	if err := ewmh.WmStrutSet(xu, win, strut); err != nil {
		return fmt.Errorf("failed to set strut: %w", err)
	}
	if err := ewmh.WmStrutPartialSet(xu, win, partial); err != nil {
		return fmt.Errorf("failed to set strut partial: %w", err)
	}

	if err := icccm.WmNormalHintsSet(xu, win, &icccm.NormalHints{
		Flags:      icccm.SizeHintPPosition | icccm.SizeHintPSize | icccm.SizeHintPBaseSize,
		X:          spec.X,
		Y:          spec.Y,
		Width:      uint(spec.Width),
		Height:     uint(spec.Height),
		BaseWidth:  uint(spec.Width),
		BaseHeight: uint(spec.Height),
	}); err != nil {
		return fmt.Errorf("failed to set normal hints: %w", err)
	}

	if spec.Title != "" {
		// Best effort.
		_ = ewmh.WmNameSet(xu, win, spec.Title)
		_ = icccm.WmClassSet(xu, win, &icccm.WmClass{Instance: spec.Title, Class: spec.Title})
	}
	return nil
}

func (d *Dock) openFont(preferred string) error {
	conn := d.conn.XUtil.Conn()

	font, err := xproto.NewFontId(conn)
	if err != nil {
		return err
	}

	names := fallbackFonts
	if preferred != "" {
		names = append([]string{preferred}, fallbackFonts...)
	}
	for _, name := range names {
		if err := xproto.OpenFontChecked(conn, font, uint16(len(name)), name).Check(); err == nil {
			d.Font = font
			return nil
		}
	}
	return fmt.Errorf("no usable core font among %v", names)
}

// Width returns the dock width in pixels.
func (d *Dock) Width() int { return d.width }

// Height returns the dock height in pixels.
func (d *Dock) Height() int { return d.height }

// CharWidth returns the maximum advance of the dock font.
func (d *Dock) CharWidth() int { return d.charWidth }

// Destroy releases the GC, font and window.
func (d *Dock) Destroy() {
	conn := d.conn.XUtil.Conn()
	if d.GC != 0 {
		xproto.FreeGC(conn, d.GC)
		d.GC = 0
	}
	if d.Font != 0 {
		xproto.CloseFont(conn, d.Font)
		d.Font = 0
	}
	if d.Window != 0 {
		xproto.DestroyWindow(conn, d.Window)
		d.Window = 0
	}
}
