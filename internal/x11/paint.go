package x11

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Clear repaints the dock with its background pixel.
func (d *Dock) Clear() {
	xproto.ClearArea(d.conn.XUtil.Conn(), false, d.Window, 0, 0, 0, 0)
}

// SetForeground changes the GC foreground used by subsequent draws.
func (d *Dock) SetForeground(pixel uint32) {
	xproto.ChangeGC(d.conn.XUtil.Conn(), d.GC, xproto.GcForeground, []uint32{pixel})
}

// Text draws s with its baseline at y. Runes outside Latin-1 are replaced.
func (d *Dock) Text(x, y int, s string) {
	b := latin1(s)
	if len(b) == 0 {
		return
	}
	if len(b) > 255 {
		b = b[:255]
	}
	xproto.ImageText8(
		d.conn.XUtil.Conn(),
		byte(len(b)),
		xproto.Drawable(d.Window),
		d.GC,
		int16(x),
		int16(y),
		string(b),
	)
}

// FillRect fills a rectangle with the foreground color.
func (d *Dock) FillRect(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	xproto.PolyFillRectangle(
		d.conn.XUtil.Conn(),
		xproto.Drawable(d.Window),
		d.GC,
		[]xproto.Rectangle{{
			X:      int16(x),
			Y:      int16(y),
			Width:  uint16(width),
			Height: uint16(height),
		}},
	)
}

// Points plots individual pixels with the foreground color.
func (d *Dock) Points(pts [][2]int) {
	if len(pts) == 0 {
		return
	}
	points := make([]xproto.Point, len(pts))
	for i, p := range pts {
		points[i] = xproto.Point{X: int16(p[0]), Y: int16(p[1])}
	}
	xproto.PolyPoint(
		d.conn.XUtil.Conn(),
		xproto.CoordModeOrigin,
		xproto.Drawable(d.Window),
		d.GC,
		points,
	)
}

func latin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}
