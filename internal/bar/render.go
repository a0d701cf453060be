package bar

import (
	"math"

	"github.com/1broseidon/sysmon/internal/platform"
	"github.com/mattn/go-runewidth"
)

// RenderContext maps a widget's local layout units onto one surface.
type RenderContext struct {
	surface    platform.Surface
	place      placement
	scale      float64
	foreground platform.Color
}

func newRenderContext(s platform.Surface, p placement, scale float64, fg platform.Color) *RenderContext {
	return &RenderContext{surface: s, place: p, scale: scale, foreground: fg}
}

// Translate converts a widget-local position into a surface pixel column.
func (c *RenderContext) Translate(local int) int {
	if c.place.anchor == Start {
		return int(math.Round(float64(c.place.offset+local) * c.scale))
	}
	width := float64(c.surface.Width())
	return int(math.Round(width - c.scale*float64(c.place.offset+c.place.width) + c.scale*float64(local)))
}

// Scaled converts a length in layout units to pixels.
func (c *RenderContext) Scaled(n int) int {
	return int(math.Round(float64(n) * c.scale))
}

// SetColor changes the drawing color.
func (c *RenderContext) SetColor(col platform.Color) *RenderContext {
	c.surface.SetColor(col)
	return c
}

// ResetColor restores the bar foreground color.
func (c *RenderContext) ResetColor() *RenderContext {
	c.surface.SetColor(c.foreground)
	return c
}

// Text draws s at local, truncated to the space left in the widget.
func (c *RenderContext) Text(local int, s string) *RenderContext {
	cw := c.surface.CharWidth()
	if cw <= 0 {
		cw = 1
	}
	avail := c.Scaled(c.place.width-local) / cw
	if avail <= 0 {
		return c
	}
	s = runewidth.Truncate(s, avail, "")
	baseline := int(math.Round(float64(c.surface.Height()) * 0.75))
	c.surface.DrawText(c.Translate(local), baseline, s)
	return c
}

// Block fills a half-height rectangle of length units starting at local.
func (c *RenderContext) Block(local, length int) *RenderContext {
	if length <= 0 {
		return c
	}
	h := float64(c.surface.Height())
	y := int(math.Round(h * 0.25))
	c.surface.FillRect(c.Translate(local), y, c.Scaled(length), int(math.Round(h*0.5)))
	return c
}

// Icon draws bm vertically centred at local.
func (c *RenderContext) Icon(local int, bm platform.Bitmap) *RenderContext {
	y := (c.surface.Height() - bm.Height) / 2
	c.surface.DrawBitmap(c.Translate(local), y, bm)
	return c
}
