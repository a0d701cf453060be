package bar

import (
	"fmt"

	"github.com/1broseidon/sysmon/internal/platform"
)

type fakeDisplay struct {
	outputs   []platform.Rect
	err       error
	specs     []platform.SurfaceSpec
	surfaces  []*fakeSurface
	createErr error
}

func (d *fakeDisplay) Outputs() ([]platform.Rect, error) {
	if d.err != nil {
		return nil, d.err
	}
	return append([]platform.Rect(nil), d.outputs...), nil
}

func (d *fakeDisplay) CreateSurface(spec platform.SurfaceSpec) (platform.Surface, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.specs = append(d.specs, spec)
	s := &fakeSurface{width: spec.Bounds.Width, height: spec.Bounds.Height, charWidth: 1}
	d.surfaces = append(d.surfaces, s)
	return s, nil
}

func (d *fakeDisplay) Events() <-chan platform.Event {
	return nil
}

type fakeSurface struct {
	width, height, charWidth int

	ops       []string
	clears    int
	destroyed bool
	color     platform.Color
}

func (s *fakeSurface) Width() int     { return s.width }
func (s *fakeSurface) Height() int    { return s.height }
func (s *fakeSurface) CharWidth() int { return s.charWidth }

func (s *fakeSurface) Clear() {
	s.clears++
	s.ops = nil
}

func (s *fakeSurface) SetColor(c platform.Color) {
	s.color = c
}

func (s *fakeSurface) DrawText(x, baseline int, text string) {
	s.ops = append(s.ops, fmt.Sprintf("text %d %d %q #%06x", x, baseline, text, uint32(s.color)))
}

func (s *fakeSurface) FillRect(x, y, width, height int) {
	s.ops = append(s.ops, fmt.Sprintf("rect %d %d %d %d #%06x", x, y, width, height, uint32(s.color)))
}

func (s *fakeSurface) DrawBitmap(x, y int, bm platform.Bitmap) {
	s.ops = append(s.ops, fmt.Sprintf("bitmap %d %d %dx%d", x, y, bm.Width, bm.Height))
}

func (s *fakeSurface) Destroy() {
	s.destroyed = true
}

type stubWidget struct {
	width      int
	widthCalls int
	refreshes  int
	renders    int
	onAdd     func(b *Bar)
	render    func(ctx *RenderContext)
}

func (w *stubWidget) Refresh() { w.refreshes++ }

func (w *stubWidget) Render(ctx *RenderContext) {
	w.renders++
	if w.render != nil {
		w.render(ctx)
	}
}

func (w *stubWidget) Width() int {
	w.widthCalls++
	return w.width
}

func (w *stubWidget) OnAdd(b *Bar) {
	if w.onAdd != nil {
		w.onAdd(b)
	}
}
