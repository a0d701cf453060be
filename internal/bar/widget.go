package bar

// Anchor is the bar edge a widget is laid out from.
type Anchor int

const (
	// Start anchors widgets to the left edge, growing rightwards.
	Start Anchor = iota
	// End anchors widgets to the right edge, growing leftwards.
	End
)

func (a Anchor) String() string {
	if a == End {
		return "end"
	}
	return "start"
}

// Widget is a unit of bar content.
//
// Width is queried once when the widget is added and must not change
// afterwards. A widget without a data source reports width 0 and is
// never rendered.
type Widget interface {
	// Refresh re-reads cheap state. Called before every render.
	Refresh()
	// Render draws the widget through ctx.
	Render(ctx *RenderContext)
	// Width returns the widget extent in layout units.
	Width() int
	// OnAdd lets the widget register commands and per-second callbacks.
	OnAdd(b *Bar)
}

// placement is the layout slot assigned to a widget when it was added.
type placement struct {
	anchor Anchor
	offset int
	width  int
}
