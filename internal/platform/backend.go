package platform

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Color is a 24-bit 0xRRGGBB value.
type Color uint32

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Edge selects the screen edge a bar is pinned to.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

func (e Edge) String() string {
	if e == EdgeBottom {
		return "bottom"
	}
	return "top"
}

// EventKind classifies display server events the bar reacts to.
type EventKind int

const (
	// EventTopology means outputs were added, removed, or moved.
	EventTopology EventKind = iota
	// EventExpose means surface contents were lost and must be redrawn.
	EventExpose
)

// Event is a display server notification.
type Event struct {
	Kind EventKind
}

// SurfaceSpec is the geometry and window manager hints for one bar surface.
type SurfaceSpec struct {
	Bounds Rect
	Edge   Edge
	// Strut is the number of rows reserved from the screen edge.
	Strut int
	Title string
}

// Surface is a drawable strip on one output. Coordinates are pixels
// relative to the surface origin.
type Surface interface {
	Width() int
	Height() int
	// CharWidth is the advance of one text cell.
	CharWidth() int
	Clear()
	SetColor(c Color)
	DrawText(x, baseline int, s string)
	FillRect(x, y, width, height int)
	DrawBitmap(x, y int, bm Bitmap)
	Destroy()
}

// Display abstracts the window system operations the bar needs.
type Display interface {
	Outputs() ([]Rect, error)
	CreateSurface(spec SurfaceSpec) (Surface, error)
	Events() <-chan Event
}
