package bar

import (
	"sort"

	"github.com/1broseidon/sysmon/internal/platform"
)

// Policy decides which outputs receive a surface and where it sits.
type Policy struct {
	AllScreens bool
	Edge       platform.Edge
}

// Extents is the vertical span covered by all outputs.
type Extents struct {
	MinY      int
	MaxBottom int
}

// ComputeExtents returns the vertical span of outputs.
func ComputeExtents(outputs []platform.Rect) Extents {
	if len(outputs) == 0 {
		return Extents{}
	}
	e := Extents{MinY: outputs[0].Y, MaxBottom: outputs[0].Bottom()}
	for _, o := range outputs[1:] {
		e.MinY = min(e.MinY, o.Y)
		e.MaxBottom = max(e.MaxBottom, o.Bottom())
	}
	return e
}

// SelectOutputs applies policy to outputs. In all-screens mode every output
// is kept; otherwise only outputs touching the top (or bottom) of the
// combined screen. The result is ordered by position.
func SelectOutputs(outputs []platform.Rect, policy Policy) []platform.Rect {
	ext := ComputeExtents(outputs)
	selected := make([]platform.Rect, 0, len(outputs))
	for _, o := range outputs {
		switch {
		case policy.AllScreens:
		case policy.Edge == platform.EdgeTop && o.Y == ext.MinY:
		case policy.Edge == platform.EdgeBottom && o.Bottom() == ext.MaxBottom:
		default:
			continue
		}
		selected = append(selected, o)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].X != selected[j].X {
			return selected[i].X < selected[j].X
		}
		return selected[i].Y < selected[j].Y
	})
	return selected
}

// SurfaceSpecFor returns the geometry of the bar surface on output. Only
// outputs touching the combined screen edge reserve rows: a strut is
// measured from that edge across the full output width, so one placed on an
// inner output would swallow the outputs between it and the edge.
func SurfaceSpecFor(output platform.Rect, ext Extents, height int, policy Policy, title string) platform.SurfaceSpec {
	spec := platform.SurfaceSpec{
		Bounds: platform.Rect{X: output.X, Width: output.Width, Height: height},
		Edge:   policy.Edge,
		Title:  title,
	}
	if policy.Edge == platform.EdgeBottom {
		spec.Bounds.Y = output.Bottom() - height
		if output.Bottom() == ext.MaxBottom {
			spec.Strut = height
		}
	} else {
		spec.Bounds.Y = output.Y
		if output.Y == ext.MinY {
			spec.Strut = height
		}
	}
	return spec
}
