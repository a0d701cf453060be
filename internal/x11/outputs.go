package x11

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/randr"
)

// Output is the screen area scanned out by one active CRTC.
type Output struct {
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Outputs lists the areas of all active CRTCs, ordered left to right. It
// uses the current configuration instead of probing connectors, which some
// drivers answer by blanking the screen.
//
// A CRTC that cannot be queried fails the whole call: bars placed against a
// partial layout would reserve the wrong struts.
func (c *Connection) Outputs() ([]Output, error) {
	conn := c.XUtil.Conn()
	res, err := randr.GetScreenResourcesCurrent(conn, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var outputs []Output
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("failed to get crtc %d info: %w", crtc, err)
		}
		if !activeCrtc(len(info.Outputs), info.Width, info.Height) {
			continue
		}

		name := fmt.Sprintf("crtc-%d", crtc)
		if out, err := randr.GetOutputInfo(conn, info.Outputs[0], res.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}
		outputs = append(outputs, Output{
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}

	sortOutputs(outputs)
	return outputs, nil
}

// activeCrtc reports whether a CRTC drives an output with a mode set.
func activeCrtc(outputs int, width, height uint16) bool {
	return outputs > 0 && width > 0 && height > 0
}

func sortOutputs(outputs []Output) {
	sort.SliceStable(outputs, func(i, j int) bool {
		if outputs[i].X != outputs[j].X {
			return outputs[i].X < outputs[j].X
		}
		return outputs[i].Y < outputs[j].Y
	})
}
