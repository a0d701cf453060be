package x11

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/xgbutil/xprop"
)

// BaseDPI is the resolution at which layout units map 1:1 to pixels.
const BaseDPI = 96.0

// Scale returns the layout scale factor derived from the Xft.dpi resource
// in RESOURCE_MANAGER, or 1 when the resource is absent or unparsable.
func (c *Connection) Scale() float64 {
	db, err := xprop.PropValStr(xprop.GetProperty(c.XUtil, c.Root, "RESOURCE_MANAGER"))
	if err != nil {
		return 1
	}
	dpi, ok := ParseXftDPI(db)
	if !ok {
		return 1
	}
	return dpi / BaseDPI
}

// ParseXftDPI extracts Xft.dpi from an X resource database string.
func ParseXftDPI(db string) (float64, bool) {
	for _, line := range strings.Split(db, "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || dpi <= 0 {
			return 0, false
		}
		return dpi, true
	}
	return 0, false
}
