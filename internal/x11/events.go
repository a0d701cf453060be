package x11

import (
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Notification is a display event the bar reacts to.
type Notification int

const (
	NotifyTopology Notification = iota
	NotifyExpose
)

// PumpEvents forwards relevant X events to out until the connection is
// closed, then closes out. X protocol errors are logged and skipped.
func (c *Connection) PumpEvents(out chan<- Notification, logger *slog.Logger) {
	defer close(out)
	conn := c.XUtil.Conn()
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			logger.Info("x11 connection closed")
			return
		}
		if xerr != nil {
			logger.Warn("x11 protocol error", "error", xerr)
			continue
		}
		if n, ok := classify(ev); ok {
			out <- n
		}
	}
}

func classify(ev xgb.Event) (Notification, bool) {
	switch e := ev.(type) {
	case randr.ScreenChangeNotifyEvent:
		return NotifyTopology, true
	case xproto.ExposeEvent:
		// Only the last event of an expose series triggers a redraw.
		if e.Count == 0 {
			return NotifyExpose, true
		}
	}
	return 0, false
}
