package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection connects to the X server, initializes RandR and subscribes
// to screen change notifications on the root window.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	if err := randr.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	root := xu.RootWin()
	if err := randr.SelectInputChecked(xu.Conn(), root, randr.NotifyMaskScreenChange).Check(); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to select randr input: %w", err)
	}

	return &Connection{
		XUtil: xu,
		Root:  root,
	}, nil
}

// Close cleanly disconnects from the X11 server. A goroutine blocked in
// WaitForEvent observes the hang-up and returns.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
