package widget

import (
	"time"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/jonboulle/clockwork"
)

// clockLayout renders e.g. "Mar-07 Tue 09:41".
const clockLayout = "Jan-02 Mon 15:04"

type clockWidget struct {
	clock clockwork.Clock
	now   time.Time
}

func newClock(d Deps) bar.Widget {
	w := &clockWidget{clock: d.Clock}
	w.Refresh()
	return w
}

func (w *clockWidget) Refresh() {
	w.now = w.clock.Now().Local()
}

func (w *clockWidget) Width() int { return 130 }

func (w *clockWidget) Render(ctx *bar.RenderContext) {
	ctx.Icon(4, clockIcon)
	ctx.Text(16, w.now.Format(clockLayout))
}

func (w *clockWidget) OnAdd(b *bar.Bar) {}
