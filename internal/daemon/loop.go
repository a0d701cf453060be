package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/1broseidon/sysmon/internal/platform"
	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the period of per-second refreshes.
const DefaultInterval = time.Second

// Bar is the part of the bar the loop drives.
type Bar interface {
	Configure() error
	Refresh()
	RefreshPerSecond()
	Execute(name string) bool
}

// LoopConfig holds configuration for the event loop.
type LoopConfig struct {
	Interval time.Duration
	Clock    clockwork.Clock
	Logger   *slog.Logger
}

// Loop multiplexes the refresh timer, display events and commands onto a
// single goroutine that owns the bar.
type Loop struct {
	bar      Bar
	events   <-chan platform.Event
	commands <-chan string

	interval time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger
}

// NewLoop creates a loop driving bar.
func NewLoop(cfg LoopConfig, bar Bar, events <-chan platform.Event, commands <-chan string) *Loop {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Loop{
		bar:      bar,
		events:   events,
		commands: commands,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

// Run configures the bar, draws it, and serves events until ctx is done or
// the display goes away. A display hang-up is a clean shutdown and returns
// nil. Configure failures are returned.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.bar.Configure(); err != nil {
		return fmt.Errorf("initial configure: %w", err)
	}
	l.bar.Refresh()

	last := l.clock.Now()
	timer := l.clock.NewTimer(l.interval)
	defer timer.Stop()

	commands := l.commands
	l.logger.Info("event loop started", "interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("event loop stopped")
			return nil

		case <-timer.Chan():
			l.bar.RefreshPerSecond()
			last = l.clock.Now()
			timer.Reset(l.interval)

		case ev, ok := <-l.events:
			if !ok {
				l.logger.Info("display connection closed")
				return nil
			}
			topology, expose, closed := l.drainEvents(ev)
			if topology {
				if err := l.bar.Configure(); err != nil {
					return fmt.Errorf("reconfigure: %w", err)
				}
				l.bar.Refresh()
			} else if expose {
				l.bar.Refresh()
			}
			if closed {
				l.logger.Info("display connection closed")
				return nil
			}

		case name, ok := <-commands:
			if !ok {
				l.logger.Warn("command channel closed")
				commands = nil
				continue
			}
			stopTimer(timer)
			l.bar.Execute(name)

			perSecond, wait := nextRefresh(l.clock.Since(last), l.interval)
			if perSecond {
				l.bar.RefreshPerSecond()
				last = l.clock.Now()
			} else {
				l.bar.Refresh()
			}
			timer.Reset(wait)
		}
	}
}

// drainEvents folds first and any queued events into flags.
func (l *Loop) drainEvents(first platform.Event) (topology, expose, closed bool) {
	apply := func(ev platform.Event) {
		switch ev.Kind {
		case platform.EventTopology:
			topology = true
		case platform.EventExpose:
			expose = true
		}
	}
	apply(first)
	for {
		select {
		case ev, ok := <-l.events:
			if !ok {
				closed = true
				return
			}
			apply(ev)
		default:
			return
		}
	}
}

// nextRefresh decides what follows a command handled passed after the
// last per-second refresh. Past the interval boundary the per-second work
// runs and a full interval follows; otherwise only a redraw happens and the
// existing tick phase is kept.
func nextRefresh(passed, interval time.Duration) (perSecond bool, wait time.Duration) {
	if passed >= interval {
		return true, interval
	}
	if passed < 0 {
		passed = 0
	}
	return false, interval - passed
}

func stopTimer(t clockwork.Timer) {
	if !t.Stop() {
		select {
		case <-t.Chan():
		default:
		}
	}
}
