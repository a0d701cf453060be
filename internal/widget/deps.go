package widget

import (
	"context"
	"log/slog"
	"os/exec"

	"github.com/1broseidon/sysmon/internal/platform"
	"github.com/1broseidon/sysmon/internal/sysfs"
	"github.com/jonboulle/clockwork"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// Stats exposes the host counters widgets read.
type Stats interface {
	CPUTimes() ([]cpu.TimesStat, error)
	CPUInfo() ([]cpu.InfoStat, error)
	Memory() (*mem.VirtualMemoryStat, error)
	DiskIO() (map[string]disk.IOCountersStat, error)
	NetIO() ([]net.IOCountersStat, error)
}

// HostStats reads counters through gopsutil.
type HostStats struct{}

func (HostStats) CPUTimes() ([]cpu.TimesStat, error)              { return cpu.Times(true) }
func (HostStats) CPUInfo() ([]cpu.InfoStat, error)                { return cpu.Info() }
func (HostStats) Memory() (*mem.VirtualMemoryStat, error)         { return mem.VirtualMemory() }
func (HostStats) DiskIO() (map[string]disk.IOCountersStat, error) { return disk.IOCounters() }
func (HostStats) NetIO() ([]net.IOCountersStat, error)            { return net.IOCounters(true) }

// Runner executes an external command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Palette holds gauge colors.
type Palette struct {
	MemoryUsed  platform.Color
	MemoryCache platform.Color
	Level       platform.Color
	Track       platform.Color
}

// DefaultPalette matches the default configuration.
var DefaultPalette = Palette{
	MemoryUsed:  0x8971C1,
	MemoryCache: 0x74D371,
	Level:       0xFFFFFF,
	Track:       0x999999,
}

// Deps are shared by all widget constructors. Zero fields get defaults.
type Deps struct {
	Logger  *slog.Logger
	SysFS   sysfs.FS
	Stats   Stats
	Clock   clockwork.Clock
	Run     Runner
	Palette *Palette

	Pactl            string
	BacklightStepPct int
	VolumeStepPct    int
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.SysFS.Root == "" {
		d.SysFS = sysfs.New()
	}
	if d.Stats == nil {
		d.Stats = HostStats{}
	}
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Run == nil {
		d.Run = ExecRunner
	}
	if d.Palette == nil {
		p := DefaultPalette
		d.Palette = &p
	}
	if d.Pactl == "" {
		d.Pactl = "pactl"
	}
	if d.BacklightStepPct <= 0 {
		d.BacklightStepPct = 10
	}
	if d.VolumeStepPct <= 0 {
		d.VolumeStepPct = 10
	}
	return d
}
