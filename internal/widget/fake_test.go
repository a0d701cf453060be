package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/1broseidon/sysmon/internal/platform"
	"github.com/1broseidon/sysmon/internal/sysfs"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

type fakeStats struct {
	times []cpu.TimesStat
	info  []cpu.InfoStat
	mem   *mem.VirtualMemoryStat
	disk  map[string]disk.IOCountersStat
	net   []net.IOCountersStat
	err   error
}

func (s *fakeStats) CPUTimes() ([]cpu.TimesStat, error) { return s.times, s.err }
func (s *fakeStats) CPUInfo() ([]cpu.InfoStat, error)   { return s.info, s.err }

func (s *fakeStats) Memory() (*mem.VirtualMemoryStat, error) {
	if s.mem == nil {
		return nil, errors.New("no memory stats")
	}
	return s.mem, s.err
}

func (s *fakeStats) DiskIO() (map[string]disk.IOCountersStat, error) { return s.disk, s.err }
func (s *fakeStats) NetIO() ([]net.IOCountersStat, error)            { return s.net, s.err }

// fakeRunner answers commands from responses, keyed by the full command
// line. Unknown commands get output.
type fakeRunner struct {
	calls     []string
	responses map[string]string
	failures  map[string]error
	output    string
	err       error
}

func (r *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, line)
	if r.err != nil {
		return nil, r.err
	}
	if err, ok := r.failures[line]; ok {
		return nil, err
	}
	if out, ok := r.responses[line]; ok {
		return []byte(out), nil
	}
	return []byte(r.output), nil
}

type fakeDisplay struct {
	surface *fakeSurface
}

func (d *fakeDisplay) Outputs() ([]platform.Rect, error) {
	return []platform.Rect{{X: 0, Y: 0, Width: 1000, Height: 800}}, nil
}

func (d *fakeDisplay) CreateSurface(spec platform.SurfaceSpec) (platform.Surface, error) {
	d.surface = &fakeSurface{width: spec.Bounds.Width, height: spec.Bounds.Height}
	return d.surface, nil
}

func (d *fakeDisplay) Events() <-chan platform.Event { return nil }

type fakeSurface struct {
	width, height int
	color         platform.Color
	ops           []string
}

func (s *fakeSurface) Width() int     { return s.width }
func (s *fakeSurface) Height() int    { return s.height }
func (s *fakeSurface) CharWidth() int { return 1 }
func (s *fakeSurface) Clear()         { s.ops = nil }
func (s *fakeSurface) Destroy()       {}

func (s *fakeSurface) SetColor(c platform.Color) { s.color = c }

func (s *fakeSurface) DrawText(x, baseline int, text string) {
	s.ops = append(s.ops, fmt.Sprintf("text %d %s", x, text))
}

func (s *fakeSurface) FillRect(x, y, width, height int) {
	s.ops = append(s.ops, fmt.Sprintf("rect %d %d #%06x", x, width, uint32(s.color)))
}

func (s *fakeSurface) DrawBitmap(x, y int, bm platform.Bitmap) {
	s.ops = append(s.ops, fmt.Sprintf("bitmap %d", x))
}

func (s *fakeSurface) texts() []string {
	var out []string
	for _, op := range s.ops {
		if strings.HasPrefix(op, "text ") {
			out = append(out, op)
		}
	}
	return out
}

func (s *fakeSurface) rects() []string {
	var out []string
	for _, op := range s.ops {
		if strings.HasPrefix(op, "rect ") {
			out = append(out, op)
		}
	}
	return out
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mountWidget adds w at the start of a bar on a 1000px surface and draws
// it once.
func mountWidget(t *testing.T, w bar.Widget) (*bar.Bar, *fakeSurface) {
	t.Helper()
	d := &fakeDisplay{}
	b := bar.New(d, bar.Options{Height: 16, Scale: 1, Foreground: 0xFDFEFE, Logger: quietLogger()})
	b.Add(w, bar.Start)
	if err := b.Configure(); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	b.Refresh()
	return b, d.surface
}

func writeAttr(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func readAttr(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return strings.TrimSpace(string(data))
}

func testDeps(t *testing.T, stats Stats) (Deps, string) {
	t.Helper()
	root := t.TempDir()
	runner := &fakeRunner{err: errors.New("pactl: not found")}
	return Deps{
		Logger: quietLogger(),
		SysFS:  sysfs.FS{Root: root},
		Stats:  stats,
		Run:    runner.run,
	}.withDefaults(), root
}
