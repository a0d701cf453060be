package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestDir_UsesXDGRuntimeDirWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got != td {
		t.Fatalf("Dir() = %q, want %q", got, td)
	}
}

func TestDir_FallbacksWhenXDGRuntimeDirMissing(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}

	wantRun := fmt.Sprintf("/run/user/%d", os.Getuid())
	wantTmp := fmt.Sprintf("/tmp/sysmon-runtime-%d", os.Getuid())
	if got != wantRun && got != wantTmp {
		t.Fatalf("Dir() = %q, want %q or %q", got, wantRun, wantTmp)
	}
}

func TestDefaultsExpandUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	fifo, err := Expand(DefaultFifo)
	if err != nil {
		t.Fatalf("Expand(DefaultFifo) error: %v", err)
	}
	if fifo != filepath.Join(home, ".sys-monitor.fifo") {
		t.Fatalf("Expand(DefaultFifo) = %q", fifo)
	}

	pid, err := Expand(DefaultPIDFile)
	if err != nil {
		t.Fatalf("Expand(DefaultPIDFile) error: %v", err)
	}
	if pid != filepath.Join(home, ".sys-monitor.pid") {
		t.Fatalf("Expand(DefaultPIDFile) = %q", pid)
	}
}

func TestHomeFallsBackToRuntimeDir(t *testing.T) {
	rt := t.TempDir()
	t.Setenv("HOME", "")
	t.Setenv("XDG_RUNTIME_DIR", rt)

	got, err := Home()
	if err != nil {
		t.Fatalf("Home() error: %v", err)
	}
	if got != rt {
		t.Fatalf("Home() = %q, want %q", got, rt)
	}
}

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Expand("~/.sys-monitor.fifo")
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if got != filepath.Join(home, ".sys-monitor.fifo") {
		t.Fatalf("Expand() = %q", got)
	}

	got, err = Expand("/run/x.fifo")
	if err != nil || got != "/run/x.fifo" {
		t.Fatalf("Expand(abs) = %q, %v", got, err)
	}

	got, err = Expand("~user/x")
	if err != nil || got != "~user/x" {
		t.Fatalf("Expand(~user) = %q, %v", got, err)
	}
}

func TestWritePID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysmon.pid")

	if err := WritePID(path); err != nil {
		t.Fatalf("WritePID() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pid file: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid != os.Getpid() {
		t.Fatalf("pid file = %q, want %d", data, os.Getpid())
	}
}
