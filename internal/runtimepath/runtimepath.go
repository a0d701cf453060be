package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default locations, relative to the home directory.
const (
	DefaultFifo    = "~/.sys-monitor.fifo"
	DefaultPIDFile = "~/.sys-monitor.pid"
)

// Dir returns the runtime directory used when no home directory is
// available. Priority:
// 1) XDG_RUNTIME_DIR (if set)
// 2) /run/user/<uid> (if present)
// 3) /tmp/sysmon-runtime-<uid> (created)
func Dir() (string, error) {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir, nil
	}

	uid := os.Getuid()
	runUserDir := fmt.Sprintf("/run/user/%d", uid)
	if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
		return runUserDir, nil
	}

	tmpDir := fmt.Sprintf("/tmp/sysmon-runtime-%d", uid)
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return tmpDir, nil
}

// Home returns $HOME, falling back to the runtime directory.
func Home() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return Dir()
}

// Expand resolves a leading "~/" against Home.
func Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// WritePID writes the current process id to path.
func WritePID(path string) error {
	data := []byte(fmt.Sprintf("%d\n", os.Getpid()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write pid file: %w", err)
	}
	return nil
}
