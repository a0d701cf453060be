// Package sysfs reads and writes attributes under /sys/class.
package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultRoot is the device class directory on Linux.
const DefaultRoot = "/sys/class"

// FS resolves device attributes below Root.
type FS struct {
	Root string
}

// New returns an FS rooted at DefaultRoot.
func New() FS {
	return FS{Root: DefaultRoot}
}

func (fs FS) path(class, device, node string) string {
	return filepath.Join(fs.Root, class, device, node)
}

// ListDevices returns the sorted device names of class. A missing class
// yields no devices.
func (fs FS) ListDevices(class string) []string {
	entries, err := os.ReadDir(filepath.Join(fs.Root, class))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// IsPhysical reports whether device is backed by hardware, which sysfs
// expresses as a "device" link.
func (fs FS) IsPhysical(class, device string) bool {
	_, err := os.Stat(fs.path(class, device, "device"))
	return err == nil
}

// ReadString returns the trimmed contents of an attribute.
func (fs FS) ReadString(class, device, node string) (string, error) {
	data, err := os.ReadFile(fs.path(class, device, node))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadUints parses every whitespace-separated field of an attribute.
func (fs FS) ReadUints(class, device, node string) ([]uint64, error) {
	s, err := fs.ReadString(class, device, node)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fs.path(class, device, node), err)
		}
		out = append(out, n)
	}
	return out, nil
}

// ReadUint parses a single-value attribute.
func (fs FS) ReadUint(class, device, node string) (uint64, error) {
	vals, err := fs.ReadUints(class, device, node)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("%s: empty attribute", fs.path(class, device, node))
	}
	return vals[0], nil
}

// WriteUint stores value into an attribute.
func (fs FS) WriteUint(class, device, node string, value uint64) error {
	data := strconv.FormatUint(value, 10) + "\n"
	f, err := os.OpenFile(fs.path(class, device, node), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
