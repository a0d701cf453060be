package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/sysmon/internal/runtimepath"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultHeight     = 16
	DefaultFont       = "fixed"
	DefaultForeground = "#FDFEFE"
	DefaultBackground = "#000000"
	DefaultStep       = 10
	MaxHeight         = 256
)

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Config is the bar configuration.
type Config struct {
	// Height is the bar height before DPI scaling.
	Height     int    `yaml:"height"`
	Edge       string `yaml:"edge"`
	AllScreens bool   `yaml:"all_screens"`

	// Font is a core X font name.
	Font       string  `yaml:"font"`
	Foreground string  `yaml:"foreground"`
	Background string  `yaml:"background"`
	Palette    Palette `yaml:"palette"`

	FifoPath string `yaml:"fifo_path"`
	PIDFile  string `yaml:"pid_file"`
	LogLevel string `yaml:"log_level"`

	Widgets WidgetLayout `yaml:"widgets"`

	BacklightStepPercent int    `yaml:"backlight_step_percent"`
	VolumeStepPercent    int    `yaml:"volume_step_percent"`
	PactlCommand         string `yaml:"pactl_command"`
}

// Palette holds the colors of gauge widgets.
type Palette struct {
	MemoryUsed  string `yaml:"memory_used"`
	MemoryCache string `yaml:"memory_cache"`
	Level       string `yaml:"level"`
	Track       string `yaml:"track"`
}

// WidgetLayout lists widget names per anchor in add order. End widgets
// are placed from the right edge inwards.
type WidgetLayout struct {
	Start []string `yaml:"start"`
	End   []string `yaml:"end"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Height:     DefaultHeight,
		Edge:       "top",
		Font:       DefaultFont,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		Palette: Palette{
			MemoryUsed:  "#8971C1",
			MemoryCache: "#74D371",
			Level:       "#FFFFFF",
			Track:       "#999999",
		},
		FifoPath: runtimepath.DefaultFifo,
		PIDFile:  runtimepath.DefaultPIDFile,
		LogLevel: "info",
		Widgets: WidgetLayout{
			Start: []string{"cpu"},
			End:   []string{"time", "volume", "backlight", "memory", "battery", "network", "storage"},
		},
		BacklightStepPercent: DefaultStep,
		VolumeStepPercent:    DefaultStep,
		PactlCommand:         "pactl",
	}
}

// Bottom reports whether the bar is pinned to the bottom edge.
func (c *Config) Bottom() bool {
	return c.Edge == "bottom"
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Height < 1 || c.Height > MaxHeight {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be between 1 and %d", MaxHeight)}
	}
	switch c.Edge {
	case "top", "bottom":
	default:
		return &ValidationError{Path: "edge", Err: fmt.Errorf("edge must be one of: top, bottom")}
	}
	if strings.TrimSpace(c.Font) == "" {
		return &ValidationError{Path: "font", Err: fmt.Errorf("font is required")}
	}
	colors := []struct {
		path, value string
	}{
		{"foreground", c.Foreground},
		{"background", c.Background},
		{"palette.memory_used", c.Palette.MemoryUsed},
		{"palette.memory_cache", c.Palette.MemoryCache},
		{"palette.level", c.Palette.Level},
		{"palette.track", c.Palette.Track},
	}
	for _, col := range colors {
		if _, err := ParseColor(col.value); err != nil {
			return &ValidationError{Path: col.path, Err: err}
		}
	}
	if strings.TrimSpace(c.FifoPath) == "" {
		return &ValidationError{Path: "fifo_path", Err: fmt.Errorf("fifo_path is required")}
	}
	if strings.TrimSpace(c.PIDFile) == "" {
		return &ValidationError{Path: "pid_file", Err: fmt.Errorf("pid_file is required")}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if err := c.Widgets.validate(); err != nil {
		return err
	}
	if c.BacklightStepPercent < 1 || c.BacklightStepPercent > 100 {
		return &ValidationError{Path: "backlight_step_percent", Err: fmt.Errorf("backlight_step_percent must be between 1 and 100")}
	}
	if c.VolumeStepPercent < 1 || c.VolumeStepPercent > 100 {
		return &ValidationError{Path: "volume_step_percent", Err: fmt.Errorf("volume_step_percent must be between 1 and 100")}
	}
	if strings.TrimSpace(c.PactlCommand) == "" {
		return &ValidationError{Path: "pactl_command", Err: fmt.Errorf("pactl_command is required")}
	}
	return nil
}

func (w WidgetLayout) validate() error {
	seen := make(map[string]string)
	check := func(anchor string, names []string) error {
		for i, name := range names {
			path := fmt.Sprintf("widgets.%s[%d]", anchor, i)
			if strings.TrimSpace(name) == "" {
				return &ValidationError{Path: path, Err: fmt.Errorf("widget name must not be empty")}
			}
			if prev, ok := seen[name]; ok {
				return &ValidationError{Path: path, Err: fmt.Errorf("widget %q already listed at %s", name, prev)}
			}
			seen[name] = path
		}
		return nil
	}
	if err := check("start", w.Start); err != nil {
		return err
	}
	return check("end", w.End)
}

// ParseColor parses a hex color such as "#8971C1" into 0xRRGGBB.
func ParseColor(s string) (uint32, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
