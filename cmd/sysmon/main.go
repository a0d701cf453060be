package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/sysmon/internal/bar"
	"github.com/1broseidon/sysmon/internal/config"
	"github.com/1broseidon/sysmon/internal/daemon"
	"github.com/1broseidon/sysmon/internal/fifo"
	"github.com/1broseidon/sysmon/internal/platform"
	"github.com/1broseidon/sysmon/internal/runtimepath"
	"github.com/1broseidon/sysmon/internal/widget"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const barTitle = "sysmon"

type options struct {
	allScreens  bool
	bottom      bool
	configPath  string
	printConfig bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("sysmon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.allScreens, "a", false, "Show a bar on every output")
	fs.BoolVar(&opts.bottom, "b", false, "Pin the bar to the bottom edge")
	fs.StringVar(&opts.configPath, "config", "", "Config file path (default: ~/.config/sysmon/config.yaml)")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: sysmon [-a] [-b] [-config PATH] [-print-config]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Commands are read line by line from the control fifo:")
		fmt.Fprintln(stderr, "  vol-up, vol-down, brightness-up, brightness-down")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if opts.printConfig {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			log.Fatalf("Failed to encode configuration: %v", err)
		}
		fmt.Print(string(data))
		return
	}

	logger := newLogger(os.Stderr, cfg.SlogLevel(), term.IsTerminal(int(os.Stderr.Fd())))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("sysmon stopped", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(opts.configPath)
	}
	if err != nil {
		return nil, err
	}
	if opts.allScreens {
		cfg.AllScreens = true
	}
	if opts.bottom {
		cfg.Edge = "bottom"
	}
	return cfg, nil
}

// newLogger writes human-readable logs to a terminal and JSON otherwise.
func newLogger(w io.Writer, level slog.Level, tty bool) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if tty {
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	style, palette, err := resolveColors(cfg)
	if err != nil {
		return err
	}

	backend, err := platform.NewLinuxBackendFromDisplay(style, logger)
	if err != nil {
		return err
	}
	defer backend.Disconnect()

	scale := backend.Scale()
	height := int(math.Round(float64(cfg.Height) * scale))
	policy := bar.Policy{AllScreens: cfg.AllScreens, Edge: platform.EdgeTop}
	if cfg.Bottom() {
		policy.Edge = platform.EdgeBottom
	}

	b := bar.New(backend, bar.Options{
		Height:     height,
		Scale:      scale,
		Policy:     policy,
		Foreground: style.Foreground,
		Title:      barTitle,
		Logger:     logger,
	})
	defer b.Close()

	deps := widget.Deps{
		Logger:           logger,
		Palette:          &palette,
		Pactl:            cfg.PactlCommand,
		BacklightStepPct: cfg.BacklightStepPercent,
		VolumeStepPct:    cfg.VolumeStepPercent,
	}
	if err := widget.Builtin().Populate(b, deps, cfg.Widgets.Start, cfg.Widgets.End); err != nil {
		return err
	}

	if err := fifo.Ensure(cfg.FifoPath); err != nil {
		return err
	}
	if err := runtimepath.WritePID(cfg.PIDFile); err != nil {
		return err
	}
	defer os.Remove(cfg.PIDFile)

	logger.Info("sysmon started",
		"scale", scale,
		"height", height,
		"edge", policy.Edge.String(),
		"all_screens", policy.AllScreens,
		"fifo", cfg.FifoPath,
	)

	backend.Start()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	commands := make(chan string, 16)
	loop := daemon.NewLoop(daemon.LoopConfig{Logger: logger}, b, backend.Events(), commands)
	reader := fifo.NewReader(cfg.FifoPath, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The display going away ends the process, so the reader must
		// stop too.
		defer cancel()
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return reader.Run(gctx, commands)
	})
	err = g.Wait()
	logger.Info("sysmon shutting down")
	return err
}

// resolveColors converts configured color strings into drawing colors.
func resolveColors(cfg *config.Config) (platform.Style, widget.Palette, error) {
	style := platform.Style{Font: cfg.Font}
	var palette widget.Palette

	for _, c := range []struct {
		path  string
		value string
		dst   *platform.Color
	}{
		{"foreground", cfg.Foreground, &style.Foreground},
		{"background", cfg.Background, &style.Background},
		{"palette.memory_used", cfg.Palette.MemoryUsed, &palette.MemoryUsed},
		{"palette.memory_cache", cfg.Palette.MemoryCache, &palette.MemoryCache},
		{"palette.level", cfg.Palette.Level, &palette.Level},
		{"palette.track", cfg.Palette.Track, &palette.Track},
	} {
		rgb, err := config.ParseColor(c.value)
		if err != nil {
			return style, palette, &config.ValidationError{Path: c.path, Err: err}
		}
		*c.dst = platform.Color(rgb)
	}
	return style, palette, nil
}
