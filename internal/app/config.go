package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"zzz/internal/platform"
	"zzz/pkg/zzz"
)

const (
	BackendAuto   = "auto"
	BackendWin32  = "win32"
	BackendEbiten = "ebiten"
)

var backends = []string{BackendAuto, BackendWin32, BackendEbiten}

var ErrInvalidConfig = errors.New("app: invalid config")

type Config struct {
	Backend       string
	Title         string
	Width         int
	Height        int
	MinWidth      int
	MinHeight     int
	Resizable     bool
	QueueCapacity int
	LogLevel      slog.Level
	Dialog        bool
}

func DefaultConfig() Config {
	return Config{
		Backend:       BackendAuto,
		Title:         "Hello, World",
		Width:         800,
		Height:        600,
		MinWidth:      160,
		MinHeight:     120,
		Resizable:     true,
		QueueCapacity: zzz.DefaultQueueCapacity,
		LogLevel:      slog.LevelInfo,
	}
}

// ParseFlags fills a Config from command-line arguments, starting from
// DefaultConfig. Usage and parse errors are written to out.
func ParseFlags(name string, args []string, out io.Writer) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "window backend: auto, win32 or ebiten")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial client width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial client height in pixels")
	fs.IntVar(&cfg.MinWidth, "min-width", cfg.MinWidth, "minimum client width in pixels")
	fs.IntVar(&cfg.MinHeight, "min-height", cfg.MinHeight, "minimum client height in pixels")
	fs.BoolVar(&cfg.Resizable, "resizable", cfg.Resizable, "allow the window to be resized")
	fs.IntVar(&cfg.QueueCapacity, "queue", cfg.QueueCapacity, "event queue capacity (0 selects the default)")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.Dialog, "dialog", cfg.Dialog, "show fatal errors in a message box")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains(backends, c.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("%w: minimum size %dx%d", ErrInvalidConfig, c.MinWidth, c.MinHeight)
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("%w: queue capacity %d", ErrInvalidConfig, c.QueueCapacity)
	}
	return nil
}

func (c Config) Window() platform.WindowConfig {
	return platform.WindowConfig{
		Title:       c.Title,
		WidthPx:     c.Width,
		HeightPx:    c.Height,
		MinWidthPx:  c.MinWidth,
		MinHeightPx: c.MinHeight,
		Resizable:   c.Resizable,
	}
}
