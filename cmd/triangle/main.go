package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sqweek/dialog"

	"zzz/internal/app"
	"zzz/internal/demo"
	"zzz/pkg/zzz"
)

func init() {
	// Windows deliver messages to the thread that created them.
	runtime.LockOSThread()
}

func main() {
	cfg, err := app.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	zzz.SetLogger(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.TimeOnly,
	})))

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "triangle failed: %v\n", err)
		if cfg.Dialog {
			dialog.Message("%v", err).Title("triangle").Error()
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	p, err := app.OpenPlatform(cfg.Backend)
	if err != nil {
		return err
	}
	a, err := app.New(p, cfg)
	if err != nil {
		return err
	}
	defer a.Terminate()

	zzz.Logger().Info("zzz: starting", "backend", p.Name(), "width", cfg.Width, "height", cfg.Height)
	a.SetVisible(true)

	scene := demo.NewScene()
	return a.Run(func() error { return scene.Frame(a) })
}
