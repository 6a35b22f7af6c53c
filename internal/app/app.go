package app

import (
	"errors"
	"fmt"

	"zzz/internal/platform"
	"zzz/internal/render"
	"zzz/pkg/zzz"
)

var (
	ErrInvalidArguments = errors.New("app: invalid arguments")
	// ErrQuit is returned by a frame function to stop Run without error.
	ErrQuit = errors.New("app: quit")
)

// App pairs one window with the queue its events are delivered into.
type App struct {
	cfg        Config
	queue      *zzz.Queue
	window     platform.Window
	terminated bool
}

// New allocates the queue first and then creates the window bound to it, so
// no event can arrive before there is somewhere to put it.
func New(p platform.Platform, cfg Config) (*App, error) {
	if p == nil {
		return nil, ErrInvalidArguments
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	q := zzz.NewQueue(cfg.QueueCapacity)
	w, err := p.CreateWindow(cfg.Window(), q)
	if err != nil {
		return nil, fmt.Errorf("app: open %s window: %w", p.Name(), err)
	}
	return &App{cfg: cfg, queue: q, window: w}, nil
}

func (a *App) Config() Config { return a.cfg }

func (a *App) Queue() *zzz.Queue {
	if a == nil {
		return nil
	}
	return a.queue
}

// PollEvents processes at most one pending native message.
func (a *App) PollEvents() {
	if a == nil || a.terminated {
		return
	}
	a.window.Pump()
}

// NextEvent copies the oldest queued event into ev. It reports false, leaving
// ev untouched, when the queue is empty or either argument is nil.
func (a *App) NextEvent(ev *zzz.Event) bool {
	if a == nil || ev == nil {
		return false
	}
	next, ok := a.queue.Next()
	if !ok {
		return false
	}
	*ev = next
	return true
}

// Run calls PollEvents and then frame until frame returns an error or the app
// is terminated. ErrQuit ends the loop cleanly. Windows that own their loop
// drive the same sequence themselves.
func (a *App) Run(frame func() error) error {
	if a == nil || frame == nil {
		return ErrInvalidArguments
	}
	var err error
	if r, ok := a.window.(platform.Runner); ok {
		err = r.Run(frame)
	} else {
		for !a.terminated {
			a.PollEvents()
			if err = frame(); err != nil {
				break
			}
		}
	}
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

func (a *App) Present(fb *render.FrameBuffer) error {
	if a == nil || a.terminated || fb == nil {
		return nil
	}
	return a.window.Present(fb)
}

func (a *App) Size() (int, int) {
	if a == nil || a.terminated {
		return 0, 0
	}
	return a.window.SizePx()
}

func (a *App) SetVisible(visible bool) {
	if a == nil || a.terminated {
		return
	}
	a.window.SetVisible(visible)
}

func (a *App) SetTitle(title string) {
	if a == nil || a.terminated {
		return
	}
	a.window.SetTitle(title)
}

// Terminate closes the window and discards queued events. It is safe to call
// more than once.
func (a *App) Terminate() {
	if a == nil || a.terminated {
		return
	}
	a.terminated = true
	a.window.Close()
	a.queue.Reset()
	zzz.Logger().Info("zzz: terminated", "dropped", a.queue.Dropped())
}
