package platform

import (
	"zzz/internal/render"
	"zzz/pkg/zzz"
)

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
	Resizable   bool
}

// Platform creates windows whose input is delivered into the given queue.
// The queue belongs to the caller and must outlive the window.
type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig, q *zzz.Queue) (Window, error)
}

type Window interface {
	// Pump processes at most one pending native message, pushing any
	// resulting events into the window's queue. It never blocks.
	Pump()
	SizePx() (int, int)
	Present(fb *render.FrameBuffer) error
	SetVisible(visible bool)
	SetTitle(title string)
	Close()
}

// Runner is implemented by windows whose backend owns the frame loop.
// Run calls frame once per tick after pumping, until frame returns an error.
type Runner interface {
	Run(frame func() error) error
}
