// Package ebitenbackend runs a window on top of ebiten. Ebiten owns the frame
// loop, so windows from this backend implement platform.Runner and input is
// sampled once per tick.
package ebitenbackend

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"zzz/internal/platform"
	"zzz/internal/platform/polled"
	"zzz/internal/render"
	"zzz/pkg/zzz"
)

var (
	ErrNilQueue     = errors.New("ebiten: nil event queue")
	ErrWindowExists = errors.New("ebiten: only one window is supported")
)

type Backend struct {
	created bool
}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "ebiten" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig, q *zzz.Queue) (platform.Window, error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	if b.created {
		return nil, ErrWindowExists
	}
	b.created = true

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WidthPx, cfg.HeightPx)
	if cfg.MinWidthPx > 0 || cfg.MinHeightPx > 0 {
		ebiten.SetWindowSizeLimits(cfg.MinWidthPx, cfg.MinHeightPx, -1, -1)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetWindowClosingHandled(true)

	zzz.Logger().Info("zzz: window created", "backend", b.Name(), "title", cfg.Title)
	return &window{
		b:      b,
		q:      q,
		width:  cfg.WidthPx,
		height: cfg.HeightPx,
	}, nil
}

type window struct {
	b       *Backend
	q       *zzz.Queue
	tracker polled.Tracker

	width  int
	height int

	fb     *render.FrameBuffer
	canvas *ebiten.Image

	frame    func() error
	stopErr  error
	pumped   bool
	lastTick int64
	closed   bool

	keys  []ebiten.Key
	chars []rune
}

// Pump samples input once per ebiten tick. Further calls within the same
// tick do nothing, so a frame that polls again does not repeat events.
func (w *window) Pump() {
	if w.closed {
		return
	}
	tick := ebiten.Tick()
	if w.pumped && tick == w.lastTick {
		return
	}
	w.pumped = true
	w.lastTick = tick
	w.tracker.Translate(w.q, w.snapshot())
}

func (w *window) snapshot() polled.Snapshot {
	x, y := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	s := polled.Snapshot{
		X:         x,
		Y:         y,
		Width:     w.width,
		Height:    w.height,
		Scale:     1,
		Focused:   ebiten.IsFocused(),
		Maximized: ebiten.IsWindowMaximized(),
		Minimized: ebiten.IsWindowMinimized(),
		Closing:   ebiten.IsWindowBeingClosed(),
		CursorX:   float32(cx),
		CursorY:   float32(cy),
		WheelX:    float32(wx),
		WheelY:    float32(wy),
		Mods:      currentMods(),
	}
	if m := ebiten.Monitor(); m != nil {
		s.Scale = float32(m.DeviceScaleFactor())
	}

	w.keys = inpututil.AppendPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if zk, ok := keyTable[k]; ok {
			s.Held = append(s.Held, polled.KeyState{Key: zk, Scancode: int(k), Ticks: inpututil.KeyPressDuration(k)})
		}
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		if zk, ok := keyTable[k]; ok {
			s.Released = append(s.Released, polled.KeyState{Key: zk, Scancode: int(k)})
		}
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			s.ButtonsPressed = append(s.ButtonsPressed, b.zzz)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			s.ButtonsReleased = append(s.ButtonsReleased, b.zzz)
		}
	}

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	s.Chars = w.chars
	s.Dropped = droppedNames(ebiten.DroppedFiles())
	return s
}

// droppedNames lists the top level of a drop. Ebiten exposes drops as a
// file system rather than host paths, so names are relative to its root.
func droppedNames(fsys fs.FS) []string {
	if fsys == nil {
		return nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		zzz.Logger().Warn("zzz: read dropped files", "error", err)
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (w *window) SizePx() (int, int) { return w.width, w.height }

// Present keeps fb for the next Draw. The buffer must not be reused for
// another window while this one is running.
func (w *window) Present(fb *render.FrameBuffer) error {
	if w.closed || fb == nil {
		return nil
	}
	w.fb = fb
	return nil
}

func (w *window) SetVisible(visible bool) {
	if w.closed {
		return
	}
	switch {
	case !visible:
		ebiten.MinimizeWindow()
	case ebiten.IsWindowMinimized():
		ebiten.RestoreWindow()
	}
}

func (w *window) SetTitle(title string) {
	if w.closed {
		return
	}
	ebiten.SetWindowTitle(title)
}

func (w *window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.b.created = false
	if w.canvas != nil {
		w.canvas.Deallocate()
		w.canvas = nil
	}
}

// Run hands the loop to ebiten. frame runs once per tick after Pump and its
// first error stops the loop and is returned.
func (w *window) Run(frame func() error) error {
	w.frame = frame
	w.stopErr = nil
	if err := ebiten.RunGame(&game{w: w}); err != nil {
		return fmt.Errorf("ebiten: run game loop: %w", err)
	}
	return w.stopErr
}

type game struct {
	w *window
}

func (g *game) Update() error {
	w := g.w
	if w.closed {
		return ebiten.Termination
	}
	w.Pump()
	if w.frame == nil {
		return nil
	}
	if err := w.frame(); err != nil {
		w.stopErr = err
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	if w.fb == nil {
		return
	}
	if w.canvas == nil || w.canvas.Bounds().Dx() != w.fb.W || w.canvas.Bounds().Dy() != w.fb.H {
		if w.canvas != nil {
			w.canvas.Deallocate()
		}
		w.canvas = ebiten.NewImage(w.fb.W, w.fb.H)
	}
	w.canvas.WritePixels(w.fb.Pixels)

	var op *ebiten.DrawImageOptions
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sw != w.fb.W || sh != w.fb.H {
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sw)/float64(w.fb.W), float64(sh)/float64(w.fb.H))
	}
	screen.DrawImage(w.canvas, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.w.width = outsideWidth
	g.w.height = outsideHeight
	return outsideWidth, outsideHeight
}
