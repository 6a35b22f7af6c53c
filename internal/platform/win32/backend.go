package win32

import (
	"fmt"

	"zzz/internal/platform"
	"zzz/internal/render"
	"zzz/pkg/zzz"
)

type Backend struct {
	os      OS
	reg     *Registry
	adapter *Adapter
}

func New(os OS) *Backend {
	reg := NewRegistry()
	return &Backend{os: os, reg: reg, adapter: NewAdapter(os, reg)}
}

// NewNative binds the backend to the running Windows session.
func NewNative() (*Backend, error) {
	os, err := NewNativeOS()
	if err != nil {
		return nil, err
	}
	return New(os), nil
}

func (b *Backend) Name() string { return "win32" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig, q *zzz.Queue) (platform.Window, error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	hwnd, err := b.os.CreateWindow(cfg, b.adapter.WindowProc)
	if err != nil {
		return nil, fmt.Errorf("win32: create window: %w", err)
	}
	if err := b.reg.Register(hwnd, q); err != nil {
		b.os.DestroyWindow(hwnd)
		return nil, err
	}
	zzz.Logger().Info("zzz: window created", "backend", b.Name(), "title", cfg.Title, "window", uintptr(hwnd))
	return &window{b: b, hwnd: hwnd}, nil
}

type window struct {
	b      *Backend
	hwnd   Handle
	closed bool
}

func (w *window) Pump() {
	if w.closed {
		return
	}
	msg, ok := w.b.os.PeekMessage(true)
	if !ok {
		return
	}
	if msg.Message == WM_QUIT {
		w.b.adapter.Quit(w.hwnd)
		return
	}
	w.b.os.TranslateMessage(&msg)
	w.b.os.DispatchMessage(&msg)
}

func (w *window) SizePx() (int, int) { return w.b.os.ClientSize(w.hwnd) }

func (w *window) Present(fb *render.FrameBuffer) error {
	if w.closed || fb == nil {
		return nil
	}
	return w.b.os.Present(w.hwnd, fb)
}

func (w *window) SetVisible(visible bool) {
	if !w.closed {
		w.b.os.ShowWindow(w.hwnd, visible)
	}
}

func (w *window) SetTitle(title string) {
	if !w.closed {
		w.b.os.SetTitle(w.hwnd, title)
	}
}

// Close unregisters the window before destroying it, so the destroy
// notification does not report a close the application asked for itself.
func (w *window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	s := w.b.reg.surface(w.hwnd)
	destroyed := s != nil && s.destroyed
	w.b.reg.Unregister(w.hwnd)
	if !destroyed {
		w.b.os.DestroyWindow(w.hwnd)
	}
	zzz.Logger().Info("zzz: window closed", "window", uintptr(w.hwnd))
}
