package win32

import (
	"errors"
	"testing"

	"zzz/internal/platform"
	"zzz/internal/render"
	"zzz/pkg/zzz"
)

func TestCreateWindowRequiresQueue(t *testing.T) {
	b := New(newFakeOS())
	if _, err := b.CreateWindow(platform.WindowConfig{}, nil); !errors.Is(err, ErrNilQueue) {
		t.Fatalf("expected ErrNilQueue, got %v", err)
	}
}

func TestCreateWindowWrapsOSError(t *testing.T) {
	f := newFakeOS()
	f.createErr = errCreate
	b := New(f)
	_, err := b.CreateWindow(platform.WindowConfig{}, zzz.NewQueue(0))
	if !errors.Is(err, errCreate) {
		t.Fatalf("expected wrapped create error, got %v", err)
	}
	if b.reg.Len() != 0 {
		t.Fatalf("failed window left %d registrations", b.reg.Len())
	}
}

func TestPumpWithoutMessagesIsNoop(t *testing.T) {
	f, _, w, q, _ := setup(4)
	w.Pump()
	w.Pump()
	if !q.Empty() || f.translated != 0 {
		t.Fatalf("idle pump produced work: %d events, %d translated", q.Len(), f.translated)
	}
}

func TestPumpProcessesOneMessage(t *testing.T) {
	f, _, w, q, h := setup(4)
	f.post(
		Msg{Hwnd: h, Message: WM_SETFOCUS},
		Msg{Hwnd: h, Message: WM_KILLFOCUS},
	)
	w.Pump()
	if q.Len() != 1 || len(f.pending) != 1 {
		t.Fatalf("expected one message processed, got %d events and %d pending", q.Len(), len(f.pending))
	}
	if f.translated != 1 {
		t.Fatalf("expected message to be translated, got %d", f.translated)
	}
}

func TestWindowPassthroughs(t *testing.T) {
	f, _, w, _, h := setup(4)
	w.SetVisible(true)
	w.SetTitle("hello")
	if err := w.Present(render.NewFrameBuffer(2, 2)); err != nil {
		t.Fatal(err)
	}
	if !f.visible[h] || f.titles[h] != "hello" || f.presented != 1 {
		t.Fatalf("unexpected host state: visible=%v title=%q presented=%d", f.visible[h], f.titles[h], f.presented)
	}
	if width, height := w.SizePx(); width != 800 || height != 600 {
		t.Fatalf("unexpected size %dx%d", width, height)
	}
}

func TestCloseDestroysWithoutCloseEvent(t *testing.T) {
	f, b, w, q, h := setup(4)
	w.Close()
	w.Close()

	if len(f.destroyed) != 1 || f.destroyed[0] != h {
		t.Fatalf("expected one DestroyWindow for %#x, got %v", h, f.destroyed)
	}
	if b.reg.Len() != 0 {
		t.Fatal("window still registered after Close")
	}
	if !q.Empty() || f.quitPosted != 0 {
		t.Fatal("Close should not report a close event or post quit")
	}
	w.SetTitle("ignored")
	if _, ok := f.titles[h]; ok {
		t.Fatal("closed window forwarded SetTitle")
	}
}

func TestCloseAfterDestroySkipsDestroyWindow(t *testing.T) {
	f, _, w, _, h := setup(4)
	f.post(Msg{Hwnd: h, Message: WM_DESTROY})
	w.Pump()
	w.Close()
	if len(f.destroyed) != 0 {
		t.Fatalf("destroyed window destroyed again: %v", f.destroyed)
	}
}

func TestNewNativeUnsupportedOffWindows(t *testing.T) {
	if _, err := NewNativeOS(); err != nil && !errors.Is(err, ErrUnsupported) {
		t.Fatalf("unexpected error %v", err)
	}
}
